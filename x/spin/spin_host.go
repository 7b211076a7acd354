//go:build !tinygo

package spin

import "sync/atomic"

// iterations counts every pass through Loop across the process.
var iterations atomic.Uint64

// Loop counts from 0 to n. The atomic counter keeps the loop observable.
func Loop(n uint32) {
	var i atomic.Uint32
	for ; i.Load() < n; i.Add(1) {
		iterations.Add(1)
	}
}

// Iterations returns the total number of passes taken by Loop.
func Iterations() uint64 { return iterations.Load() }

//go:build tinygo

package spin

import "runtime/volatile"

// Loop counts from 0 to n on a volatile counter so the loop survives
// optimisation. The resulting delay depends on the core clock.
func Loop(n uint32) {
	var i volatile.Register32
	for i.Set(0); i.Get() < n; i.Set(i.Get() + 1) {
	}
}

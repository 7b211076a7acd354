// Package boot materializes the runtime memory image before any Go code
// that touches globals runs: it copies the .data template out of flash,
// zeroes .bss and hands off to the application.
//
// Nothing here may read or write package-level variables. The routines run
// before those variables hold their initial values.
package boot

// Memory is word-granular access to the address space.
type Memory interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, v uint32)
}

// CopyData copies the .data template at CodeEnd into [DataStart, DataEnd),
// one word at a time in ascending order. A trailing partial word is not
// copied.
func CopyData(l Layout, m Memory) {
	n := l.DataWords()
	for i := uintptr(0); i < n; i++ {
		off := i * WordSize
		m.Store(l.DataStart+off, m.Load(l.CodeEnd+off))
	}
}

// ZeroBSS stores zero to every whole word of [BSSStart, BSSEnd).
func ZeroBSS(l Layout, m Memory) {
	n := l.BSSWords()
	for i := uintptr(0); i < n; i++ {
		m.Store(l.BSSStart+i*WordSize, 0)
	}
}

// Materialize runs CopyData then ZeroBSS.
func Materialize(l Layout, m Memory) {
	CopyData(l, m)
	ZeroBSS(l, m)
}

// Start materializes memory and transfers control to entry. entry must not
// return; if it does, Start parks the core.
func Start(l Layout, m Memory, entry func()) {
	Materialize(l, m)
	entry()
	for {
	}
}

// CopyWords copies src into dst element by element and returns the count.
// Only min(len(dst), len(src)) words are written.
func CopyWords(dst, src []uint32) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

// ZeroWords clears every element of dst.
func ZeroWords(dst []uint32) {
	for i := range dst {
		dst[i] = 0
	}
}

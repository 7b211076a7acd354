//go:build !tinygo

package boot

import (
	"sync"

	"bluepill-blink/x/conv"
)

// SimMemory backs a set of address regions with word slices. Any access
// outside a mapped region panics, so a test that completes proves the
// routine stayed inside the ranges it was given.
type SimMemory struct {
	mu      sync.Mutex
	regions []simRegion
	stores  int
}

type simRegion struct {
	base  uintptr
	words []uint32
}

// NewSimMemory returns an empty address space.
func NewSimMemory() *SimMemory { return &SimMemory{} }

// Map adds a region at base backed by words. The slice is used in place,
// so the caller sees every store.
func (m *SimMemory) Map(base uintptr, words []uint32) {
	if base%WordSize != 0 {
		panic("boot: unaligned region base " + conv.Addr(uint32(base)))
	}
	m.mu.Lock()
	m.regions = append(m.regions, simRegion{base: base, words: words})
	m.mu.Unlock()
}

// Stores reports how many Store calls have been made.
func (m *SimMemory) Stores() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stores
}

func (m *SimMemory) Load(addr uintptr) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := m.word(addr)
	return *w
}

func (m *SimMemory) Store(addr uintptr, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := m.word(addr)
	*w = v
	m.stores++
}

func (m *SimMemory) word(addr uintptr) *uint32 {
	if addr%WordSize != 0 {
		panic("boot: unaligned access at " + conv.Addr(uint32(addr)))
	}
	for i := range m.regions {
		r := &m.regions[i]
		if addr < r.base {
			continue
		}
		idx := (addr - r.base) / WordSize
		if idx < uintptr(len(r.words)) {
			return &r.words[idx]
		}
	}
	panic("boot: access to unmapped address " + conv.Addr(uint32(addr)))
}

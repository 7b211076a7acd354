//go:build !tinygo

package mmio

import "sync/atomic"

// Sim is a host-side register. It counts accesses so tests can check that
// each helper really reads and writes the register.
type Sim struct {
	v      atomic.Uint32
	reads  atomic.Uint32
	writes atomic.Uint32
}

// NewSim returns a register holding reset.
func NewSim(reset uint32) *Sim {
	s := &Sim{}
	s.v.Store(reset)
	return s
}

func (s *Sim) Get() uint32 {
	s.reads.Add(1)
	return s.v.Load()
}

func (s *Sim) Set(v uint32) {
	s.writes.Add(1)
	s.v.Store(v)
}

// Peek returns the value without counting a read.
func (s *Sim) Peek() uint32 { return s.v.Load() }

// Reads and Writes return the access counters.
func (s *Sim) Reads() uint32  { return s.reads.Load() }
func (s *Sim) Writes() uint32 { return s.writes.Load() }

//go:build !tinygo

package bluepill

import "bluepill-blink/hw/mmio"

// SimRegisters is a host-side register file at reset values.
type SimRegisters struct {
	APB2ENR *mmio.Sim
	CRH     *mmio.Sim
	ODR     *mmio.Sim
}

// Simulated returns a fresh register file and the Registers view of it.
func Simulated() (*SimRegisters, Registers) {
	s := &SimRegisters{
		APB2ENR: mmio.NewSim(ResetAPB2ENR),
		CRH:     mmio.NewSim(ResetCRH),
		ODR:     mmio.NewSim(ResetODR),
	}
	return s, Registers{APB2ENR: s.APB2ENR, CRH: s.CRH, ODR: s.ODR}
}

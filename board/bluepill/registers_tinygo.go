//go:build tinygo

package bluepill

import "bluepill-blink/hw/mmio"

// Hardware maps Registers onto the live peripherals.
func Hardware() Registers {
	return Registers{
		APB2ENR: mmio.At(RCCBase + RCCAPB2ENROff),
		CRH:     mmio.At(GPIOCBase + GPIOCRHOff),
		ODR:     mmio.At(GPIOCBase + GPIOODROff),
	}
}

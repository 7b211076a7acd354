// Package bluepill holds the STM32F103C8 register addresses and bit
// positions the firmware touches.
package bluepill

import "bluepill-blink/hw/mmio"

// RCC (reset and clock control).
const (
	RCCBase       = 0x40021000
	RCCAPB2ENROff = 0x18
	APB2ENRIOPCEN = 4 // GPIOC clock enable
)

// GPIOC.
const (
	GPIOCBase  = 0x40011000
	GPIOCRHOff = 0x04 // pins 8..15 mode/config
	GPIOODROff = 0x0C
)

// LED on PC13.
const (
	LEDPin = 13

	// CRH holds 4 bits per pin starting at pin 8: MODE[1:0] then CNF[1:0].
	CRHFieldWidth = 4
	LEDFieldPos   = (LEDPin - 8) * CRHFieldWidth

	// MODE=10 (output, 2 MHz), CNF=00 (general purpose push-pull).
	ModeOutputPushPull2MHz = 0x2
)

// Reset values from the reference manual.
const (
	ResetAPB2ENR = 0x00000000
	ResetCRH     = 0x44444444 // every pin floating input
	ResetODR     = 0x00000000
)

// Registers are the three registers the blink loop uses.
type Registers struct {
	APB2ENR mmio.Reg32
	CRH     mmio.Reg32
	ODR     mmio.Reg32
}

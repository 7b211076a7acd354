// Package blink drives the PC13 LED: clock on, pin to push-pull output,
// then toggle forever with a busy-wait between toggles.
package blink

import (
	"bluepill-blink/board/bluepill"
	"bluepill-blink/hw/mmio"
	"bluepill-blink/x/spin"
)

// State is the blinker's position in its fixed sequence.
type State uint8

const (
	ClockDisabled State = iota
	ClockEnabled
	PinConfigured
	Blinking
)

func (s State) String() string {
	switch s {
	case ClockDisabled:
		return "clock_disabled"
	case ClockEnabled:
		return "clock_enabled"
	case PinConfigured:
		return "pin_configured"
	case Blinking:
		return "blinking"
	default:
		return "unknown"
	}
}

// DefaultIterations is the uncalibrated busy-wait length between toggles.
const DefaultIterations = 100000

// Config tunes the delay. Spin receives Iterations on every step.
type Config struct {
	Iterations uint32
	Spin       func(n uint32)
}

func DefaultConfig() Config {
	return Config{Iterations: DefaultIterations, Spin: spin.Loop}
}

type Blinker struct {
	regs  bluepill.Registers
	cfg   Config
	state State
}

func New(regs bluepill.Registers, cfg Config) *Blinker {
	if cfg.Spin == nil {
		cfg.Spin = spin.Loop
	}
	return &Blinker{regs: regs, cfg: cfg}
}

func (b *Blinker) State() State { return b.state }

// EnableClock sets IOPCEN. Safe to repeat.
func (b *Blinker) EnableClock() {
	mmio.SetBit(b.regs.APB2ENR, bluepill.APB2ENRIOPCEN)
	if b.state < ClockEnabled {
		b.state = ClockEnabled
	}
}

// ConfigurePin clears the PC13 field in CRH then writes the output mode.
func (b *Blinker) ConfigurePin() {
	mmio.ReplaceField(b.regs.CRH, bluepill.LEDFieldPos, bluepill.CRHFieldWidth, bluepill.ModeOutputPushPull2MHz)
	if b.state < PinConfigured {
		b.state = PinConfigured
	}
}

// Toggle inverts the LED output bit without tracking its level.
func (b *Blinker) Toggle() { mmio.ToggleBit(b.regs.ODR, bluepill.LEDPin) }

// Step is one toggle followed by one delay.
func (b *Blinker) Step() {
	b.Toggle()
	b.cfg.Spin(b.cfg.Iterations)
}

// Run brings the pin up and blinks forever.
func (b *Blinker) Run() {
	b.EnableClock()
	b.ConfigurePin()
	b.state = Blinking
	for {
		b.Step()
	}
}

// Run blinks forever using a Blinker on the caller's stack. It is the entry
// for images that hand off before the heap exists.
func Run(regs bluepill.Registers, cfg Config) {
	b := Blinker{regs: regs, cfg: cfg}
	if b.cfg.Spin == nil {
		b.cfg.Spin = spin.Loop
	}
	b.Run()
}

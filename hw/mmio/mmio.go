// Package mmio provides read-modify-write helpers over 32-bit memory-mapped
// registers. Every helper performs exactly one Get and one Set on the
// register it is given; nothing is cached between calls.
package mmio

import "bluepill-blink/x/bitx"

// Reg32 is a 32-bit register. TinyGo's *volatile.Register32 satisfies it.
type Reg32 interface {
	Get() uint32
	Set(uint32)
}

// SetBits ORs mask into r.
func SetBits(r Reg32, mask uint32) { r.Set(r.Get() | mask) }

// ClearBits clears mask in r.
func ClearBits(r Reg32, mask uint32) { r.Set(r.Get() &^ mask) }

// ToggleBits XORs mask into r.
func ToggleBits(r Reg32, mask uint32) { r.Set(r.Get() ^ mask) }

// SetBit sets bit n of r.
func SetBit(r Reg32, n uint) { r.Set(bitx.Set(r.Get(), n)) }

// ToggleBit inverts bit n of r.
func ToggleBit(r Reg32, n uint) { r.Set(bitx.Toggle(r.Get(), n)) }

// ClearField clears the width-bit field at pos.
func ClearField(r Reg32, pos, width uint) {
	ClearBits(r, bitx.FieldMask[uint32](pos, width))
}

// OrField ORs val into the width-bit field at pos without clearing it first.
func OrField(r Reg32, pos, width uint, val uint32) {
	SetBits(r, (val<<pos)&bitx.FieldMask[uint32](pos, width))
}

// ReplaceField clears the field at pos then writes val into it as two
// separate read-modify-write sequences, matching the hardware reference
// sequence for mode fields.
func ReplaceField(r Reg32, pos, width uint, val uint32) {
	ClearField(r, pos, width)
	OrField(r, pos, width, val)
}

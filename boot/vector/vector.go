// Package vector models the two-word entry table the core reads at power-on.
// The linker script places the physical table; this package encodes, decodes
// and checks it for host tools.
package vector

import (
	"encoding/binary"

	"bluepill-blink/boot"
	"bluepill-blink/config"
	"bluepill-blink/errcode"
)

// Size is the encoded length: two little-endian 32-bit words.
const Size = 8

// Table is the entry table. Word 0 is the initial stack pointer, word 1 the
// reset routine address (Thumb bit set).
type Table struct {
	StackTop uint32
	Reset    uint32
}

// FromLayout builds a table from a linked layout and the reset address.
func FromLayout(l boot.Layout, reset uint32) Table {
	return Table{StackTop: uint32(l.StackTop), Reset: reset}
}

// Encode returns the bit-exact table.
func (t Table) Encode() [Size]byte {
	var b [Size]byte
	binary.LittleEndian.PutUint32(b[0:4], t.StackTop)
	binary.LittleEndian.PutUint32(b[4:8], t.Reset)
	return b
}

// Decode reads a table from the start of an image.
func Decode(b []byte) (Table, error) {
	if len(b) < Size {
		return Table{}, errcode.New(errcode.ShortImage, "vector", "need 8 bytes for entry table")
	}
	return Table{
		StackTop: binary.LittleEndian.Uint32(b[0:4]),
		Reset:    binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}

// Validate checks the table against a board memory map.
func (t Table) Validate(mm config.MemoryMap) error {
	const op = "vector"
	if t.StackTop%boot.WordSize != 0 {
		return errcode.New(errcode.Misaligned, op, "stack top is not word aligned")
	}
	if uint64(t.StackTop) <= uint64(mm.SRAM.Start) || uint64(t.StackTop) > mm.SRAM.End() {
		return errcode.New(errcode.OutOfRange, op, "stack top outside sram")
	}
	if t.Reset&1 == 0 {
		return errcode.New(errcode.NotThumb, op, "reset address lacks the thumb bit")
	}
	if !mm.Flash.Contains(t.Reset&^1, 2) {
		return errcode.New(errcode.OutOfRange, op, "reset address outside flash")
	}
	return nil
}

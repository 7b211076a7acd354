package boot

import (
	"bluepill-blink/config"
	"bluepill-blink/errcode"
)

// WordSize is the unit the boot routine copies and clears.
const WordSize = 4

// Layout holds the boundary addresses the linker script defines. It is
// filled once per image and passed to the boot routine explicitly.
type Layout struct {
	StackTop  uintptr // _estack, used as a value only
	CodeEnd   uintptr // _etext, start of the .data template in flash
	DataStart uintptr // _sdata
	DataEnd   uintptr // _edata
	BSSStart  uintptr // _sbss
	BSSEnd    uintptr // _ebss
}

// DataWords is the number of whole words copied from the template.
func (l Layout) DataWords() uintptr { return words(l.DataStart, l.DataEnd) }

// BSSWords is the number of whole words zeroed.
func (l Layout) BSSWords() uintptr { return words(l.BSSStart, l.BSSEnd) }

// words counts whole words in [start, end); a reversed range holds none.
func words(start, end uintptr) uintptr {
	if end <= start {
		return 0
	}
	return (end - start) / WordSize
}

// Validate checks the layout against a board memory map. The boot routine
// itself never calls this; it is for host tools inspecting a linked image.
func (l Layout) Validate(mm config.MemoryMap) error {
	const op = "layout"
	for _, a := range []struct {
		name string
		v    uintptr
	}{
		{"_estack", l.StackTop}, {"_etext", l.CodeEnd},
		{"_sdata", l.DataStart}, {"_edata", l.DataEnd},
		{"_sbss", l.BSSStart}, {"_ebss", l.BSSEnd},
	} {
		if a.v%WordSize != 0 {
			return errcode.New(errcode.Misaligned, op, a.name+" is not word aligned")
		}
		if uint64(a.v) > 0xFFFFFFFF {
			return errcode.New(errcode.OutOfRange, op, a.name+" exceeds 32-bit address space")
		}
	}
	if l.DataEnd < l.DataStart {
		return errcode.New(errcode.BadOrder, op, "_edata below _sdata")
	}
	if l.BSSEnd < l.BSSStart {
		return errcode.New(errcode.BadOrder, op, "_ebss below _sbss")
	}
	dataLen := uint32(l.DataEnd - l.DataStart)
	bssLen := uint32(l.BSSEnd - l.BSSStart)
	if !mm.SRAM.Contains(uint32(l.DataStart), dataLen) {
		return errcode.New(errcode.OutOfRange, op, ".data outside sram")
	}
	if !mm.SRAM.Contains(uint32(l.BSSStart), bssLen) {
		return errcode.New(errcode.OutOfRange, op, ".bss outside sram")
	}
	if !mm.Flash.Contains(uint32(l.CodeEnd), dataLen) {
		return errcode.New(errcode.OutOfRange, op, ".data template outside flash")
	}
	if dataLen > 0 && bssLen > 0 && l.DataStart < l.BSSEnd && l.BSSStart < l.DataEnd {
		return errcode.New(errcode.Overlap, op, ".data and .bss overlap")
	}
	// Same bound as the entry table check: an empty stack is rejected.
	if uint64(l.StackTop) <= uint64(mm.SRAM.Start) || uint64(l.StackTop) > mm.SRAM.End() {
		return errcode.New(errcode.OutOfRange, op, "_estack outside sram")
	}
	return nil
}

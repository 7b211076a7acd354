//go:build tinygo && bareboot

package boot

import "unsafe"

// Symbols from targets/stm32f103-bare.ld. Only their addresses matter.

//go:extern _estack
var _estack [0]byte

//go:extern _etext
var _etext [0]byte

//go:extern _sdata
var _sdata [0]byte

//go:extern _edata
var _edata [0]byte

//go:extern _sbss
var _sbss [0]byte

//go:extern _ebss
var _ebss [0]byte

// Linked returns the layout the linker placed this image at.
func Linked() Layout {
	return Layout{
		StackTop:  uintptr(unsafe.Pointer(&_estack)),
		CodeEnd:   uintptr(unsafe.Pointer(&_etext)),
		DataStart: uintptr(unsafe.Pointer(&_sdata)),
		DataEnd:   uintptr(unsafe.Pointer(&_edata)),
		BSSStart:  uintptr(unsafe.Pointer(&_sbss)),
		BSSEnd:    uintptr(unsafe.Pointer(&_ebss)),
	}
}

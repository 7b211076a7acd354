//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// At overlays a volatile register on a fixed address.
func At(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

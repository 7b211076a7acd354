//go:build tinygo

package boot

import "unsafe"

// Direct dereferences addresses on the running core.
type Direct struct{}

func (Direct) Load(addr uintptr) uint32 { return *(*uint32)(unsafe.Pointer(addr)) }

func (Direct) Store(addr uintptr, v uint32) { *(*uint32)(unsafe.Pointer(addr)) = v }

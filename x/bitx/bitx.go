package bitx

import "golang.org/x/exp/constraints"

// Bit returns a value with only bit n set.
func Bit[T constraints.Unsigned](n uint) T { return T(1) << n }

// Set forces bit n to 1 and leaves the rest of v unchanged.
func Set[T constraints.Unsigned](v T, n uint) T { return v | Bit[T](n) }

// Clear forces bit n to 0.
func Clear[T constraints.Unsigned](v T, n uint) T { return v &^ Bit[T](n) }

// Toggle inverts bit n.
func Toggle[T constraints.Unsigned](v T, n uint) T { return v ^ Bit[T](n) }

// Has reports whether bit n is set.
func Has[T constraints.Unsigned](v T, n uint) bool { return v&Bit[T](n) != 0 }

// FieldMask returns width ones shifted to pos. width 0 yields 0.
func FieldMask[T constraints.Unsigned](pos, width uint) T {
	if width == 0 {
		return 0
	}
	return ((T(1) << width) - 1) << pos
}

// Field extracts the width-bit field at pos.
func Field[T constraints.Unsigned](v T, pos, width uint) T {
	return (v & FieldMask[T](pos, width)) >> pos
}

// ReplaceField clears the width-bit field at pos and writes val into it.
// Bits of val above width are discarded.
func ReplaceField[T constraints.Unsigned](v T, pos, width uint, val T) T {
	m := FieldMask[T](pos, width)
	return (v &^ m) | ((val << pos) & m)
}

package conv

const hexd = "0123456789abcdef"

// U32Hex writes 8-digit lowercase hex without 0x, zero-padded, into the
// tail of buf and returns the written slice.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Addr formats a 32-bit address as 0x followed by 8 hex digits.
func Addr(n uint32) string {
	var buf [10]byte
	buf[0], buf[1] = '0', 'x'
	U32Hex(buf[2:], n)
	return string(buf[:])
}

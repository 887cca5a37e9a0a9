package conv

import "numtext-go/totext"

// Hex writes p as "0x" and lowercase hex digits into the end of buf.
// buf must hold totext.AddrSize bytes.
func Hex(buf []byte, p uintptr) []byte {
	if s, ok := totext.EncodeIf(totext.Addr(p), buf); ok {
		return s
	}
	return buf[:0]
}

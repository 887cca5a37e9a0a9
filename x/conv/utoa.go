package conv

import "numtext-go/totext"

// Utoa is Itoa for unsigned values; buf needs totext.U64Size bytes.
func Utoa(buf []byte, n uint64) []byte {
	if s, ok := totext.EncodeIf(totext.U64(n), buf); ok {
		return s
	}
	return buf[:0]
}

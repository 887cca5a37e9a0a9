package conv

import "numtext-go/totext"

// Itoa formats n in base 10 at the tail of buf. buf needs totext.I64Size
// (21) bytes even for short numbers; anything smaller, including the 20-byte
// buffers older callers sized for int64, yields buf[:0].
func Itoa(buf []byte, n int64) []byte {
	if s, ok := totext.EncodeIf(totext.I64(n), buf); ok {
		return s
	}
	return buf[:0]
}

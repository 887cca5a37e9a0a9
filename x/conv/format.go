package conv

import (
	"golang.org/x/exp/constraints"

	"numtext-go/totext"
)

// Format writes any built-in integer in base 10 into the end of buf.
// buf must hold totext.SizeOf[T]() bytes.
func Format[T constraints.Integer](buf []byte, v T) []byte {
	if len(buf) < totext.SizeOf[T]() {
		return buf[:0]
	}
	return totext.Integer(buf, v)
}

package totext

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"numtext-go/internal/check"
)

// SizeOf returns the text size of a built-in integer kind: the size of the
// value type of the same width and signedness.
func SizeOf[T constraints.Integer]() int {
	var v T
	n := U64Size
	switch unsafe.Sizeof(v) {
	case 1:
		n = U8Size
	case 2:
		n = U16Size
	case 4:
		n = U32Size
	}
	if ^v < 0 {
		n++
	}
	return n
}

// Integer encodes any built-in integer kind into the tail of dst, with the
// same algorithm and size requirement as the value type of its width.
func Integer[T constraints.Integer](dst []byte, v T) []byte {
	check.Capacity(len(dst), SizeOf[T](), "Integer")
	if v >= 0 {
		return dst[putWidth(dst, uint64(v), unsafe.Sizeof(v)):]
	}
	// uint64(v) sign-extends, so the wrapping negation is the magnitude.
	i := putWidth(dst[1:], -uint64(v), unsafe.Sizeof(v))
	dst[i] = '-'
	return dst[i:]
}

package totext

import (
	"golang.org/x/exp/constraints"

	"numtext-go/internal/check"
)

// Signed value types. Each reserves one byte more than its unsigned
// counterpart for the sign.
type (
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	Int int
)

func (I8) TextSize() int  { return I8Size }
func (I16) TextSize() int { return I16Size }
func (I32) TextSize() int { return I32Size }
func (I64) TextSize() int { return I64Size }
func (Int) TextSize() int { return IntSize }

// putSigned encodes a negative v as the wrapping negation of its bit
// pattern, so the minimum of each width (which has no positive counterpart
// in S) still gets its full magnitude from U.
func putSigned[S constraints.Signed, U constraints.Unsigned](dst []byte, v S) []byte {
	if v >= 0 {
		return dst[putUnsigned(dst, U(v)):]
	}
	// The magnitude ends at len(dst) inside dst[1:]; index i of that window
	// is i+1 in dst, leaving dst[i] for the sign.
	i := putUnsigned(dst[1:], -U(v))
	dst[i] = '-'
	return dst[i:]
}

func (v I8) Encode(dst []byte) []byte {
	check.Capacity(len(dst), I8Size, "I8.Encode")
	return putSigned[int8, uint8](dst, int8(v))
}

func (v I16) Encode(dst []byte) []byte {
	check.Capacity(len(dst), I16Size, "I16.Encode")
	return putSigned[int16, uint16](dst, int16(v))
}

func (v I32) Encode(dst []byte) []byte {
	check.Capacity(len(dst), I32Size, "I32.Encode")
	return putSigned[int32, uint32](dst, int32(v))
}

func (v I64) Encode(dst []byte) []byte {
	check.Capacity(len(dst), I64Size, "I64.Encode")
	return putSigned[int64, uint64](dst, int64(v))
}

func (v Int) Encode(dst []byte) []byte {
	check.Capacity(len(dst), IntSize, "Int.Encode")
	return putSigned[int, uint](dst, int(v))
}

func (v I8) String() string {
	var b [I8Size]byte
	return string(v.Encode(b[:]))
}

func (v I16) String() string {
	var b [I16Size]byte
	return string(v.Encode(b[:]))
}

func (v I32) String() string {
	var b [I32Size]byte
	return string(v.Encode(b[:]))
}

func (v I64) String() string {
	var b [I64Size]byte
	return string(v.Encode(b[:]))
}

func (v Int) String() string {
	var b [IntSize]byte
	return string(v.Encode(b[:]))
}

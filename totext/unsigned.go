package totext

import "numtext-go/internal/check"

// Unsigned value types.
type (
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	Uint uint
)

func (U8) TextSize() int   { return U8Size }
func (U16) TextSize() int  { return U16Size }
func (U32) TextSize() int  { return U32Size }
func (U64) TextSize() int  { return U64Size }
func (Uint) TextSize() int { return UintSize }

func (v U8) Encode(dst []byte) []byte {
	check.Capacity(len(dst), U8Size, "U8.Encode")
	return dst[putSmall(dst, uint32(v)):]
}

func (v U16) Encode(dst []byte) []byte {
	check.Capacity(len(dst), U16Size, "U16.Encode")
	return dst[putSmall(dst, uint32(v)):]
}

func (v U32) Encode(dst []byte) []byte {
	check.Capacity(len(dst), U32Size, "U32.Encode")
	return dst[putU32(dst, uint32(v)):]
}

func (v U64) Encode(dst []byte) []byte {
	check.Capacity(len(dst), U64Size, "U64.Encode")
	return dst[putU64(dst, uint64(v)):]
}

func (v Uint) Encode(dst []byte) []byte {
	check.Capacity(len(dst), UintSize, "Uint.Encode")
	return dst[putUnsigned(dst, uint(v)):]
}

func (v U8) String() string {
	var b [U8Size]byte
	return string(v.Encode(b[:]))
}

func (v U16) String() string {
	var b [U16Size]byte
	return string(v.Encode(b[:]))
}

func (v U32) String() string {
	var b [U32Size]byte
	return string(v.Encode(b[:]))
}

func (v U64) String() string {
	var b [U64Size]byte
	return string(v.Encode(b[:]))
}

func (v Uint) String() string {
	var b [UintSize]byte
	return string(v.Encode(b[:]))
}

package totext

// Text sizes: the worst-case byte length of each type's textual form.
const (
	U8Size   = 3
	U16Size  = 5
	U32Size  = 10
	U64Size  = 20
	U128Size = 39

	I8Size   = U8Size + 1
	I16Size  = U16Size + 1
	I32Size  = U32Size + 1
	I64Size  = U64Size + 1
	I128Size = U128Size + 1

	// UintSize and IntSize follow the width of uint on the build target.
	UintSize = U32Size + (U64Size-U32Size)*(uintBits/64)
	IntSize  = UintSize + 1

	// AddrSize is one hex digit per nibble of a uintptr plus the "0x" prefix.
	AddrSize = ptrBits/4 + 2

	// MaxSize bounds every size above.
	MaxSize = I128Size
)

const (
	uintBits = 32 << (^uint(0) >> 63)
	ptrBits  = 32 << (^uintptr(0) >> 63)
)

// Value is the closed set of types that can convert themselves to text.
// The union keeps Value a constraint only, so conversions are always
// dispatched statically through generic instantiation.
type Value interface {
	U8 | U16 | U32 | U64 | Uint | U128 | I8 | I16 | I32 | I64 | Int | I128 | Addr

	// TextSize returns the type's text size constant.
	TextSize() int
	// Encode writes the text into the tail of dst and returns the written
	// span. len(dst) must be at least TextSize().
	Encode(dst []byte) []byte
}

// Size returns the text size of T.
func Size[T Value]() int {
	var v T
	return v.TextSize()
}

// EncodeIf is Encode for destinations that may be too small: it reports
// false, leaving dst untouched, instead of violating the size requirement.
func EncodeIf[T Value](v T, dst []byte) ([]byte, bool) {
	if len(dst) < v.TextSize() {
		return nil, false
	}
	return v.Encode(dst), true
}

// Package fixbuf provides fixed-capacity text buffers for totext values.
//
// A Buffer owns an N-byte array and the length of the text most recently
// written into its tail. Only that suffix is ever exposed; the prefix holds
// whatever earlier writes left there and is never read. The zero value is
// an empty buffer.
//
//	var b fixbuf.I32
//	fixbuf.Write(&b, totext.I32(-7))
//	uart.Write(b.Bytes()) // "-7"
//
// Write, Format and Of are functions rather than methods because Go methods
// cannot take type parameters of their own.
package fixbuf

import (
	"io"
	"unsafe"

	"numtext-go/internal/check"
	"numtext-go/totext"
)

// Storage lists the capacities a Buffer can have. All of them fit the
// uint8 length kept next to the array.
type Storage interface {
	[3]byte | [4]byte | [5]byte | [6]byte | [10]byte | [11]byte | [18]byte |
		[20]byte | [21]byte | [39]byte | [40]byte | [64]byte
}

// Buffer is a fixed-capacity text buffer. It must not be copied while a
// slice returned by Bytes, Write or Format is still in use.
type Buffer[S Storage] struct {
	data S
	n    uint8 // length of the valid suffix
}

// One capacity per supported width.
type (
	U8   = Buffer[[totext.U8Size]byte]
	U16  = Buffer[[totext.U16Size]byte]
	U32  = Buffer[[totext.U32Size]byte]
	U64  = Buffer[[totext.U64Size]byte]
	U128 = Buffer[[totext.U128Size]byte]
	I8   = Buffer[[totext.I8Size]byte]
	I16  = Buffer[[totext.I16Size]byte]
	I32  = Buffer[[totext.I32Size]byte]
	I64  = Buffer[[totext.I64Size]byte]
	I128 = Buffer[[totext.I128Size]byte]
	Uint = Buffer[[totext.UintSize]byte]
	Int  = Buffer[[totext.IntSize]byte]
	Addr = Buffer[[totext.AddrSize]byte]
)

// New returns an empty buffer.
func New[S Storage]() Buffer[S] { return Buffer[S]{} }

// Of returns a buffer holding the text of v.
func Of[S Storage, T totext.Value](v T) Buffer[S] {
	var b Buffer[S]
	Write(&b, v)
	return b
}

// Write encodes v into b, remembers the text and returns it.
func Write[S Storage, T totext.Value](b *Buffer[S], v T) []byte {
	t := Format(b, v)
	b.n = uint8(len(t))
	return t
}

// Format encodes v into b and returns the text without remembering it:
// Bytes keeps reporting the length of the last Write. Because both share
// the tail of the array, Format clobbers the remembered text.
func Format[S Storage, T totext.Value](b *Buffer[S], v T) []byte {
	a := b.arena()
	check.Capacity(len(a), v.TextSize(), "fixbuf.Format")
	return v.Encode(a)
}

// arena views the whole array as a byte slice.
func (b *Buffer[S]) arena() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.data)), len(b.data))
}

// Bytes returns the remembered text, or an empty slice if nothing was
// written. The slice aliases b and is capped so appends cannot reach past it.
func (b *Buffer[S]) Bytes() []byte {
	a := b.arena()
	off := len(a) - int(b.n)
	return a[off:len(a):len(a)]
}

// String returns a copy of the remembered text.
func (b *Buffer[S]) String() string { return string(b.Bytes()) }

// Len returns the length of the remembered text.
func (b *Buffer[S]) Len() int { return int(b.n) }

// Cap returns the capacity N.
func (b *Buffer[S]) Cap() int { return len(b.data) }

// Offset returns the index where the remembered text starts; it equals Cap
// when the buffer is empty.
func (b *Buffer[S]) Offset() int { return len(b.data) - int(b.n) }

// Reset forgets the remembered text.
func (b *Buffer[S]) Reset() { b.n = 0 }

// AppendTo appends the remembered text to dst.
func (b *Buffer[S]) AppendTo(dst []byte) []byte { return append(dst, b.Bytes()...) }

// WriteTo writes the remembered text to w.
func (b *Buffer[S]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

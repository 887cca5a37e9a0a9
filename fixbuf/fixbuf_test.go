package fixbuf

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"numtext-go/totext"
)

func TestEmpty(t *testing.T) {
	var b U64
	if b.Len() != 0 || b.Offset() != b.Cap() || len(b.Bytes()) != 0 || b.String() != "" {
		t.Fatalf("zero buffer: len=%d off=%d cap=%d text=%q", b.Len(), b.Offset(), b.Cap(), b.Bytes())
	}
	n := New[[40]byte]()
	if n.Cap() != 40 || n.Offset() != 40 || n.String() != "" {
		t.Fatalf("New: cap=%d off=%d text=%q", n.Cap(), n.Offset(), n.String())
	}
}

func TestWrite(t *testing.T) {
	var b I64
	got := Write(&b, totext.I64(math.MinInt64))
	if string(got) != "-9223372036854775808" || b.String() != string(got) {
		t.Fatalf("Write = %q, String = %q", got, b.String())
	}
	// 20 bytes: the minimum leaves the first byte of the 21-byte buffer unused.
	if b.Offset() != 1 || b.Len() != 20 {
		t.Fatalf("after extreme write: off=%d len=%d", b.Offset(), b.Len())
	}

	Write(&b, totext.I64(-1))
	if b.String() != "-1" || b.Offset() != b.Cap()-2 {
		t.Fatalf("after -1: text=%q off=%d", b.String(), b.Offset())
	}
}

func TestWriteFormatEquivalence(t *testing.T) {
	values := []int64{0, 1, -1, 42, -100, math.MaxInt64, math.MinInt64, 1234567890}
	for _, v := range values {
		var w, f I64
		written := Write(&w, totext.I64(v))
		formatted := Format(&f, totext.I64(v))
		if string(w.Bytes()) != string(formatted) || string(written) != string(formatted) {
			t.Fatalf("v=%d: Write=%q Bytes=%q Format=%q", v, written, w.Bytes(), formatted)
		}
		if f.Len() != 0 {
			t.Fatalf("v=%d: Format remembered %d bytes", v, f.Len())
		}
	}
}

func TestFormatKeepsLength(t *testing.T) {
	var b U32
	Write(&b, totext.U32(4000000000))
	if got := Format(&b, totext.U32(7)); string(got) != "7" {
		t.Fatalf("Format = %q, want 7", got)
	}
	if b.Len() != 10 {
		t.Fatalf("Len after Format = %d, want 10", b.Len())
	}
}

func TestReuseHygiene(t *testing.T) {
	var b U128
	Write(&b, totext.U128{Hi: math.MaxUint64, Lo: math.MaxUint64})
	for _, v := range []uint64{5, 99, 100, 0} {
		got := Write(&b, totext.U128From64(v))
		want := strconv.FormatUint(v, 10)
		if string(got) != want || b.String() != want {
			t.Fatalf("reuse: Write(%d) = %q, Bytes = %q", v, got, b.Bytes())
		}
	}
}

func TestOf(t *testing.T) {
	b := Of[[totext.AddrSize]byte](totext.Addr(0))
	if b.String() != "0x0" {
		t.Fatalf("Of(Addr(0)) = %q", b.String())
	}
	// Oversized buffers hold narrower values in their tail.
	w := Of[[64]byte](totext.I8(-128))
	if w.String() != "-128" || w.Offset() != 60 {
		t.Fatalf("Of[[64]byte](I8(-128)) = %q at %d", w.String(), w.Offset())
	}
}

func TestCapacities(t *testing.T) {
	type C struct {
		name string
		cap  int
		size int
	}
	var (
		u8   U8
		u16  U16
		u32  U32
		u64  U64
		u128 U128
		i8   I8
		i16  I16
		i32  I32
		i64  I64
		i128 I128
		ui   Uint
		in   Int
		ad   Addr
	)
	for _, c := range []C{
		{"U8", u8.Cap(), totext.Size[totext.U8]()},
		{"U16", u16.Cap(), totext.Size[totext.U16]()},
		{"U32", u32.Cap(), totext.Size[totext.U32]()},
		{"U64", u64.Cap(), totext.Size[totext.U64]()},
		{"U128", u128.Cap(), totext.Size[totext.U128]()},
		{"I8", i8.Cap(), totext.Size[totext.I8]()},
		{"I16", i16.Cap(), totext.Size[totext.I16]()},
		{"I32", i32.Cap(), totext.Size[totext.I32]()},
		{"I64", i64.Cap(), totext.Size[totext.I64]()},
		{"I128", i128.Cap(), totext.Size[totext.I128]()},
		{"Uint", ui.Cap(), totext.Size[totext.Uint]()},
		{"Int", in.Cap(), totext.Size[totext.Int]()},
		{"Addr", ad.Cap(), totext.Size[totext.Addr]()},
	} {
		if c.cap != c.size {
			t.Fatalf("%s: Cap() = %d, want %d", c.name, c.cap, c.size)
		}
	}
}

func TestAppendToWriteTo(t *testing.T) {
	var b I16
	Write(&b, totext.I16(-32768))

	if got := b.AppendTo([]byte("t=")); string(got) != "t=-32768" {
		t.Fatalf("AppendTo = %q", got)
	}

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil || n != 6 || out.String() != "-32768" {
		t.Fatalf("WriteTo = %d, %v, %q", n, err, out.String())
	}

	// Bytes is capped: appending must not write into the buffer.
	s := b.Bytes()
	if cap(s) != len(s) {
		t.Fatalf("cap(Bytes()) = %d, want %d", cap(s), len(s))
	}
}

func TestReset(t *testing.T) {
	var b U8
	Write(&b, totext.U8(255))
	b.Reset()
	if b.Len() != 0 || b.String() != "" {
		t.Fatalf("after Reset: %q", b.String())
	}
}

func TestAllocationWrite(t *testing.T) {
	var b I128
	n := testing.AllocsPerRun(100, func() {
		Write(&b, totext.I128{Hi: 1 << 63})
		Format(&b, totext.I64(-1))
		_ = b.Bytes()
	})
	if n != 0 {
		t.Fatalf("expected zero allocations, got %.1f", n)
	}
}

package conv

import (
	"math"
	"strconv"
	"testing"
)

func TestItoa(t *testing.T) {
	var buf [21]byte
	for _, n := range []int64{0, 7, -7, 1000, -99999, math.MaxInt64, math.MinInt64} {
		if got, want := string(Itoa(buf[:], n)), strconv.FormatInt(n, 10); got != want {
			t.Fatalf("Itoa(%d) = %q, want %q", n, got, want)
		}
	}
	// 20 bytes hold every int64 text, but the size contract asks for 21.
	if got := Itoa(buf[:20], 1); len(got) != 0 {
		t.Fatalf("Itoa(short buf) = %q, want empty", got)
	}
}

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, n := range []uint64{0, 9, 10, 65535, math.MaxUint64} {
		if got, want := string(Utoa(buf[:], n)), strconv.FormatUint(n, 10); got != want {
			t.Fatalf("Utoa(%d) = %q, want %q", n, got, want)
		}
	}
	if got := Utoa(nil, 1); len(got) != 0 {
		t.Fatalf("Utoa(nil) = %q, want empty", got)
	}
}

func TestHex(t *testing.T) {
	var buf [18]byte
	type C struct {
		p    uintptr
		want string
	}
	for _, c := range []C{
		{0, "0x0"},
		{0x38, "0x38"},
		{0x2000_0000, "0x20000000"},
	} {
		if got := string(Hex(buf[:], c.p)); got != c.want {
			t.Fatalf("Hex(%#x) = %q, want %q", c.p, got, c.want)
		}
	}
	if got := Hex(buf[:1], 0); len(got) != 0 {
		t.Fatalf("Hex(short buf) = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	var buf [21]byte
	if got := string(Format(buf[:], int8(-128))); got != "-128" {
		t.Fatalf("Format(int8) = %q", got)
	}
	if got := string(Format(buf[:], uint32(4294967295))); got != "4294967295" {
		t.Fatalf("Format(uint32) = %q", got)
	}
	if got := string(Format(buf[:], -42)); got != "-42" {
		t.Fatalf("Format(int) = %q", got)
	}
	if got := Format(buf[:3], int8(1)); len(got) != 0 {
		t.Fatalf("Format(int8, 3 bytes) = %q, want empty", got)
	}
}

package probe

import (
	"bytes"
	"errors"
	"testing"

	"tinygo.org/x/drivers"

	"numtext-go/errcode"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// fakeI2C acknowledges reads at a fixed set of addresses.
type fakeI2C struct {
	present map[uint16]bool
	probed  []uint16
}

var errNack = errors.New("i2c: nack")

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.probed = append(f.probed, addr)
	if len(w) != 0 || len(r) != 1 {
		return errors.New("unexpected transfer shape")
	}
	if !f.present[addr] {
		return errNack
	}
	r[0] = 0xff
	return nil
}

func TestScan(t *testing.T) {
	bus := &fakeI2C{present: map[uint16]bool{0x08: true, 0x38: true, 0x68: true, 0x77: true, 0x78: true}}
	var out bytes.Buffer
	n, err := Scan(bus, &out)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if n != 4 {
		t.Fatalf("Scan found %d, want 4", n)
	}
	if got, want := out.String(), "0x8\n0x38\n0x68\n0x77\n"; got != want {
		t.Fatalf("Scan wrote %q, want %q", got, want)
	}
	if len(bus.probed) != int(Last-First+1) {
		t.Fatalf("probed %d addresses, want %d", len(bus.probed), Last-First+1)
	}
}

func TestScanEmpty(t *testing.T) {
	var out bytes.Buffer
	n, err := Scan(&fakeI2C{}, &out)
	if n != 0 || errcode.Of(err) != errcode.NoDevice {
		t.Fatalf("Scan(empty) = %d, %v, want 0, no_device", n, err)
	}
	if out.Len() != 0 {
		t.Fatalf("Scan(empty) wrote %q", out.String())
	}
}

type failWriter struct{ n int }

var errFull = errors.New("tx ring full")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errFull
	}
	f.n--
	return len(p), nil
}

func TestScanWriteError(t *testing.T) {
	bus := &fakeI2C{present: map[uint16]bool{0x10: true, 0x20: true, 0x30: true}}
	n, err := Scan(bus, &failWriter{n: 1})
	// Only the first line reached the writer.
	if n != 1 {
		t.Fatalf("Scan reported %d lines, want 1", n)
	}
	if !errors.Is(err, errFull) || errcode.Of(err) != errcode.Error {
		t.Fatalf("Scan error = %v, want wrapped errFull", err)
	}
	// Scanning stops at the failing write.
	if last := bus.probed[len(bus.probed)-1]; last != 0x20 {
		t.Fatalf("last probed %#x, want 0x20", last)
	}
}

func TestAppendLine(t *testing.T) {
	got := AppendLine([]byte("i2c0 "), 0x3c)
	if string(got) != "i2c0 0x3c\n" {
		t.Fatalf("AppendLine = %q", got)
	}
}

//go:build !numtext_fast

package fixbuf

import (
	"testing"

	"numtext-go/errcode"
	"numtext-go/totext"
)

func TestUndersizedBufferPanics(t *testing.T) {
	defer func() {
		r := recover()
		if got := errcode.Recovered(r); got != errcode.ShortBuffer {
			t.Fatalf("recovered %v, want short_buffer", r)
		}
		if e := r.(*errcode.E); e.Op != "fixbuf.Format" {
			t.Fatalf("Op = %q, want fixbuf.Format", e.Op)
		}
	}()
	var b U8
	// 7 would fit, but a U64 needs 20 bytes in the worst case.
	Write(&b, totext.U64(7))
	t.Fatal("Write(U8 buffer, U64) did not panic")
}

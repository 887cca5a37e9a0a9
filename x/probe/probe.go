// Package probe scans an I2C bus and reports responding addresses as text.
//
// Each responder becomes one "0x.." line, formatted into a stack buffer so
// a scan allocates nothing and can write straight into a UART.
package probe

import (
	"io"

	"tinygo.org/x/drivers"

	"numtext-go/errcode"
	"numtext-go/totext"
)

// Range of 7-bit addresses a scan covers; the rest are reserved by the bus.
const (
	First uint16 = 0x08
	Last  uint16 = 0x77
)

// Scan probes every address in [First, Last] with a one-byte read and writes
// one line per responder to w. It returns the number of lines written and
// errcode.NoDevice when nothing responds.
func Scan(bus drivers.I2C, w io.Writer) (int, error) {
	found := 0
	var werr error
	var l line
	Each(bus, func(addr uint16) bool {
		if _, err := w.Write(l.put(addr)); err != nil {
			werr = err
			return false
		}
		found++
		return true
	})
	if werr != nil {
		return found, &errcode.E{C: errcode.Error, Op: "probe.Scan", Msg: "write failed", Err: werr}
	}
	if found == 0 {
		return 0, &errcode.E{C: errcode.NoDevice, Op: "probe.Scan"}
	}
	return found, nil
}

// Each calls fn for every responding address until fn returns false.
func Each(bus drivers.I2C, fn func(addr uint16) bool) {
	var rx [1]byte
	for a := First; a <= Last; a++ {
		if bus.Tx(a, nil, rx[:]) != nil {
			continue
		}
		if !fn(a) {
			return
		}
	}
}

// AppendLine appends the report line for addr ("0x..\n") to dst.
func AppendLine(dst []byte, addr uint16) []byte {
	var l line
	return append(dst, l.put(addr)...)
}

// line holds one report line: the address text followed by '\n'.
type line [totext.AddrSize + 1]byte

func (l *line) put(addr uint16) []byte {
	s := totext.Addr(addr).Encode(l[:totext.AddrSize])
	l[totext.AddrSize] = '\n'
	return l[totext.AddrSize-len(s):]
}

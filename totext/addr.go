package totext

import (
	"unsafe"

	"numtext-go/digits"
	"numtext-go/internal/check"
)

// Addr is a machine address, printed as "0x" and lowercase hex digits.
type Addr uintptr

// AddrOf returns the address p points to.
func AddrOf(p unsafe.Pointer) Addr { return Addr(uintptr(p)) }

func (Addr) TextSize() int { return AddrSize }

func (a Addr) Encode(dst []byte) []byte {
	check.Capacity(len(dst), AddrSize, "Addr.Encode")
	return dst[putHex(dst, uintptr(a)):]
}

func (a Addr) String() string {
	var b [AddrSize]byte
	return string(a.Encode(b[:]))
}

// putHex emits at least one nibble, so zero becomes "0x0".
func putHex(dst []byte, v uintptr) int {
	i := len(dst)
	for {
		i--
		dst[i] = digits.Hex[v&0xf]
		v >>= 4
		if v == 0 {
			break
		}
	}
	i -= 2
	dst[i], dst[i+1] = '0', 'x'
	return i
}

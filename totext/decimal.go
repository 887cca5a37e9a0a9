package totext

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"numtext-go/digits"
)

// The put* helpers write back to front so that the text ends at len(dst) and
// return the index of its first byte. None of them checks capacity.

func put2(dst []byte, i int, v uint32) {
	v *= 2
	dst[i], dst[i+1] = digits.Pairs[v], digits.Pairs[v+1]
}

func put4(dst []byte, i int, v uint32) {
	hi, lo := (v/100)*2, (v%100)*2
	dst[i], dst[i+1] = digits.Pairs[hi], digits.Pairs[hi+1]
	dst[i+2], dst[i+3] = digits.Pairs[lo], digits.Pairs[lo+1]
}

// putLead writes v < 100 without a leading zero so that it ends at dst[i-1].
func putLead(dst []byte, i int, v uint32) int {
	if v <= 9 {
		i--
		dst[i] = '0' + byte(v)
		return i
	}
	i -= 2
	put2(dst, i, v)
	return i
}

// putSmall serves the 8 and 16 bit widths, two digits per step.
func putSmall(dst []byte, v uint32) int {
	i := len(dst)
	for v >= 100 {
		q := v / 100
		i -= 2
		put2(dst, i, v-q*100)
		v = q
	}
	return putLead(dst, i, v)
}

func putU32(dst []byte, v uint32) int {
	i := len(dst)
	for v >= 10000 {
		q := v / 10000
		i -= 4
		put4(dst, i, v-q*10000)
		v = q
	}
	if v >= 100 {
		q := v / 100
		i -= 2
		put2(dst, i, v-q*100)
		v = q
	}
	return putLead(dst, i, v)
}

func putU64(dst []byte, v uint64) int {
	i := len(dst)
	// 64-bit divisions are library calls on 32-bit targets; leave the
	// 32-bit encoder to finish as soon as the rest fits.
	for v > math.MaxUint32 {
		q := v / 10000
		i -= 4
		put4(dst, i, uint32(v-q*10000))
		v = q
	}
	return putU32(dst[:i], uint32(v))
}

// putUnsigned picks the encoder for U's width.
func putUnsigned[U constraints.Unsigned](dst []byte, v U) int {
	return putWidth(dst, uint64(v), unsafe.Sizeof(v))
}

func putWidth(dst []byte, v uint64, size uintptr) int {
	switch size {
	case 1, 2:
		return putSmall(dst, uint32(v))
	case 4:
		return putU32(dst, uint32(v))
	}
	return putU64(dst, v)
}

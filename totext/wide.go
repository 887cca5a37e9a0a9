package totext

import (
	"math/bits"

	"numtext-go/internal/check"
)

// U128 is an unsigned 128-bit integer split into two 64-bit words.
type U128 struct {
	Hi, Lo uint64
}

// I128 is a signed 128-bit integer in two's complement, split like U128.
type I128 struct {
	Hi, Lo uint64
}

// U128From64 widens v.
func U128From64(v uint64) U128 { return U128{Lo: v} }

// I128From64 sign-extends v.
func I128From64(v int64) I128 { return I128{Hi: uint64(v >> 63), Lo: uint64(v)} }

func (U128) TextSize() int { return U128Size }
func (I128) TextSize() int { return I128Size }

func (v U128) IsZero() bool { return v.Hi|v.Lo == 0 }

// Negative reports whether the sign bit is set.
func (v I128) Negative() bool { return int64(v.Hi) < 0 }

// magnitude returns |v| as U128; the minimum value maps to 2^127.
func (v I128) magnitude() U128 {
	if !v.Negative() {
		return U128(v)
	}
	lo, borrow := bits.Sub64(0, v.Lo, 0)
	hi, _ := bits.Sub64(0, v.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

func (v U128) Encode(dst []byte) []byte {
	check.Capacity(len(dst), U128Size, "U128.Encode")
	return dst[putU128(dst, v):]
}

func (v I128) Encode(dst []byte) []byte {
	check.Capacity(len(dst), I128Size, "I128.Encode")
	if !v.Negative() {
		return dst[putU128(dst, U128(v)):]
	}
	i := putU128(dst[1:], v.magnitude())
	dst[i] = '-'
	return dst[i:]
}

func (v U128) String() string {
	var b [U128Size]byte
	return string(v.Encode(b[:]))
}

func (v I128) String() string {
	var b [I128Size]byte
	return string(v.Encode(b[:]))
}

const (
	e19         = 10_000_000_000_000_000_000
	groupDigits = 19

	// 10^19 = 2^19 * 5^19; values below 2^83 shifted right by 19 fit in
	// 64 bits and only need the odd factor.
	e19Odd     = 19_073_486_328_125
	e19Twos    = 19
	smallLimit = 1 << (83 - 64) // 2^83 as a bound on Hi

	// ceil(2^(128+62) / 10^19): the high 128 bits of n*recip shifted right
	// by recipShift give floor(n / 10^19) for every n >= 2^83.
	recipHi    = 0x760f253edb4ab0d2
	recipLo    = 0x9598f4f1e8361973
	recipShift = 62
)

// putU128 writes at most three groups of 19 digits. Every group but the
// leading one is zero-padded to its full width.
func putU128(dst []byte, n U128) int {
	if n.Hi == 0 {
		return putU64(dst, n.Lo)
	}
	q, r := divRem1e19(n)
	i := padZeros(dst, putU64(dst, r), len(dst)-groupDigits)
	if q.Hi == 0 {
		return putU64(dst[:i], q.Lo)
	}
	q, r = divRem1e19(q)
	i = padZeros(dst, putU64(dst[:i], r), i-groupDigits)
	// What is left after two divisions is below 2^128/10^38 < 100.
	return putLead(dst, i, uint32(q.Lo))
}

// padZeros fills dst[start:i] with '0' and returns start.
func padZeros(dst []byte, i, start int) int {
	for i > start {
		i--
		dst[i] = '0'
	}
	return i
}

// divRem1e19Recip divides by 10^19 with 64x64->128 multiplies only.
func divRem1e19Recip(n U128) (U128, uint64) {
	var q U128
	if n.Hi < smallLimit {
		q.Lo = (n.Hi<<(64-e19Twos) | n.Lo>>e19Twos) / e19Odd
	} else {
		h := mulHi(n, U128{Hi: recipHi, Lo: recipLo})
		q = U128{Hi: h.Hi >> recipShift, Lo: h.Hi<<(64-recipShift) | h.Lo>>recipShift}
	}
	// The remainder is below 2^64, so the low word of n - q*10^19 is exact.
	return q, n.Lo - q.Lo*e19
}

// mulHi returns the high 128 bits of the 256-bit product x*y.
func mulHi(x, y U128) U128 {
	carry, _ := bits.Mul64(x.Lo, y.Lo)

	mHi, mLo := bits.Mul64(x.Lo, y.Hi)
	mLo, c := bits.Add64(mLo, carry, 0)
	mHi += c

	tHi, tLo := bits.Mul64(x.Hi, y.Lo)
	_, c = bits.Add64(tLo, mLo, 0)
	tHi += c

	hi, lo := bits.Mul64(x.Hi, y.Hi)
	lo, c = bits.Add64(lo, mHi, 0)
	hi += c
	lo, c = bits.Add64(lo, tHi, 0)
	hi += c
	return U128{Hi: hi, Lo: lo}
}

// divRem1e19Long divides by 10^19 with native 64-bit division for the high
// word and shift-and-subtract for the low one.
func divRem1e19Long(n U128) (U128, uint64) {
	q := U128{Hi: n.Hi / e19}
	r := n.Hi - q.Hi*e19
	for i := 63; i >= 0; i-- {
		// r < 10^19 < 2^64, but 2r+1 may not be; carry holds the lost bit.
		carry := r >> 63
		r = r<<1 | n.Lo>>uint(i)&1
		q.Lo <<= 1
		if carry != 0 || r >= e19 {
			r -= e19
			q.Lo |= 1
		}
	}
	return q, r
}

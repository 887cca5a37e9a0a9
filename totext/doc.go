// Package totext converts fixed-width integers and addresses to text without
// allocating.
//
// Every value type (U8 … U128, I8 … I128, the platform-width Uint and Int,
// and Addr) reports a constant TextSize and encodes itself into the tail of
// a caller-owned destination, digits written back to front:
//
//	var b [totext.I64Size]byte
//	s := totext.I64(-42).Encode(b[:]) // s == "-42", s aliases b[18:]
//
// Encode requires len(dst) >= TextSize. The requirement is asserted in the
// default build and compiled out with -tags numtext_fast (see
// internal/check). EncodeIf is the checked entry point for destinations of
// unknown size.
//
// Decimal widths of 32 bits and more consume four digits per step, the
// narrower widths two, both through the shared digit-pair table. 128-bit
// values are split into 19-digit groups by dividing by 10^19, via a
// reciprocal multiplication on targets with a native 64x64->128 multiply and
// a shift-and-subtract long division elsewhere.
package totext

// Package conv keeps the small slice-in, slice-out integer helpers used by
// firmware code, backed by package totext. Each helper writes at the end of
// buf and returns buf[:0] instead of panicking when buf is too short.
package conv

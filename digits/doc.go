// Package digits holds the constant lookup tables shared by the encoders.
//
// Both tables are string constants: they live in flash on MCU targets and
// need no initialization, so concurrent readers never race.
//
//go:generate go run table_gen.go
package digits

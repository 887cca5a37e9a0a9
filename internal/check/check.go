// Package check holds the capacity assertion shared by the encoders and the
// fixed buffers.
//
// Two build modes exist. The default (verify) mode checks every destination
// against the type's text size and panics with an *errcode.E carrying
// errcode.ShortBuffer. Building with -tags numtext_fast removes the check;
// an undersized destination is then a caller bug, and what remains is Go's
// own bounds checking.
package check

import "numtext-go/errcode"

const shortMsg = "destination shorter than text size"

// Capacity panics when have < need and assertions are enabled.
func Capacity(have, need int, op string) {
	if Enabled && have < need {
		panic(&errcode.E{C: errcode.ShortBuffer, Op: op, Msg: shortMsg})
	}
}

//go:build !numtext_fast

package check

// Enabled reports whether capacity assertions are compiled in.
const Enabled = true

package errcode

// Code is a stable, comparable error identifier.
// It is a string newtype, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK          Code = "ok"
	ShortBuffer Code = "short_buffer" // destination narrower than the type's text size
	NoDevice    Code = "no_device"    // nothing answered on a probed bus
	InvalidArgs Code = "invalid_args"
	Mismatch    Code = "mismatch" // encoder output differs from the reference

	Error Code = "error" // generic fallback
)

// E keeps an operation name, a message and an optional cause next to a Code.
// Capacity violations panic with an *E so a recovering caller can still
// classify them with Of.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Recovered classifies a value returned by recover(). Non-error panics map to
// Error; a nil value maps to OK.
func Recovered(v any) Code {
	if v == nil {
		return OK
	}
	if err, ok := v.(error); ok {
		return Of(err)
	}
	return Error
}

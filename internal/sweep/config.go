package sweep

import (
	"strings"

	"numtext-go/errcode"
)

// Kind names one value type of package totext.
type Kind string

const (
	KindU8   Kind = "u8"
	KindU16  Kind = "u16"
	KindU32  Kind = "u32"
	KindU64  Kind = "u64"
	KindU128 Kind = "u128"
	KindI8   Kind = "i8"
	KindI16  Kind = "i16"
	KindI32  Kind = "i32"
	KindI64  Kind = "i64"
	KindI128 Kind = "i128"
	KindUint Kind = "uint"
	KindInt  Kind = "int"
	KindAddr Kind = "addr"
)

// AllKinds lists every kind in sweep order.
var AllKinds = []Kind{
	KindU8, KindU16, KindU32, KindU64, KindU128,
	KindI8, KindI16, KindI32, KindI64, KindI128,
	KindUint, KindInt, KindAddr,
}

// Config controls a sweep.
type Config struct {
	Kinds []Kind
	// Samples is the number of random values checked per kind, on top of
	// the extremes and decade boundaries.
	Samples int
	Seed    uint64
	// Exhaustive checks every value of the 8 and 16 bit kinds.
	Exhaustive bool
}

// DefaultConfig sweeps every kind with a fixed seed.
func DefaultConfig() Config {
	return Config{
		Kinds:      AllKinds,
		Samples:    100_000,
		Seed:       0x6e756d74657874,
		Exhaustive: true,
	}
}

// Validate rejects unknown kinds and negative sample counts.
func (c Config) Validate() error {
	if c.Samples < 0 {
		return &errcode.E{C: errcode.InvalidArgs, Op: "sweep.Config", Msg: "samples must not be negative"}
	}
	if len(c.Kinds) == 0 {
		return &errcode.E{C: errcode.InvalidArgs, Op: "sweep.Config", Msg: "no kinds selected"}
	}
	for _, k := range c.Kinds {
		if _, ok := checkers[k]; !ok {
			return &errcode.E{C: errcode.InvalidArgs, Op: "sweep.Config", Msg: "unknown kind " + string(k)}
		}
	}
	return nil
}

// ParseKinds parses a comma separated list of kinds; "all" or "" selects
// every kind.
func ParseKinds(s string) ([]Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return AllKinds, nil
	}
	var out []Kind
	for _, f := range strings.Split(s, ",") {
		k := Kind(strings.ToLower(strings.TrimSpace(f)))
		if _, ok := checkers[k]; !ok {
			return nil, &errcode.E{C: errcode.InvalidArgs, Op: "sweep.ParseKinds", Msg: "unknown kind " + string(k)}
		}
		out = append(out, k)
	}
	return out, nil
}

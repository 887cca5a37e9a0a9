// Package sweep compares the totext encoders against trusted reference
// formatters (strconv, math/big) over extremes, decade boundaries, random
// samples and, for the narrow kinds, every value.
package sweep

import (
	"context"
	"math"
	"math/big"
	"math/bits"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"numtext-go/errcode"
	"numtext-go/fixbuf"
	"numtext-go/totext"
)

// Result summarises one kind.
type Result struct {
	Kind       Kind
	Checked    int
	Mismatches int
	// First holds the first mismatching reference text, if any.
	First string
}

// Report is the outcome of a sweep.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Failed reports whether any kind mismatched.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Mismatches > 0 {
			return true
		}
	}
	return false
}

// Runner executes sweeps.
type Runner struct {
	cfg Config
	log *zap.Logger
}

// New returns a Runner; a nil logger means no logging.
func New(cfg Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log}
}

// ctxEvery is how many values are checked between context polls.
const ctxEvery = 1 << 12

// Run sweeps every configured kind. It stops early with ctx.Err() when ctx
// is cancelled, returning the results gathered so far.
func (r *Runner) Run(ctx context.Context) (rep Report, err error) {
	if err := r.cfg.Validate(); err != nil {
		return rep, err
	}
	start := time.Now()
	defer func() { rep.Elapsed = time.Since(start) }()

	for _, k := range r.cfg.Kinds {
		s := &state{
			Runner: r,
			ctx:    ctx,
			rng:    rand.New(rand.NewPCG(r.cfg.Seed, seedOf(k))),
			res:    Result{Kind: k},
		}
		checkers[k](s)
		rep.Results = append(rep.Results, s.res)
		r.log.Info("kind swept",
			zap.String("kind", string(k)),
			zap.Int("checked", s.res.Checked),
			zap.Int("mismatches", s.res.Mismatches))
		if s.err != nil {
			return rep, s.err
		}
	}
	if rep.Failed() {
		return rep, &errcode.E{C: errcode.Mismatch, Op: "sweep.Run"}
	}
	return rep, nil
}

// state is the per-kind context handed to a checker.
type state struct {
	*Runner
	ctx context.Context
	rng *rand.Rand
	res Result
	err error
}

// done polls the context every ctxEvery checks.
func (s *state) done() bool {
	if s.err != nil {
		return true
	}
	if s.res.Checked%ctxEvery == 0 {
		s.err = s.ctx.Err()
	}
	return s.err != nil
}

// compare encodes v through a fixed buffer and records a mismatch with the
// reference text want.
func compare[T totext.Value](s *state, v T, want string) {
	s.res.Checked++
	var b fixbuf.Buffer[[totext.MaxSize]byte]
	got := fixbuf.Write(&b, v)
	if string(got) == want && len(got) <= v.TextSize() {
		return
	}
	s.res.Mismatches++
	if s.res.First == "" {
		s.res.First = want
	}
	s.log.Warn("mismatch",
		zap.String("kind", string(s.res.Kind)),
		zap.String("want", want),
		zap.ByteString("got", got),
		zap.Int("textSize", v.TextSize()))
}

var checkers = map[Kind]func(*state){
	KindU8:   func(s *state) { narrow(s, 0, math.MaxUint8, func(n int64) { compare(s, totext.U8(n), strconv.FormatInt(n, 10)) }) },
	KindI8:   func(s *state) { narrow(s, math.MinInt8, math.MaxInt8, func(n int64) { compare(s, totext.I8(n), strconv.FormatInt(n, 10)) }) },
	KindU16:  func(s *state) { narrow(s, 0, math.MaxUint16, func(n int64) { compare(s, totext.U16(n), strconv.FormatInt(n, 10)) }) },
	KindI16:  func(s *state) { narrow(s, math.MinInt16, math.MaxInt16, func(n int64) { compare(s, totext.I16(n), strconv.FormatInt(n, 10)) }) },
	KindU32:  func(s *state) { unsigned(s, math.MaxUint32, func(n uint64) { compare(s, totext.U32(n), strconv.FormatUint(n, 10)) }) },
	KindU64:  func(s *state) { unsigned(s, math.MaxUint64, func(n uint64) { compare(s, totext.U64(n), strconv.FormatUint(n, 10)) }) },
	KindUint: func(s *state) { unsigned(s, math.MaxUint, func(n uint64) { compare(s, totext.Uint(n), strconv.FormatUint(n, 10)) }) },
	KindI32:  func(s *state) { signed(s, 32, func(n int64) { compare(s, totext.I32(n), strconv.FormatInt(n, 10)) }) },
	KindI64:  func(s *state) { signed(s, 64, func(n int64) { compare(s, totext.I64(n), strconv.FormatInt(n, 10)) }) },
	KindInt:  func(s *state) { signed(s, strconv.IntSize, func(n int64) { compare(s, totext.Int(n), strconv.FormatInt(n, 10)) }) },
	KindAddr: func(s *state) {
		unsigned(s, uint64(^uintptr(0)), func(n uint64) { compare(s, totext.Addr(n), "0x"+strconv.FormatUint(n, 16)) })
	},
	KindU128: func(s *state) { wide(s, false) },
	KindI128: func(s *state) { wide(s, true) },
}

// seedOf gives every kind its own random stream (FNV-1a of the name).
func seedOf(k Kind) uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(k); i++ {
		h ^= uint64(k[i])
		h *= 1099511628211
	}
	return h
}

// narrow checks [lo, hi] completely when Exhaustive is set, otherwise the
// bounds plus random samples.
func narrow(s *state, lo, hi int64, f func(int64)) {
	f(lo)
	f(hi)
	if s.cfg.Exhaustive {
		for n := lo; n <= hi && !s.done(); n++ {
			f(n)
		}
		return
	}
	for i := 0; i < s.cfg.Samples && !s.done(); i++ {
		f(lo + s.rng.Int64N(hi-lo+1))
	}
}

// unsigned checks 0, max, decade boundaries up to max and random values
// spread over every magnitude.
func unsigned(s *state, hi uint64, f func(uint64)) {
	f(0)
	f(hi)
	for p := uint64(10); p <= hi; p *= 10 {
		f(p - 1)
		f(p)
		if p < hi {
			f(p + 1)
		}
		if p > hi/10 {
			break
		}
	}
	width := uint(bits.Len64(hi))
	for i := 0; i < s.cfg.Samples && !s.done(); i++ {
		f((s.rng.Uint64() & hi) >> s.rng.UintN(width))
	}
}

// signed checks min, max, -1 and random values of the given width.
func signed(s *state, width int, f func(int64)) {
	lo := int64(-1) << (width - 1)
	hi := -(lo + 1)
	f(lo)
	f(hi)
	f(-1)
	f(0)
	for i := 0; i < s.cfg.Samples && !s.done(); i++ {
		n := int64(s.rng.Uint64()) >> (64 - width)
		f(n >> s.rng.UintN(uint(width)))
	}
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

func bigOf(hi, lo uint64, neg bool) *big.Int {
	b := new(big.Int).SetUint64(hi)
	b.Lsh(b, 64).Or(b, new(big.Int).SetUint64(lo))
	if neg {
		b.Sub(b, two128)
	}
	return b
}

// wide checks the 128-bit kinds against math/big, including values whose
// middle 19-digit group has leading zeros.
func wide(s *state, isSigned bool) {
	check := func(hi, lo uint64) {
		if isSigned {
			compare(s, totext.I128{Hi: hi, Lo: lo}, bigOf(hi, lo, int64(hi) < 0).String())
			return
		}
		compare(s, totext.U128{Hi: hi, Lo: lo}, bigOf(hi, lo, false).String())
	}
	check(0, 0)
	check(math.MaxUint64, math.MaxUint64)
	check(1<<63, 0)
	check(math.MaxInt64, math.MaxUint64)
	check(3, 14659777778871445153) // 70000010000000100001
	for i := 0; i < s.cfg.Samples && !s.done(); i++ {
		hi, lo := s.rng.Uint64(), s.rng.Uint64()
		switch i % 3 {
		case 1:
			hi >>= s.rng.UintN(64)
		case 2:
			lo &= 0xffff0000000000ff
		}
		check(hi, lo)
	}
}

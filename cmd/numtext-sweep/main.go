// Command numtext-sweep checks the totext encoders against strconv and
// math/big on the host and exits non-zero on any mismatch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"numtext-go/internal/sweep"
)

func main() {
	def := sweep.DefaultConfig()
	var (
		kinds      = flag.String("kinds", "all", "Comma separated kinds (u8,u16,u32,u64,u128,i8,...,uint,int,addr) or all")
		samples    = flag.Int("samples", def.Samples, "Random values per kind")
		seed       = flag.Uint64("seed", def.Seed, "Random seed")
		exhaustive = flag.Bool("exhaustive", def.Exhaustive, "Check every 8 and 16 bit value")
		verbose    = flag.Bool("v", false, "Development logging")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ks, err := sweep.ParseKinds(*kinds)
	if err != nil {
		log.Error("bad -kinds", zap.Error(err))
		os.Exit(2)
	}
	cfg := sweep.Config{Kinds: ks, Samples: *samples, Seed: *seed, Exhaustive: *exhaustive}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := sweep.New(cfg, log).Run(ctx)
	checked, mismatches := 0, 0
	for _, r := range rep.Results {
		checked += r.Checked
		mismatches += r.Mismatches
	}
	log.Info("sweep finished",
		zap.Int("kinds", len(rep.Results)),
		zap.Int("checked", checked),
		zap.Int("mismatches", mismatches),
		zap.Duration("elapsed", rep.Elapsed))
	if err != nil {
		log.Error("sweep failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

package selftest

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/hamming84/internal/hash"
	"github.com/arloliu/hamming84/internal/log"
	"github.com/arloliu/hamming84/internal/options"
)

const (
	DefaultTrials   = 100 // random trials per run
	DefaultFlipRate = 0.5 // probability that a random trial flips one bit
)

// Config holds the run parameters of a Harness.
type Config struct {
	// Trials is the number of random trials after the exhaustive sweep.
	Trials int
	// FlipRate is the probability in [0, 1] that a random trial flips a bit.
	FlipRate float64
	// Exhaustive enables the 16 x (1 + 8) sweep.
	Exhaustive bool
	// Seed seeds the PCG generator; only used when SeedSet is true.
	Seed    [2]uint64
	SeedSet bool
	// Logger receives mismatch warnings and the run summary.
	Logger logrus.FieldLogger
}

func defaultConfig() Config {
	return Config{
		Trials:     DefaultTrials,
		FlipRate:   DefaultFlipRate,
		Exhaustive: true,
		Logger:     log.Discard(),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithTrials sets the number of random trials. Zero disables the random phase.
func WithTrials(n int) Option {
	return options.Checked(n, checkTrials, func(cfg *Config, n int) {
		cfg.Trials = n
	})
}

// WithFlipRate sets the probability that a random trial flips one bit.
func WithFlipRate(rate float64) Option {
	return options.Checked(rate, checkFlipRate, func(cfg *Config, rate float64) {
		cfg.FlipRate = rate
	})
}

// WithExhaustive enables or disables the exhaustive sweep.
func WithExhaustive(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Exhaustive = enabled
	})
}

// WithSeed seeds the random trials explicitly.
func WithSeed(seed1, seed2 uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = [2]uint64{seed1, seed2}
		cfg.SeedSet = true
	})
}

// WithSeedLabel seeds the random trials from the xxHash64 of label.
func WithSeedLabel(label string) Option {
	return options.NoError(func(cfg *Config) {
		seed1, seed2 := hash.Seed(label)
		cfg.Seed = [2]uint64{seed1, seed2}
		cfg.SeedSet = true
	})
}

// WithLogger sets the logger. Nil restores the discarding default.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(cfg *Config) {
		if logger == nil {
			cfg.Logger = log.Discard()
			return
		}
		cfg.Logger = logger
	})
}

func checkTrials(n int) error {
	if n < 0 {
		return fmt.Errorf("trials must not be negative, got %d", n)
	}

	return nil
}

// checkFlipRate also rejects NaN, which fails both comparisons.
func checkFlipRate(rate float64) error {
	if !(rate >= 0 && rate <= 1) {
		return fmt.Errorf("flip rate must be within [0, 1], got %v", rate)
	}

	return nil
}

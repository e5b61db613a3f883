package selftest

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/hamming84/format"
	"github.com/arloliu/hamming84/hamming"
	"github.com/arloliu/hamming84/internal/options"
)

// Report summarizes a run. On failure it counts the cases that passed
// before the mismatch.
type Report struct {
	Clean   int // cases decoded without a flip
	Flipped int // cases decoded with one flipped bit
	Trials  int // random trials completed

	// FlipsByPosition counts flipped cases per codeword position.
	FlipsByPosition [format.CodewordBits]int

	Seed [2]uint64 // seed of the random phase
}

// Total returns the number of cases checked.
func (r Report) Total() int {
	return r.Clean + r.Flipped
}

func (r Report) String() string {
	return fmt.Sprintf("%d cases (%d clean, %d flipped, %d random trials), seed %016x%016x",
		r.Total(), r.Clean, r.Flipped, r.Trials, r.Seed[0], r.Seed[1])
}

// Harness runs round-trip checks against a codec. It is not safe for
// concurrent use; create one per goroutine.
type Harness struct {
	codec hamming.Codec
	cfg   Config
	rng   *rand.Rand
}

// New creates a harness for codec.
//
// Returns an error if codec is nil or an option rejects its value.
func New(codec hamming.Codec, opts ...Option) (*Harness, error) {
	if codec == nil {
		return nil, errors.New("selftest: codec is nil")
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("selftest: %w", err)
	}

	if !cfg.SeedSet {
		cfg.Seed = [2]uint64{rand.Uint64(), rand.Uint64()}
	}

	return &Harness{
		codec: codec,
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(cfg.Seed[0], cfg.Seed[1])),
	}, nil
}

// Run creates a harness with opts and runs it once.
func Run(codec hamming.Codec, opts ...Option) (Report, error) {
	h, err := New(codec, opts...)
	if err != nil {
		return Report{}, err
	}

	return h.Run()
}

// Config returns the effective configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// Run performs the exhaustive sweep (if enabled) followed by the random
// trials, stopping at the first mismatch or codec error.
func (h *Harness) Run() (Report, error) {
	report := Report{Seed: h.cfg.Seed}
	logger := h.cfg.Logger

	if h.cfg.Exhaustive {
		if err := h.sweep(&report); err != nil {
			return report, err
		}
	}

	for range h.cfg.Trials {
		nibble := uint8(h.rng.IntN(hamming.NumBlocks))
		pos := format.PosNone
		if h.rng.Float64() < h.cfg.FlipRate {
			pos = format.Position(h.rng.IntN(format.CodewordBits))
		}

		d, err := hamming.DataBlockFromNibble(nibble)
		if err != nil {
			return report, err
		}
		if err := h.check(&report, d.String(), pos); err != nil {
			return report, err
		}
		report.Trials++
	}

	logger.WithFields(logrus.Fields{
		"clean":   report.Clean,
		"flipped": report.Flipped,
		"trials":  report.Trials,
	}).Info("self-test passed")

	return report, nil
}

func (h *Harness) sweep(report *Report) error {
	for _, d := range hamming.AllDataBlocks() {
		data := d.String()
		if err := h.check(report, data, format.PosNone); err != nil {
			return err
		}
		for pos := format.PosP; pos <= format.PosD4; pos++ {
			if err := h.check(report, data, pos); err != nil {
				return err
			}
		}
	}

	return nil
}

// check encodes data, flips pos in transit and verifies the decoded value.
func (h *Harness) check(report *Report, data string, pos format.Position) error {
	encoded, err := h.codec.Encode(data)
	if err != nil {
		return fmt.Errorf("selftest: encode %s: %w", data, err)
	}

	transmitted, err := transmit(encoded, pos)
	if err != nil {
		return err
	}

	decoded, err := h.codec.Decode(transmitted)
	if err != nil {
		return fmt.Errorf("selftest: decode %s: %w", transmitted, err)
	}

	if decoded != data {
		mismatch := &MismatchError{
			Data:        data,
			Transmitted: transmitted,
			Flipped:     pos,
			Decoded:     decoded,
		}
		h.cfg.Logger.WithFields(logrus.Fields{
			"data":        data,
			"transmitted": transmitted,
			"flipped":     pos.String(),
			"decoded":     decoded,
		}).Warn("round-trip mismatch")

		return mismatch
	}

	if pos == format.PosNone {
		report.Clean++
	} else {
		report.Flipped++
		report.FlipsByPosition[pos]++
	}

	return nil
}

// transmit simulates the channel: it inverts the character at pos, or
// returns encoded unchanged for format.PosNone. Before flipping, the whole
// codec output must be exactly 8 '0'/'1' characters.
func transmit(encoded string, pos format.Position) (string, error) {
	if pos == format.PosNone {
		return encoded, nil
	}
	if len(encoded) != format.CodewordBits {
		return "", fmt.Errorf("selftest: cannot flip %s of %q: want %d characters",
			pos, encoded, format.CodewordBits)
	}
	for i := 0; i < len(encoded); i++ {
		if _, ok := format.BitFromChar(encoded[i]); !ok {
			return "", fmt.Errorf("selftest: codec produced non-binary codeword %q", encoded)
		}
	}
	if !pos.Valid() {
		return "", fmt.Errorf("selftest: cannot flip %s of %q", pos, encoded)
	}

	b := []byte(encoded)
	b[pos] ^= 1 // '0' <-> '1'

	return string(b), nil
}

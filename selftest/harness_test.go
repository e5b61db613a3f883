package selftest

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/hamming84/errs"
	"github.com/arloliu/hamming84/format"
	"github.com/arloliu/hamming84/hamming"
)

// faultyCodec wraps the real codec and tampers with selected calls.
type faultyCodec struct {
	hamming.StringCodec
	corruptDecode map[string]string // transmitted codeword -> forced output
	encodeErr     error
	encodeOutput  string
}

func (c faultyCodec) Encode(data string) (string, error) {
	if c.encodeErr != nil {
		return "", c.encodeErr
	}
	if c.encodeOutput != "" {
		return c.encodeOutput, nil
	}

	return c.StringCodec.Encode(data)
}

func (c faultyCodec) Decode(encoded string) (string, error) {
	if out, ok := c.corruptDecode[encoded]; ok {
		return out, nil
	}

	return c.StringCodec.Decode(encoded)
}

func TestRun_ExhaustiveSweep(t *testing.T) {
	report, err := Run(hamming.NewStringCodec(), WithTrials(0))
	require.NoError(t, err)

	require.Equal(t, hamming.NumBlocks, report.Clean)
	require.Equal(t, hamming.NumBlocks*format.CodewordBits, report.Flipped)
	require.Equal(t, 144, report.Total())
	require.Zero(t, report.Trials)
	for pos, n := range report.FlipsByPosition {
		require.Equal(t, hamming.NumBlocks, n, "position %s", format.Position(pos))
	}
}

func TestRun_RandomTrials(t *testing.T) {
	report, err := Run(hamming.NewStringCodec(),
		WithExhaustive(false),
		WithTrials(500),
		WithSeedLabel("random-trials"),
	)
	require.NoError(t, err)
	require.Equal(t, 500, report.Trials)
	require.Equal(t, 500, report.Total())
	require.Positive(t, report.Clean)
	require.Positive(t, report.Flipped)
}

func TestRun_FlipRateBounds(t *testing.T) {
	t.Run("never flips", func(t *testing.T) {
		report, err := Run(hamming.NewStringCodec(), WithExhaustive(false), WithTrials(50), WithFlipRate(0))
		require.NoError(t, err)
		require.Equal(t, 50, report.Clean)
		require.Zero(t, report.Flipped)
	})

	t.Run("always flips", func(t *testing.T) {
		report, err := Run(hamming.NewStringCodec(), WithExhaustive(false), WithTrials(50), WithFlipRate(1))
		require.NoError(t, err)
		require.Zero(t, report.Clean)
		require.Equal(t, 50, report.Flipped)
	})
}

func TestRun_SeedIsReproducible(t *testing.T) {
	first, err := Run(hamming.NewStringCodec(), WithExhaustive(false), WithTrials(200), WithSeedLabel("replay"))
	require.NoError(t, err)

	second, err := Run(hamming.NewStringCodec(), WithExhaustive(false), WithTrials(200), WithSeedLabel("replay"))
	require.NoError(t, err)

	require.Equal(t, first, second)

	explicit, err := Run(hamming.NewStringCodec(), WithExhaustive(false), WithTrials(200), WithSeed(first.Seed[0], first.Seed[1]))
	require.NoError(t, err)
	require.Equal(t, first, explicit)
}

func TestRun_Mismatch(t *testing.T) {
	logger, hook := test.NewNullLogger()

	// "0000" encodes to "00000000"; flipping D2 transmits "00000100"
	codec := faultyCodec{corruptDecode: map[string]string{"00000100": "1111"}}

	report, err := Run(codec, WithTrials(0), WithLogger(logger))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRoundTripMismatch)

	mismatch, ok := AsMismatch(err)
	require.True(t, ok)
	require.Equal(t, "0000", mismatch.Data)
	require.Equal(t, "00000100", mismatch.Transmitted)
	require.Equal(t, format.PosD2, mismatch.Flipped)
	require.Equal(t, "1111", mismatch.Decoded)
	require.Equal(t,
		"decoding unsuccessful for original data 0000 and transmitted data 00000100 (flipped D2): got 1111",
		err.Error())

	// the clean case and P, H1, H2, H3, D1 flips passed first
	require.Equal(t, 1, report.Clean)
	require.Equal(t, 5, report.Flipped)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "round-trip mismatch", entry.Message)
	require.Equal(t, "D2", entry.Data["flipped"])
}

func TestRun_CodecErrors(t *testing.T) {
	t.Run("encode error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Run(faultyCodec{encodeErr: boom}, WithTrials(0))
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, ErrRoundTripMismatch)
	})

	t.Run("malformed codeword", func(t *testing.T) {
		_, err := Run(faultyCodec{encodeOutput: "0000"}, WithTrials(0))
		require.ErrorIs(t, err, errs.ErrInvalidInputShape)
		require.Contains(t, err.Error(), "selftest: decode 0000")
	})

	t.Run("non-binary codeword", func(t *testing.T) {
		_, err := Run(faultyCodec{encodeOutput: "xxxxxxxx"},
			WithExhaustive(false), WithTrials(1), WithFlipRate(1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "non-binary")
	})
}

func TestTransmit(t *testing.T) {
	out, err := transmit("01011010", format.PosNone)
	require.NoError(t, err)
	require.Equal(t, "01011010", out)

	out, err = transmit("01011010", format.PosP)
	require.NoError(t, err)
	require.Equal(t, "11011010", out)

	out, err = transmit("01011010", format.PosD4)
	require.NoError(t, err)
	require.Equal(t, "01011011", out)

	_, err = transmit("0101", format.PosD1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot flip")

	_, err = transmit("0101?010", format.PosH3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-binary")

	_, err = transmit("010110100", format.PosP)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot flip")

	_, err = transmit("01011010", format.Position(format.CodewordBits))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot flip")

	// the clean path leaves shape checks to the codec's decoder
	out, err = transmit("0101", format.PosNone)
	require.NoError(t, err)
	require.Equal(t, "0101", out)
}

func TestRun_LogsSummary(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	_, err := Run(hamming.NewStringCodec(), WithTrials(10), WithSeedLabel("summary"), WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "self-test passed", entry.Message)
	require.Equal(t, 10, entry.Data["trials"])
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"negative trials", WithTrials(-1)},
		{"flip rate above one", WithFlipRate(1.5)},
		{"negative flip rate", WithFlipRate(-0.1)},
		{"NaN flip rate", WithFlipRate(math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(hamming.NewStringCodec(), tt.opt)
			require.Error(t, err)
		})
	}

	_, err := New(nil)
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	h, err := New(hamming.NewStringCodec())
	require.NoError(t, err)

	cfg := h.Config()
	require.Equal(t, DefaultTrials, cfg.Trials)
	require.Equal(t, DefaultFlipRate, cfg.FlipRate)
	require.True(t, cfg.Exhaustive)
	require.NotNil(t, cfg.Logger)

	h, err = New(hamming.NewStringCodec(), WithLogger(nil))
	require.NoError(t, err)
	require.NotNil(t, h.Config().Logger)
}

func TestReport_String(t *testing.T) {
	r := Report{Clean: 16, Flipped: 128, Seed: [2]uint64{1, 2}}
	require.Equal(t, "144 cases (16 clean, 128 flipped, 0 random trials), seed 00000000000000010000000000000002", r.String())
}

// Package selftest verifies a hamming.Codec by round-tripping data blocks through
// a simulated transmission that flips at most one bit.
//
// A run has two phases:
//
//  1. Exhaustive sweep: every one of the 16 data blocks is encoded, decoded
//     clean, and decoded once with each of the 8 codeword bits flipped
//     (16 + 128 cases).
//  2. Random trials: a seeded generator picks a data block and, with the
//     configured flip rate, one bit position to flip.
//
// The first case whose decoded value differs from the original data stops the
// run with a *MismatchError, which matches ErrRoundTripMismatch via errors.Is.
//
// # Basic Usage
//
//	report, err := selftest.Run(hamming84.NewCodec(),
//	    selftest.WithTrials(1000),
//	    selftest.WithSeedLabel("nightly"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report)
//
// The same seed label always replays the same random trials. Without a seed
// option the run draws a fresh seed, recorded in Report.Seed.
package selftest

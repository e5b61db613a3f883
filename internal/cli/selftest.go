package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/hamming84"
	"github.com/arloliu/hamming84/selftest"
)

func newSelftestCommand(flags *rootFlags) *cobra.Command {
	var (
		trials     int
		flipRate   float64
		seed       string
		exhaustive bool
	)

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip every data block and random trials through the codec",
		Long: `selftest encodes every data block, decodes it clean and with each bit
flipped, then runs random trials that flip one bit with the given rate.
It stops at the first block that does not survive the round trip.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := flags.logger("selftest", cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts := []selftest.Option{
				selftest.WithTrials(trials),
				selftest.WithFlipRate(flipRate),
				selftest.WithExhaustive(exhaustive),
				selftest.WithLogger(logger),
			}
			if seed != "" {
				opts = append(opts, selftest.WithSeedLabel(seed))
			}

			report, err := selftest.Run(hamming84.NewCodec(), opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Test successful")
			fmt.Fprintln(cmd.OutOrStdout(), report)

			return nil
		},
	}

	cmd.Flags().IntVarP(&trials, "trials", "n", selftest.DefaultTrials, "number of random trials")
	cmd.Flags().Float64Var(&flipRate, "flip-rate", selftest.DefaultFlipRate, "probability that a random trial flips one bit")
	cmd.Flags().StringVar(&seed, "seed", "", "label to derive a reproducible seed from")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", true, "check all 16 blocks with every single-bit flip first")

	return cmd
}

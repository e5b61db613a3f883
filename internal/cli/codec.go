package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/hamming84/hamming"
)

func newEncodeCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <data>...",
		Short: "Encode 4-bit data blocks into codewords",
		Example: `  hamming84 encode 1010
  01011010`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger("encode", cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			for _, arg := range args {
				d, err := hamming.ParseDataBlock(arg)
				if err != nil {
					logger.WithError(err).Error("rejected input")
					return err
				}
				cw := hamming.Encode(d)
				logger.WithFields(logrus.Fields{"data": d.String(), "codeword": cw.String()}).Debug("encoded")
				fmt.Fprintln(cmd.OutOrStdout(), cw)
			}

			return nil
		},
	}
}

func newDecodeCommand(flags *rootFlags) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "decode <codeword>...",
		Short: "Decode codewords, correcting a single flipped bit",
		Example: `  hamming84 decode 11011010
  1010`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger("decode", cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			for _, arg := range args {
				cw, err := hamming.ParseCodeword(arg)
				if err != nil {
					logger.WithError(err).Error("rejected input")
					return err
				}

				data, corr := hamming.Correct(cw)
				if verbose && corr.Corrected() {
					logger.WithFields(logrus.Fields{
						"codeword": cw.String(),
						"position": corr.Position.String(),
						"syndrome": corr.Syndrome.String(),
					}).Warn("corrected flipped bit")
				}

				if verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", data, corr)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), data)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report which bit was corrected")

	return cmd
}

func newTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the 16-entry codebook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "data\tcodeword\thex")
			for _, d := range hamming.AllDataBlocks() {
				cw := hamming.Encode(d)
				fmt.Fprintf(out, "%s\t%s\t0x%02x\n", d, cw, cw.Byte())
			}

			return nil
		},
	}
}

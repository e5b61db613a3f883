// Package cli implements the hamming84 command line.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/hamming84/internal/log"
)

type rootFlags struct {
	logLevel string
	logFile  string
}

// NewRootCommand builds the command tree. Output goes to the writers set on
// the returned command (cmd.SetOut, cmd.SetErr).
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "hamming84",
		Short: "Hamming(8,4) single-error-correcting encoder and decoder",
		Long: `hamming84 encodes 4-bit data blocks into 8-bit codewords laid out as
P H1 H2 H3 D1 D2 D3 D4, and decodes codewords back, correcting any single
flipped bit. Bits are given as strings of 0 and 1.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", log.DefaultLevel.String(),
		"log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "",
		"also write warnings and errors to this file as JSON")

	root.AddCommand(
		newEncodeCommand(flags),
		newDecodeCommand(flags),
		newTableCommand(),
		newSelftestCommand(flags),
	)

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (f *rootFlags) logger(module string, errOut io.Writer) (*log.Logger, error) {
	return log.NewLogger(module, log.Config{
		Level:  f.logLevel,
		Output: errOut,
		File:   f.logFile,
	})
}

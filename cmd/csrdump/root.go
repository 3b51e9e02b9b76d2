package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/csrdump"
)

// options holds the hardware hooks the command runs against.
type options struct {
	probe  func() error
	reader csrdump.CounterReader
}

// newRootCommand creates the csrdump command. It takes no arguments and
// defines no flags beyond cobra's help.
func newRootCommand(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "csrdump",
		Short: "Print the RISC-V time, cycle and instret counters",
		Long: "csrdump reads the unprivileged time, cycle and instret counter CSRs of the\n" +
			"current hart and prints each as \"<name>: <decimal>\". It refuses to run\n" +
			"where a counter cannot be read rather than print a substitute value.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.probe(); err != nil {
				return err
			}

			return csrdump.Dump(cmd.OutOrStdout(), opts.reader)
		},
	}
}

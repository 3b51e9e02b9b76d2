package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/csrdump/internal/strace"
)

var errUsage = errors.New("expected exactly one trace file")

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stview <strace file>",
		Short: "Print a binary syscall trace",
		Long: "stview decodes the fixed-size syscall records written by the tracer\n" +
			"(six argument registers, the syscall number and epc, little-endian)\n" +
			"and prints one \"index: epc=..., name(args)\" line per record.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return strace.Dump(cmd.OutOrStdout(), f)
		},
	}
}

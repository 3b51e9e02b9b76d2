package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/cwbudde/csrdump/internal/checkpoint"
)

var errUsage = errors.New("expected exactly one parent directory")

func newRootCommand(logger *log.Logger) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fileopt <parent directory>",
		Short: "Deduplicate and localize checkpoint file dumps",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			stats, err := checkpoint.Optimize(args[0])
			if err != nil {
				return err
			}

			if verbose {
				logger.Printf("shared %d, copied %d, created %d, skipped %d",
					stats.Shared, stats.Copied, stats.Created, stats.Skipped)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log what was copied")

	return cmd
}

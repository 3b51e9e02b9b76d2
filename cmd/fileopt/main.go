// Command fileopt makes a directory of emulator checkpoints self-contained by
// copying the host files their descriptor dumps refer to.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const help = `Optimize the file dumps of a set of checkpoints.

Copies the host files referenced by the kfd dumps of every checkpoint under
the parent directory next to the checkpoints, keeping a single copy of each
read-only file shared by several dumps, and rewrites the dumps to point at
the copies.

Generate the checkpoints with --dump-after-open and without --dump-file.

  Usage: %s <parent directory>
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes fileopt and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "fileopt: ", 0)

	cmd := newRootCommand(logger)

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintf(stdout, help, cmd.Name())
		return 1
	case err != nil:
		logger.Print(err)
		return 1
	}

	return 0
}

// Command stview prints a binary syscall trace as one line per call.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes stview and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "stview: ", 0)

	cmd := newRootCommand()

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
		fmt.Fprintf(stdout, "Usage: %s <strace file>\n", cmd.Name())
		return 1
	case err != nil:
		logger.Print(err)
		return 1
	}

	return 0
}

// Command csrdump prints the current values of the RISC-V time, cycle and
// instret counters, one per line.
package main

import (
	"io"
	"log"
	"os"

	"github.com/cwbudde/csrdump"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, options{
		probe:  csrdump.Probe,
		reader: csrdump.Hardware{},
	}))
}

// run executes csrdump against opts and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, opts options) int {
	logger := log.New(stderr, "csrdump: ", 0)

	cmd := newRootCommand(opts)

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Print(err)
		return 1
	}

	return 0
}

// Package csrdump reads the RISC-V time, cycle and instret counters and
// reports their current values as text.
package csrdump

import (
	"io"

	"github.com/cwbudde/csrdump/internal/cpu"
)

// Counter aliases the internal counter identifier so callers outside the
// module can name counters.
type Counter = cpu.Counter

// The counters reported by Dump.
const (
	Time    = cpu.Time
	Cycle   = cpu.Cycle
	Instret = cpu.Instret
)

// Sequence is the fixed order in which Dump reads and reports counters.
var Sequence = [...]Counter{Time, Cycle, Instret}

//go:generate mockgen -destination mock_reader_test.go -package csrdump_test github.com/cwbudde/csrdump CounterReader

// CounterReader obtains the current value of a counter register.
type CounterReader interface {
	Read(c Counter) uint64
}

// Hardware reads counters directly from the executing hart.
type Hardware struct{}

// Read performs a fresh register read of c.
func (Hardware) Read(c Counter) uint64 {
	return cpu.Read(c)
}

// Probe reports whether every counter in Sequence can be read on this
// machine. The first failure is returned.
func Probe() error {
	for _, c := range Sequence {
		if err := cpu.Probe(c); err != nil {
			return err
		}
	}

	return nil
}

// Dump reads each counter in Sequence and reports it to w immediately after
// the read, so no value outlives its own line. It stops at the first write
// error.
func Dump(w io.Writer, r CounterReader) error {
	for _, c := range Sequence {
		if err := Report(w, c.String(), r.Read(c)); err != nil {
			return err
		}
	}

	return nil
}

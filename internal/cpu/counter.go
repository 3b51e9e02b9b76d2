package cpu

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by counter probing and reads.
var (
	// ErrUnsupported is returned when the running platform has no way to
	// read the requested counter register.
	ErrUnsupported = errors.New("cpu: counter register not supported on this platform")

	// ErrCounterDisabled is returned when the hardware has the counter but
	// the kernel has not enabled user-mode access to it.
	ErrCounterDisabled = errors.New("cpu: user access to counter disabled")

	// ErrUnknownCounter is returned for a Counter value outside the defined set.
	ErrUnknownCounter = errors.New("cpu: unknown counter")
)

// Counter identifies one of the unprivileged RISC-V counter CSRs.
type Counter uint8

const (
	Time    Counter = iota // wall-clock time counter
	Cycle                  // elapsed hart cycles
	Instret                // retired instructions
)

// String returns the counter's architectural name, which is also the label
// used when reporting it.
func (c Counter) String() string {
	switch c {
	case Time:
		return "time"
	case Cycle:
		return "cycle"
	case Instret:
		return "instret"
	default:
		return fmt.Sprintf("Counter(%d)", uint8(c))
	}
}

// CSR returns the CSR address of the counter.
func (c Counter) CSR() uint16 {
	switch c {
	case Time:
		return 0xC01
	case Cycle:
		return 0xC00
	case Instret:
		return 0xC02
	default:
		return 0
	}
}

// Valid reports whether c is one of the defined counters.
func (c Counter) Valid() bool {
	return c <= Instret
}

// Read returns the current contents of the counter register.
//
// Every call performs a fresh read; nothing is cached. Read panics on
// platforms without counter support and for invalid counters, so callers
// should run Probe first.
func Read(c Counter) uint64 {
	if !c.Valid() {
		panic(fmt.Errorf("%w: %v", ErrUnknownCounter, c))
	}

	return readCounter(c)
}

// Probe reports whether c can be read on this machine without trapping.
// It never touches the register itself.
func Probe(c Counter) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownCounter, c)
	}

	return probeCounter(c)
}

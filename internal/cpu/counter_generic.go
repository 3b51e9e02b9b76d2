//go:build !riscv64

package cpu

import (
	"fmt"
	"runtime"
)

// readCounter has no fallback: a counter from another clock source would be
// a fabricated value.
func readCounter(c Counter) uint64 {
	panic(fmt.Errorf("%w: %v (csr %#x) on %s", ErrUnsupported, c, c.CSR(), runtime.GOARCH))
}

func probeCounter(c Counter) error {
	return fmt.Errorf("%w: %v (csr %#x) on %s", ErrUnsupported, c, c.CSR(), runtime.GOARCH)
}

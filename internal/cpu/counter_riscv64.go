//go:build riscv64

package cpu

// readTime reads the time CSR using RDTIME.
// Implemented in counter_riscv64.s
//
//go:noescape
func readTime() uint64

// readCycle reads the cycle CSR using RDCYCLE.
// Implemented in counter_riscv64.s
//
//go:noescape
func readCycle() uint64

// readInstret reads the instret CSR using RDINSTRET.
// Implemented in counter_riscv64.s
//
//go:noescape
func readInstret() uint64

func readCounter(c Counter) uint64 {
	switch c {
	case Time:
		return readTime()
	case Cycle:
		return readCycle()
	default:
		return readInstret()
	}
}

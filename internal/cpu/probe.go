package cpu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// perfUserAccessPath is the sysctl that gates user-mode cycle and instret
// reads on Linux 6.6 and later. Tests point it elsewhere.
var perfUserAccessPath = "/proc/sys/kernel/perf_user_access"

// perfUserAccessLegacy keeps the counters enabled in scounteren for every
// task. Modes 0 and 1 leave them trapping unless a perf event is mapped.
const perfUserAccessLegacy = 2

// checkPerfUserAccess reports whether the kernel lets user code read c
// directly. A missing sysctl means the kernel predates the knob and grants
// access unconditionally. The time counter is never gated.
func checkPerfUserAccess(path string, c Counter) error {
	if c == Time {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("cpu: read %s: %w", path, err)
	}

	mode, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("cpu: parse %s: %w", path, err)
	}

	if mode != perfUserAccessLegacy {
		return fmt.Errorf("%w: %v (csr %#x, kernel.perf_user_access=%d, needs %d)",
			ErrCounterDisabled, c, c.CSR(), mode, perfUserAccessLegacy)
	}

	return nil
}

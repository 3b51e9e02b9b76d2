//go:build linux && riscv64

package cpu

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// hwprobe is a variable so tests can replace the syscall.
var hwprobe = unix.RISCVHWProbe

func probeCounter(c Counter) error {
	if err := checkBaseBehavior(); err != nil {
		return err
	}

	return checkPerfUserAccess(perfUserAccessPath, c)
}

// checkBaseBehavior asks the kernel whether the harts implement the IMA base
// behavior, which includes the Zicntr counters. Kernels without the
// riscv_hwprobe syscall are given the benefit of the doubt.
func checkBaseBehavior() error {
	pairs := []unix.RISCVHWProbePairs{{Key: unix.RISCV_HWPROBE_KEY_BASE_BEHAVIOR}}

	err := hwprobe(pairs, nil, 0)
	if errors.Is(err, unix.ENOSYS) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("cpu: riscv_hwprobe: %w", err)
	}

	// The kernel sets Key to -1 for keys it does not know.
	if pairs[0].Key < 0 {
		return nil
	}

	if pairs[0].Value&unix.RISCV_HWPROBE_BASE_BEHAVIOR_IMA == 0 {
		return fmt.Errorf("%w: base behavior %#x lacks IMA", ErrUnsupported, pairs[0].Value)
	}

	return nil
}

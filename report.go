package csrdump

import (
	"fmt"
	"io"
	"strconv"
)

// Report writes one line of the form "<label>: <value>\n" to w.
//
// The value is always formatted as an unsigned decimal with no grouping.
// The line is assembled first and emitted with a single Write so a partial
// failure never leaves a label without its value.
func Report(w io.Writer, label string, value uint64) error {
	line := make([]byte, 0, len(label)+24)
	line = append(line, label...)
	line = append(line, ':', ' ')
	line = strconv.AppendUint(line, value, 10)
	line = append(line, '\n')

	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, label, err)
	}

	return nil
}

// Package strace decodes the binary syscall trace written by the emulator's
// tracer and renders it as one line per call.
package strace

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RecordSize is the on-disk size of one trace record: six argument
// registers, the syscall number and the trapping pc, each a little-endian
// 64-bit word.
const RecordSize = 64

// ErrTruncated is returned when the trace ends in the middle of a record.
var ErrTruncated = errors.New("strace: truncated record")

// Record is one traced syscall.
type Record struct {
	Args   [6]uint64
	Number uint64
	EPC    uint64
}

// Decoder reads records from a trace stream.
type Decoder struct {
	r io.Reader
	n int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next returns the next record. It returns io.EOF after the last complete
// record and an error wrapping ErrTruncated if trailing bytes do not form a
// whole record.
func (d *Decoder) Next() (Record, error) {
	var rec Record

	err := binary.Read(d.r, binary.LittleEndian, &rec)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return rec, fmt.Errorf("%w: record %d", ErrTruncated, d.n)
	case err != nil:
		return rec, err
	}

	d.n++

	return rec, nil
}

// Format renders rec as the index-th line of a trace listing.
// Syscalls missing from SysTable print as "<UNKNOWN>()".
func Format(index int, rec Record) string {
	name, args := "<UNKNOWN>", ""

	if sc, ok := SysTable[rec.Number]; ok {
		name = sc.Name

		parts := make([]string, len(sc.Args))
		for i, f := range sc.Args {
			parts[i] = f(rec.Args[i])
		}

		args = strings.Join(parts, ", ")
	}

	return fmt.Sprintf("%06d: epc=%016x, %s(%s)", index, rec.EPC, name, args)
}

// Dump decodes every record from r and writes its formatted line to w.
// Complete records before a truncated tail are still written.
func Dump(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	dec := NewDecoder(r)

	var decErr error

	for i := 0; ; i++ {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			decErr = err
			break
		}

		if _, err := fmt.Fprintln(bw, Format(i, rec)); err != nil {
			return fmt.Errorf("strace: write: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("strace: write: %w", err)
	}

	return decErr
}

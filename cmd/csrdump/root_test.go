package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/csrdump"
	"github.com/cwbudde/csrdump/internal/cpu"
)

type stubReader struct {
	reads []csrdump.Counter
}

func (s *stubReader) Read(c csrdump.Counter) uint64 {
	s.reads = append(s.reads, c)
	return uint64(len(s.reads)) * 1000
}

func execute(t *testing.T, opts options, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommandPrintsCounters(t *testing.T) {
	t.Parallel()

	reader := &stubReader{}
	out, err := execute(t, options{probe: func() error { return nil }, reader: reader})

	require.NoError(t, err)
	assert.Equal(t, "time: 1000\ncycle: 2000\ninstret: 3000\n", out)
	assert.Equal(t, []csrdump.Counter{csrdump.Time, csrdump.Cycle, csrdump.Instret}, reader.reads)
}

func TestRootCommandFailsBeforeReading(t *testing.T) {
	t.Parallel()

	reader := &stubReader{}
	probeErr := errors.Join(cpu.ErrCounterDisabled, errors.New("cycle"))

	out, err := execute(t, options{probe: func() error { return probeErr }, reader: reader})

	require.ErrorIs(t, err, cpu.ErrCounterDisabled)
	assert.Empty(t, out)
	assert.Empty(t, reader.reads)
}

func TestRootCommandRejectsArguments(t *testing.T) {
	t.Parallel()

	reader := &stubReader{}
	probed := false

	_, err := execute(t, options{
		probe: func() error {
			probed = true
			return nil
		},
		reader: reader,
	}, "extra")

	require.Error(t, err)
	assert.False(t, probed)
	assert.Empty(t, reader.reads)
}

func TestRootCommandHelp(t *testing.T) {
	t.Parallel()

	reader := &stubReader{}
	out, err := execute(t, options{probe: func() error { return nil }, reader: reader}, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "csrdump")
	assert.Empty(t, reader.reads)
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errors.New("stream closed") }

func TestRunExitStatus(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr, options{probe: func() error { return nil }, reader: &stubReader{}})

	assert.Equal(t, 0, code)
	assert.Equal(t, "time: 1000\ncycle: 2000\ninstret: 3000\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunWriteFailureLogsOnce(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	code := run(nil, closedWriter{}, &stderr, options{probe: func() error { return nil }, reader: &stubReader{}})

	assert.Equal(t, 1, code)
	assert.Equal(t, "csrdump: write failed: time: stream closed\n", stderr.String())
}

func TestRunProbeFailureLogsOnce(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	probeErr := fmt.Errorf("%w: cycle", cpu.ErrCounterDisabled)
	code := run(nil, &stdout, &stderr, options{probe: func() error { return probeErr }, reader: &stubReader{}})

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
	assert.Equal(t, 1, strings.Count(stderr.String(), "csrdump: "))
	assert.Equal(t, "csrdump: cpu: user access to counter disabled: cycle\n", stderr.String())
}

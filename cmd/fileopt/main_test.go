package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCheckpoint writes a little-endian checkpoint holding one read-only
// dump of hostFile at fd 3.
func makeCheckpoint(t *testing.T, parent, name, hostFile string, flags uint32) string {
	t.Helper()

	dir := filepath.Join(parent, name)
	kfd := filepath.Join(dir, "file", "kfd")
	require.NoError(t, os.MkdirAll(kfd, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "platinfo"), []byte{'p', 'i', 0}, 0o644))

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, struct {
		Offset  uint64
		Flags   uint32
		PathLen uint32
	}{0, flags, uint32(len(hostFile))}))
	buf.WriteString(hostFile)

	dump := filepath.Join(kfd, "3")
	require.NoError(t, os.WriteFile(dump, buf.Bytes(), 0o644))

	return dump
}

func TestRunOptimizes(t *testing.T) {
	t.Parallel()

	host := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(host, []byte("data"), 0o644))

	parent := t.TempDir()
	makeCheckpoint(t, parent, "a", host, 0)
	makeCheckpoint(t, parent, "b", host, 0)

	var stdout, stderr bytes.Buffer

	code := run([]string{"-v", parent}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "fileopt: shared 1, copied 0, created 0, skipped 0\n", stderr.String())

	data, err := os.ReadFile(filepath.Join(parent, "input.txt.0"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{nil, {"a", "b"}} {
		var stdout, stderr bytes.Buffer

		code := run(args, &stdout, &stderr)

		assert.Equal(t, 1, code, "args %q", args)
		assert.Contains(t, stdout.String(), "Usage: fileopt <parent directory>")
		assert.Empty(t, stderr.String())
	}
}

func TestRunUnknownAccessMode(t *testing.T) {
	t.Parallel()

	host := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(host, []byte("data"), 0o644))

	parent := t.TempDir()
	makeCheckpoint(t, parent, "a", host, 3)

	var stdout, stderr bytes.Buffer

	code := run([]string{parent}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Regexp(t, `^fileopt: checkpoint: unknown kfd access mode: flags 03 in ".*"\n$`, stderr.String())
}

// Package checkpoint reads and rewrites the file-descriptor dumps stored in
// emulator checkpoints.
//
// A checkpoint directory holds a platinfo file and one dump per open guest
// file descriptor under file/kfd/<fd>. Each dump records the descriptor's
// offset, open flags and the host path it refers to.
package checkpoint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors returned while reading checkpoints.
var (
	// ErrBadPlatInfo is returned when a platinfo file is too short or has
	// the wrong magic.
	ErrBadPlatInfo = errors.New("checkpoint: invalid platinfo file")

	// ErrPlatInfoMismatch is returned when checkpoints under one parent
	// disagree on their platform.
	ErrPlatInfoMismatch = errors.New("checkpoint: platinfo mismatch")

	// ErrBadKfdDump is returned when a kfd dump cannot be decoded.
	ErrBadKfdDump = errors.New("checkpoint: invalid kfd dump")

	// ErrUnknownAccessMode is returned for a dump whose open flags carry an
	// access mode other than read-only, write-only or read-write.
	ErrUnknownAccessMode = errors.New("checkpoint: unknown kfd access mode")
)

var platInfoMagic = [2]byte{'p', 'i'}

// PlatInfo accumulates the platform description shared by a set of
// checkpoints. The zero value accepts the first file it checks.
type PlatInfo struct {
	order binary.ByteOrder
}

// ByteOrder returns the byte order recorded by the checked platinfo files,
// or nil if none has been checked yet.
func (p *PlatInfo) ByteOrder() binary.ByteOrder {
	return p.order
}

// Check reads the platinfo file at path. The first call records its byte
// order; later calls fail if a file disagrees.
func (p *PlatInfo) Check(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var hdr struct {
		Magic  [2]byte
		Endian byte
	}

	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("%w %q: %w", ErrBadPlatInfo, path, err)
	}

	if hdr.Magic != platInfoMagic {
		return fmt.Errorf("%w %q: bad magic %q", ErrBadPlatInfo, path, hdr.Magic[:])
	}

	var order binary.ByteOrder = binary.BigEndian
	if hdr.Endian == 0 {
		order = binary.LittleEndian
	}

	switch {
	case p.order == nil:
		p.order = order
	case p.order != order:
		return fmt.Errorf("%w: endian in %q", ErrPlatInfoMismatch, path)
	}

	return nil
}

// copyFile copies src to dst, following symlinks at src and truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

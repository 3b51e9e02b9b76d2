package checkpoint

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Guest open(2) access modes. The dump stores guest flags, so these follow
// the RISC-V Linux ABI rather than the host.
const (
	accessModeMask  = 0o3
	accessRead      = 0o0
	accessWrite     = 0o1
	accessReadWrite = 0o2
)

type kfdHeader struct {
	Offset  uint64
	Flags   uint32
	PathLen uint32
}

// KfdDump is one file-descriptor dump of a checkpoint.
type KfdDump struct {
	// File is the dump's own location on the host.
	File string

	Offset uint64
	Flags  uint32

	// Path is the file the descriptor refers to, absolute on the host or
	// relative to the checkpoint directory once rewritten.
	Path string

	order binary.ByteOrder
}

// LoadKfdDump decodes the dump at file using the checkpoint's byte order.
func LoadKfdDump(order binary.ByteOrder, file string) (*KfdDump, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(data)

	var hdr kfdHeader
	if err := binary.Read(r, order, &hdr); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadKfdDump, file, err)
	}

	if int64(hdr.PathLen) > int64(r.Len()) {
		return nil, fmt.Errorf("%w %q: path length %d exceeds file", ErrBadKfdDump, file, hdr.PathLen)
	}

	path := make([]byte, hdr.PathLen)
	if _, err := io.ReadFull(r, path); err != nil {
		return nil, fmt.Errorf("%w %q: path: %w", ErrBadKfdDump, file, err)
	}

	if !isASCII(path) {
		return nil, fmt.Errorf("%w %q: path is not ASCII", ErrBadKfdDump, file)
	}

	return &KfdDump{
		File:   file,
		Offset: hdr.Offset,
		Flags:  hdr.Flags,
		Path:   string(path),
		order:  order,
	}, nil
}

// Save rewrites the dump file with the current offset, flags and path.
func (k *KfdDump) Save() error {
	if !isASCII([]byte(k.Path)) {
		return fmt.Errorf("%w %q: path is not ASCII", ErrBadKfdDump, k.File)
	}

	var buf bytes.Buffer

	hdr := kfdHeader{Offset: k.Offset, Flags: k.Flags, PathLen: uint32(len(k.Path))}
	if err := binary.Write(&buf, k.order, hdr); err != nil {
		return err
	}

	buf.WriteString(k.Path)

	return os.WriteFile(k.File, buf.Bytes(), 0o644)
}

func (k *KfdDump) accessMode() uint32 { return k.Flags & accessModeMask }

// ReadOnly reports whether the descriptor was opened O_RDONLY.
func (k *KfdDump) ReadOnly() bool { return k.accessMode() == accessRead }

// WriteOnly reports whether the descriptor was opened O_WRONLY.
func (k *KfdDump) WriteOnly() bool { return k.accessMode() == accessWrite }

// ReadWrite reports whether the descriptor was opened O_RDWR.
func (k *KfdDump) ReadWrite() bool { return k.accessMode() == accessReadWrite }

// IsAbs reports whether Path is an absolute host path, i.e. not yet
// rewritten.
func (k *KfdDump) IsAbs() bool {
	return strings.HasPrefix(k.Path, "/")
}

// checkpointDir is the checkpoint that owns the dump: File sits at
// <checkpoint>/file/kfd/<fd>.
func (k *KfdDump) checkpointDir() string {
	return filepath.Dir(filepath.Dir(filepath.Dir(k.File)))
}

// hostPath resolves a slash-separated path relative to the owning checkpoint.
func (k *KfdDump) hostPath(rel string) string {
	return filepath.Join(k.checkpointDir(), filepath.FromSlash(rel))
}

// baseName is the last slash-separated element of Path.
func (k *KfdDump) baseName() string {
	return k.Path[strings.LastIndexByte(k.Path, '/')+1:]
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}

	return true
}

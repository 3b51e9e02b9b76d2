package checkpoint

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Stats counts what Optimize did.
type Stats struct {
	Shared  int // read-only files copied once into the parent directory
	Copied  int // read-write files copied into their checkpoint
	Created int // empty files created for write-only descriptors
	Skipped int // dumps already pointing at a relative path
}

// Collect loads every kfd dump with an absolute path from the checkpoints
// directly under parent. All platinfo files must agree.
func Collect(parent string) ([]*KfdDump, Stats, error) {
	var (
		plat  PlatInfo
		dumps []*KfdDump
		stats Stats
	)

	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, stats, err
	}

	for _, e := range entries {
		dir := filepath.Join(parent, e.Name())

		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}

		if err := plat.Check(filepath.Join(dir, "platinfo")); err != nil {
			return nil, stats, err
		}

		found, err := scanKfdDumps(dir, plat.ByteOrder())
		if err != nil {
			return nil, stats, err
		}

		for _, k := range found {
			if !k.IsAbs() {
				stats.Skipped++
				continue
			}

			dumps = append(dumps, k)
		}
	}

	return dumps, stats, nil
}

// scanKfdDumps loads the numerically named dumps of one checkpoint in fd
// order.
func scanKfdDumps(dir string, order binary.ByteOrder) ([]*KfdDump, error) {
	kfdDir := filepath.Join(dir, "file", "kfd")

	entries, err := os.ReadDir(kfdDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if isNumeric(e.Name()) {
			names = append(names, e.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}

		return names[i] < names[j]
	})

	dumps := make([]*KfdDump, 0, len(names))
	for _, name := range names {
		k, err := LoadKfdDump(order, filepath.Join(kfdDir, name))
		if err != nil {
			return nil, err
		}

		dumps = append(dumps, k)
	}

	return dumps, nil
}

// Optimize makes the checkpoints under parent self-contained.
//
// Read-only files are copied once into parent as <base>.<id> and every dump
// referring to the same host path shares that copy. Read-write files are
// copied into each checkpoint as file/kfd/<base>.<fd>, and write-only
// descriptors get an empty file there. Every rewritten dump then points at
// its copy by a path relative to the checkpoint. Nothing is copied if any
// dump has an unknown access mode, and dumps are only rewritten once all
// copies succeeded.
func Optimize(parent string) (Stats, error) {
	dumps, stats, err := Collect(parent)
	if err != nil {
		return stats, err
	}

	for _, k := range dumps {
		if !k.ReadOnly() && !k.WriteOnly() && !k.ReadWrite() {
			return stats, fmt.Errorf("%w: flags %#o in %q", ErrUnknownAccessMode, k.Flags, k.File)
		}
	}

	shared := make(map[string]int)

	for _, k := range dumps {
		switch {
		case k.ReadOnly():
			id, ok := shared[k.Path]
			if !ok {
				id = len(shared)
			}

			rel := fmt.Sprintf("../%s.%d", k.baseName(), id)

			if !ok {
				if err := copyFile(k.Path, k.hostPath(rel)); err != nil {
					return stats, err
				}

				shared[k.Path] = id
				stats.Shared++
			}

			k.Path = rel

		default:
			rel := fmt.Sprintf("file/kfd/%s.%s", k.baseName(), filepath.Base(k.File))

			if k.WriteOnly() {
				if err := createEmpty(k.hostPath(rel)); err != nil {
					return stats, err
				}

				stats.Created++
			} else {
				if err := copyFile(k.Path, k.hostPath(rel)); err != nil {
					return stats, err
				}

				stats.Copied++
			}

			k.Path = rel
		}
	}

	for _, k := range dumps {
		if err := k.Save(); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

func createEmpty(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	return f.Close()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

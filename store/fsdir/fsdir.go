// Package fsdir stores registry entries as files in a shared directory,
// one file per instance. This is the default store: every process on the
// machine can reach it, and the OS gives per-file atomicity via rename.
package fsdir

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/runreg/store"
)

// tmpInfix marks in-progress writes so List never observes half-written
// entries.
const tmpInfix = ".tmp-"

// DefaultDir returns the conventional shared registry directory: a
// world-accessible dotdir under the system temp directory, so unrelated
// processes (and users, on multi-user machines) agree on the location.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), ".runreg-info")
}

type Store struct {
	dir string
}

var _ store.Store = (*Store)(nil)

// New returns a directory-backed store rooted at dir. An empty dir selects
// DefaultDir. The directory is created lazily on first Put.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// Dir returns the directory this store reads and writes.
func (s *Store) Dir() string { return s.dir }

func (s *Store) Put(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o777); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, name+tmpInfix+"*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	// CreateTemp creates 0600; other users' scans must be able to read the
	// entry in a shared registry directory.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *Store) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) List(_ context.Context) (map[string][]byte, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string][]byte{}, nil // no registrations yet
	}
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(entries))
	for _, ent := range entries {
		if !ent.Type().IsRegular() || strings.Contains(ent.Name(), tmpInfix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, ent.Name()))
		if err != nil {
			// Raced with a writer or remover; the entry is simply absent.
			continue
		}
		out[ent.Name()] = data
	}
	return out, nil
}

func (s *Store) Close(context.Context) error { return nil }

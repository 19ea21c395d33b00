package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File persists each key as one file under a data directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// value.
type File struct {
	dir string
}

// NewFile creates the data directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	// Keys are fixed app-chosen names; replace separators anyway so a key
	// can never escape the data directory.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.dir, safe)
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *File) Ping(_ context.Context) error {
	_, err := os.Stat(f.dir)
	return err
}

func (f *File) Close() error { return nil }

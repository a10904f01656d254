package slot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var reUnsafeKey = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// File keeps every key in its own json file inside a directory
type File struct {
	dir string
}

// NewFile makes a file slot, the directory created if missing
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, errors.New("file slot directory is not set")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create slot directory %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// Get reads the file of the key
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot file: %w", err)
	}
	return data, nil
}

// Put writes data to a temp file and renames it over the key's file
func (f *File) Put(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // removed by rename on success

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Rename(tmpName, f.path(key)); err != nil {
		return fmt.Errorf("failed to move slot file in place: %w", err)
	}
	return nil
}

// Driver returns DriverFile
func (f *File) Driver() Driver { return DriverFile }

// Close is a no-op
func (f *File) Close() error { return nil }

func (f *File) path(key string) string {
	return filepath.Join(f.dir, reUnsafeKey.ReplaceAllString(key, "_")+".json")
}

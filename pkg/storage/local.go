package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage persists uploads on disk under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Put copies r into the named file, removing partial output on failure.
func (s *LocalStorage) Put(ctx context.Context, name string, r io.Reader, _ int64, _ string) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid upload name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path := s.Path(name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(file, r); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write upload stream: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close upload file: %w", err)
	}
	return nil
}

// Get opens the named file for reading.
func (s *LocalStorage) Get(_ context.Context, name string) (*Object, error) {
	if !ValidName(name) {
		return nil, ErrObjectNotFound
	}
	file, err := os.Open(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat upload file: %w", err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, ErrObjectNotFound
	}
	return &Object{Content: file, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Path exposes the on-disk location of a stored upload.
func (s *LocalStorage) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

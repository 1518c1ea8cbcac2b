// Package storage provides object storage implementations for uploaded files.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/catalog/backend/internal/application/media"
)

// LocalStorage stores objects on the local filesystem and serves them
// through a static file route.
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates a LocalStorage rooted at baseDir. Stored files
// are addressable under baseURL.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put stores the object under the given key
func (s *LocalStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

// Delete removes the object with the given key
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// URL returns the public URL for a stored object
func (s *LocalStorage) URL(key string) string {
	return s.baseURL + "/" + key
}

// BaseDir returns the storage root, used to mount the static file route
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// resolve maps a key onto the storage root, refusing path escapes
func (s *LocalStorage) resolve(key string) (string, error) {
	target := filepath.Join(s.baseDir, filepath.FromSlash(key))
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	if abs != base && !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return "", fmt.Errorf("storage key escapes the storage root: %s", key)
	}
	return target, nil
}

// Ensure LocalStorage implements ObjectStorage
var _ media.ObjectStorage = (*LocalStorage)(nil)

// Package storage keeps original invoice payloads on the local
// filesystem, named by content hash so repeated writes of the same
// content are idempotent.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type FSStore struct {
	root string
}

func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &FSStore{root: root}, nil
}

// Write stores the content under name and returns its absolute path. An
// existing blob with the same name is left untouched: content-hash names
// make the second write a no-op.
func (s *FSStore) Write(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst := filepath.Join(s.root, filepath.Base(name))
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}

	tmp, err := os.CreateTemp(s.root, ".blob-*")
	if err != nil {
		return "", fmt.Errorf("create blob temp: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("finalize blob %s: %w", name, err)
	}
	return dst, nil
}

// Open returns the stored payload for reading.
func (s *FSStore) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.Base(name)))
}

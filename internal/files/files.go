// Package files is the disk-backed blob store for uploaded course books,
// seminar materials and student submissions.
package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("file not found")

// Store saves blobs under generated names below a base directory. Callers
// never choose the on-disk name, which keeps path traversal out of reach.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save streams the blob to disk under a fresh uuid name, keeping the
// original extension. Returns the generated name and the absolute path.
func (s *Store) Save(r io.Reader, originalName string) (name, path string, size int64, err error) {
	name = uuid.NewString() + filepath.Ext(originalName)
	path = filepath.Join(s.baseDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", "", 0, fmt.Errorf("create blob: %w", err)
	}
	defer f.Close()

	size, err = io.Copy(f, r)
	if err != nil {
		_ = os.Remove(path)
		return "", "", 0, fmt.Errorf("write blob: %w", err)
	}
	log.Info().Str("module", "files").Str("name", name).Int64("size", size).Msg("blob saved")
	return name, path, size, nil
}

// Open returns a reader for a previously saved blob.
func (s *Store) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes a blob; deleting an absent blob is not an error.
func (s *Store) Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/splice"
)

// Ensure Store implements splice.OutputStore at compile time.
var _ splice.OutputStore = (*Store)(nil)

// Store writes output files with atomic replace semantics: data is written
// to a temporary file next to the target, then renamed over it.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save writes data to path, creating missing parent directories.
func (s *Store) Save(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return splice.Errorf(splice.EINVALID, "output path required")
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit %s: %w", path, err)
	}

	return nil
}

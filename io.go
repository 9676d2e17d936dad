package splice

import (
	"context"
	"io"
)

// DocumentSource lists and opens the input files of a session.
type DocumentSource interface {
	// List returns the input files under path in processing order.
	// A file path yields itself. Returns ENOTFOUND if path does not exist
	// or holds no input files.
	List(ctx context.Context, path string) ([]string, error)

	// Open opens one listed input file for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// OutputStore persists the assembled document.
type OutputStore interface {
	// Save writes data to path, creating missing parent directories.
	Save(ctx context.Context, path string, data []byte) error
}

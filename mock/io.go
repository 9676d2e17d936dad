package mock

import (
	"context"
	"io"

	"github.com/fwojciec/splice"
)

var _ splice.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of splice.DocumentSource.
type DocumentSource struct {
	ListFn func(ctx context.Context, path string) ([]string, error)
	OpenFn func(ctx context.Context, path string) (io.ReadCloser, error)
}

func (s *DocumentSource) List(ctx context.Context, path string) ([]string, error) {
	return s.ListFn(ctx, path)
}

func (s *DocumentSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.OpenFn(ctx, path)
}

var _ splice.OutputStore = (*OutputStore)(nil)

// OutputStore is a mock implementation of splice.OutputStore.
type OutputStore struct {
	SaveFn func(ctx context.Context, path string, data []byte) error
}

func (s *OutputStore) Save(ctx context.Context, path string, data []byte) error {
	return s.SaveFn(ctx, path, data)
}

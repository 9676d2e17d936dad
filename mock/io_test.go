package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/splice"
	"github.com/fwojciec/splice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where OutputStore is expected
	var _ splice.OutputStore = &mock.OutputStore{}
}

func TestOutputStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		s := &mock.OutputStore{
			SaveFn: func(_ context.Context, path string, data []byte) error {
				gotPath = path
				gotData = data
				return nil
			},
		}

		err := s.Save(context.Background(), "out/section.html", []byte("<html></html>"))

		require.NoError(t, err)
		assert.Equal(t, "out/section.html", gotPath)
		assert.Equal(t, []byte("<html></html>"), gotData)
	})

	t.Run("returns error from SaveFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("disk full")
		s := &mock.OutputStore{
			SaveFn: func(_ context.Context, _ string, _ []byte) error {
				return expectedErr
			},
		}

		err := s.Save(context.Background(), "out/section.html", nil)

		assert.ErrorIs(t, err, expectedErr)
	})
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/splice"
)

// Ensure LoggingStore implements splice.OutputStore.
var _ splice.OutputStore = (*LoggingStore)(nil)

// LoggingStore wraps an OutputStore with logging of each write.
type LoggingStore struct {
	next   splice.OutputStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next splice.OutputStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save logs the destination path and size.
func (s *LoggingStore) Save(ctx context.Context, path string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, path, data)
}

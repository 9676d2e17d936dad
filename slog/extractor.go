package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/splice"
)

// Ensure LoggingExtractor implements splice.RangeExtractor.
var _ splice.RangeExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RangeExtractor with logging of each range operation.
type LoggingExtractor struct {
	next   splice.RangeExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next splice.RangeExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the range kind and the number of top-level nodes copied.
func (e *LoggingExtractor) Extract(doc *splice.Document, r splice.Range) (frag *splice.Fragment, err error) {
	defer func(begin time.Time) {
		var nodes int
		if frag != nil {
			nodes = len(frag.Nodes)
		}
		var name string
		if doc != nil {
			name = doc.Name
		}
		e.logger.Debug("extract",
			"file", name,
			"range", r.Kind.String(),
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc, r)
}

// Package slog provides logging decorators for the splice domain interfaces.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/splice"
)

// Ensure LoggingParser implements splice.Parser.
var _ splice.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging of each parsed file.
type LoggingParser struct {
	next   splice.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next splice.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse logs the file name, decoded size and node count.
func (p *LoggingParser) Parse(name string, seq int, r io.Reader) (doc *splice.Document, err error) {
	defer func(begin time.Time) {
		var size, nodes int
		if doc != nil {
			size = len(doc.Raw)
			nodes = doc.Len()
		}
		p.logger.Debug("parse",
			"file", name,
			"seq", seq,
			"bytes", size,
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(name, seq, r)
}

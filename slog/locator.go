package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/splice"
	"golang.org/x/net/html"
)

// Ensure LoggingLocator implements splice.MarkerLocator.
var _ splice.MarkerLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a MarkerLocator with logging of each lookup.
type LoggingLocator struct {
	next   splice.MarkerLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next splice.MarkerLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate logs the marker, whether it was found and the tag that matched.
func (l *LoggingLocator) Locate(doc *splice.Document, marker string) (n *html.Node) {
	defer l.log(time.Now(), "locate", doc, marker, &n)
	return l.next.Locate(doc, marker)
}

// LocateAfter logs like Locate.
func (l *LoggingLocator) LocateAfter(doc *splice.Document, marker string, after *html.Node) (n *html.Node) {
	defer l.log(time.Now(), "locate after", doc, marker, &n)
	return l.next.LocateAfter(doc, marker, after)
}

func (l *LoggingLocator) log(begin time.Time, msg string, doc *splice.Document, marker string, found **html.Node) {
	tag := ""
	if *found != nil {
		tag = (*found).Data
	}
	var name string
	if doc != nil {
		name = doc.Name
	}
	l.logger.Debug(msg,
		"file", name,
		"marker", marker,
		"found", *found != nil,
		"tag", tag,
		"duration", time.Since(begin),
	)
}

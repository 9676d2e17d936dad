package mock

import (
	"github.com/fwojciec/splice"
	"golang.org/x/net/html"
)

var _ splice.MarkerLocator = (*MarkerLocator)(nil)

// MarkerLocator is a mock implementation of splice.MarkerLocator.
type MarkerLocator struct {
	LocateFn      func(doc *splice.Document, marker string) *html.Node
	LocateAfterFn func(doc *splice.Document, marker string, after *html.Node) *html.Node
}

func (l *MarkerLocator) Locate(doc *splice.Document, marker string) *html.Node {
	return l.LocateFn(doc, marker)
}

func (l *MarkerLocator) LocateAfter(doc *splice.Document, marker string, after *html.Node) *html.Node {
	return l.LocateAfterFn(doc, marker, after)
}

// Package goquery implements marker location and style collection with
// CSS selector queries over parsed documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/splice"
	"golang.org/x/net/html"
)

// Ensure Locator implements splice.MarkerLocator at compile time.
var _ splice.MarkerLocator = (*Locator)(nil)

// Locator finds the node holding a boundary marker. Tags are tried in
// priority order: a match under an earlier tag wins even when a match under
// a later tag appears sooner in the document.
type Locator struct {
	tags []string
}

// NewLocator creates a Locator trying tags in the given order.
// With no tags it uses splice.DefaultTags.
func NewLocator(tags ...string) *Locator {
	if len(tags) == 0 {
		tags = splice.DefaultTags
	}
	return &Locator{tags: append([]string(nil), tags...)}
}

// Tags returns the locator's tag priority.
func (l *Locator) Tags() []string {
	return append([]string(nil), l.tags...)
}

// Locate returns the first node, under the highest-priority tag that has
// any match, whose flattened text contains marker. Whitespace runs in both
// the text and the marker compare as a single space. Only the body is
// searched when the document has one.
func (l *Locator) Locate(doc *splice.Document, marker string) *html.Node {
	return l.locate(doc, marker, nil)
}

// LocateAfter is Locate restricted to nodes that follow after in document
// order and are not after or one of its ancestors.
func (l *Locator) LocateAfter(doc *splice.Document, marker string, after *html.Node) *html.Node {
	if after == nil {
		return l.Locate(doc, marker)
	}
	return l.locate(doc, marker, func(n *html.Node) bool {
		return doc.Follows(after, n)
	})
}

func (l *Locator) locate(doc *splice.Document, marker string, accept func(*html.Node) bool) *html.Node {
	want := normalizeSpace(marker)
	if want == "" {
		return nil
	}

	scope := doc.Body()
	if scope == nil {
		scope = doc.Root
	}
	if scope == nil {
		return nil
	}
	root := goquery.NewDocumentFromNode(scope)

	for _, tag := range l.tags {
		var found *html.Node
		root.Find(tag).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			n := sel.Get(0)
			if accept != nil && !accept(n) {
				return true
			}
			if strings.Contains(normalizeSpace(sel.Text()), want) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// normalizeSpace collapses whitespace runs, including non-breaking spaces,
// to single spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/splice"
	sphtml "github.com/fwojciec/splice/html"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parse builds a document from markup using the package parser.
func parse(t *testing.T, name, markup string) *splice.Document {
	t.Helper()

	doc, err := sphtml.NewParser().Parse(name, 0, strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

// byID returns the element of doc with the given id attribute.
func byID(t *testing.T, doc *splice.Document, id string) *html.Node {
	t.Helper()

	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Root)
	require.NotNil(t, found, "no element with id %q", id)
	return found
}

// render serializes the fragment's nodes back to back.
func render(t *testing.T, frag *splice.Fragment) string {
	t.Helper()

	var b strings.Builder
	for _, n := range frag.Nodes {
		require.NoError(t, html.Render(&b, n))
	}
	return b.String()
}

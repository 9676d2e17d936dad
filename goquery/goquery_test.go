package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/splice"
	sphtml "github.com/fwojciec/splice/html"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, markup string) *splice.Document {
	t.Helper()

	doc, err := sphtml.NewParser().Parse("test.html", 0, strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

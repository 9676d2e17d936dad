package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Sanitizer deep-copies node subtrees while dropping comments and
// whitespace-only text and unwrapping inline tagging elements. The tagging
// format's header element (e.g. "ix:header") is dropped with its content.
type Sanitizer struct {
	// WrapperPrefix marks elements (e.g. "ix:nonfraction") that are
	// replaced by their content. Empty disables unwrapping.
	WrapperPrefix string
}

// Clone returns sanitized copies of n. A dropped node yields nothing and an
// unwrapped wrapper yields its sanitized children, so the result may hold
// zero or several nodes. The copies share nothing with the source tree.
func (s Sanitizer) Clone(n *html.Node) []*html.Node {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode, html.ErrorNode:
		return nil
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return []*html.Node{{Type: html.TextNode, Data: n.Data}}
	case html.DocumentNode:
		return s.cloneChildren(n)
	case html.ElementNode:
		if s.IsHidden(n) {
			return nil
		}
		if s.IsWrapper(n) {
			return s.cloneChildren(n)
		}
		c := shallowCopy(n)
		for _, child := range s.cloneChildren(n) {
			c.AppendChild(child)
		}
		return []*html.Node{c}
	default:
		return []*html.Node{shallowCopy(n)}
	}
}

// IsWrapper reports whether n is an inline tagging element to unwrap.
func (s Sanitizer) IsWrapper(n *html.Node) bool {
	if s.WrapperPrefix == "" || n.Type != html.ElementNode {
		return false
	}
	return strings.HasPrefix(strings.ToLower(n.Data), strings.ToLower(s.WrapperPrefix))
}

// IsHidden reports whether n is the wrapper format's header element, which
// holds hidden facts and schema references rather than displayed content.
func (s Sanitizer) IsHidden(n *html.Node) bool {
	return s.IsWrapper(n) && strings.EqualFold(n.Data, s.WrapperPrefix+"header")
}

func (s Sanitizer) cloneChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, s.Clone(c)...)
	}
	return out
}

// shallowCopy copies a node's type, tag, namespace and attributes but
// none of its links.
func shallowCopy(n *html.Node) *html.Node {
	return &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
}

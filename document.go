package splice

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document represents one parsed input file of a paginated filing.
// It owns its node tree exclusively and is discarded once its fragment
// has been produced.
type Document struct {
	// Name is the base name of the source file.
	Name string

	// Seq is the 0-based position of the document in processing order.
	Seq int

	// Raw holds the UTF-8 source the tree was built from.
	Raw []byte

	// Root is the document node returned by the tree parser.
	Root *html.Node

	order map[*html.Node]int
}

// NewDocument wraps a parsed tree and numbers its nodes in document order.
// The numbering is the stable node identity used by locators and extractors.
func NewDocument(name string, seq int, raw []byte, root *html.Node) *Document {
	doc := &Document{
		Name:  name,
		Seq:   seq,
		Raw:   raw,
		Root:  root,
		order: make(map[*html.Node]int),
	}
	var number func(n *html.Node)
	number = func(n *html.Node) {
		doc.order[n] = len(doc.order)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			number(c)
		}
	}
	if root != nil {
		number(root)
	}
	return doc
}

// Index returns the document-order index of n, or -1 if n does not belong
// to this document.
func (d *Document) Index(n *html.Node) int {
	if n == nil {
		return -1
	}
	i, ok := d.order[n]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether n is a node of this document.
func (d *Document) Contains(n *html.Node) bool {
	return d.Index(n) >= 0
}

// Precedes reports whether a comes before b in document order.
// Both nodes must belong to the document.
func (d *Document) Precedes(a, b *html.Node) bool {
	ia, ib := d.Index(a), d.Index(b)
	return ia >= 0 && ib >= 0 && ia < ib
}

// Len returns the number of nodes in the document tree.
func (d *Document) Len() int {
	return len(d.order)
}

// Body returns the top-level content container, or nil if the tree has none.
func (d *Document) Body() *html.Node {
	return findElement(d.Root, atom.Body)
}

// Head returns the metadata container, or nil if the tree has none.
func (d *Document) Head() *html.Node {
	return findElement(d.Root, atom.Head)
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// IsAncestor reports whether a is a strict ancestor of n.
func IsAncestor(a, n *html.Node) bool {
	if a == nil || n == nil {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}

// Follows reports whether b lies after a in document order and is neither
// a itself nor one of its ancestors. Descendants of a follow a.
func (d *Document) Follows(a, b *html.Node) bool {
	if a == b || IsAncestor(b, a) {
		return false
	}
	return d.Precedes(a, b)
}

// Parser turns raw markup into a Document.
type Parser interface {
	// Parse reads one markup document. The name and seq are recorded on
	// the returned Document. Returns EINVALID if the input cannot be parsed.
	Parse(name string, seq int, r io.Reader) (*Document, error)
}

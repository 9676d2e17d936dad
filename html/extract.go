package html

import (
	"github.com/fwojciec/splice"
	"golang.org/x/net/html"
)

// Ensure Extractor implements splice.RangeExtractor at compile time.
var _ splice.RangeExtractor = (*Extractor)(nil)

// Extractor copies section ranges out of documents by structural subtree
// copying, so nested layouts such as tables stay valid in the output.
type Extractor struct {
	sanitizer Sanitizer
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithWrapperPrefix sets the tag prefix of inline wrappers the sanitizer
// unwraps. Defaults to splice.DefaultWrapperPrefix.
func WithWrapperPrefix(prefix string) ExtractorOption {
	return func(e *Extractor) {
		e.sanitizer.WrapperPrefix = prefix
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{sanitizer: Sanitizer{WrapperPrefix: splice.DefaultWrapperPrefix}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract performs the range operation r on doc.
//
// All four operations are one pre-order capture walk:
//
//	Between        root = common ancestor of start and end, capture off
//	FromStart      root = parent of start, capture on from start
//	UntilEnd       root = parent of end, capture on, stop at end
//	WholeDocument  root = body, capture on, no stop node
//
// FromStart thus yields start and its later siblings, and UntilEnd the
// earlier siblings of end, so a marker inside a table cell contributes
// cells of its own row rather than orphaned cells from elsewhere.
func (e *Extractor) Extract(doc *splice.Document, r splice.Range) (*splice.Fragment, error) {
	body := doc.Body()
	if body == nil {
		return nil, splice.Errorf(splice.EINVALID, "%s: no body element", doc.Name)
	}

	w := &walker{sanitizer: e.sanitizer}
	root := body

	switch r.Kind {
	case splice.RangeBetween:
		if err := requireNode(doc, r.Start, "start"); err != nil {
			return nil, err
		}
		if err := requireNode(doc, r.End, "end"); err != nil {
			return nil, err
		}
		if r.Start == r.End || !doc.Precedes(r.Start, r.End) {
			return nil, splice.Errorf(splice.EINVALID, "%s: end marker does not follow start marker", doc.Name)
		}
		w.start, w.end = r.Start, r.End
		if a := CommonAncestor(r.Start, r.End); a != nil {
			root = a
		}
	case splice.RangeFromStart:
		if err := requireNode(doc, r.Start, "start"); err != nil {
			return nil, err
		}
		w.start = r.Start
		root = parentOr(r.Start, body)
	case splice.RangeUntilEnd:
		if err := requireNode(doc, r.End, "end"); err != nil {
			return nil, err
		}
		w.end = r.End
		w.capturing = true
		root = parentOr(r.End, body)
	case splice.RangeWholeDocument:
		w.capturing = true
	default:
		return nil, splice.Errorf(splice.EINVALID, "%s: range %s emits no fragment", doc.Name, r.Kind)
	}

	if w.start != nil && (!splice.IsAncestor(root, w.start) || !splice.IsAncestor(body, w.start)) {
		return nil, splice.Errorf(splice.EINVALID, "%s: start marker outside content container", doc.Name)
	}
	if w.end != nil {
		if !splice.IsAncestor(root, w.end) || !splice.IsAncestor(body, w.end) {
			return nil, splice.Errorf(splice.EINVALID, "%s: end marker outside content container", doc.Name)
		}
		w.endPath = ancestors(w.end)
	}

	frag := &splice.Fragment{Document: doc.Name, Seq: doc.Seq, Kind: r.Kind}
	w.walkChildren(root, func(n *html.Node) {
		frag.Nodes = append(frag.Nodes, n)
	})
	return frag, nil
}

func parentOr(n, fallback *html.Node) *html.Node {
	if n.Parent != nil {
		return n.Parent
	}
	return fallback
}

// CommonAncestor returns the nearest node that is a strict ancestor of both
// a and b, or nil if they share none.
func CommonAncestor(a, b *html.Node) *html.Node {
	chain := ancestors(a)
	for p := b.Parent; p != nil; p = p.Parent {
		if chain[p] {
			return p
		}
	}
	return nil
}

// ancestors returns the set of strict ancestors of n.
func ancestors(n *html.Node) map[*html.Node]bool {
	set := make(map[*html.Node]bool)
	for p := n.Parent; p != nil; p = p.Parent {
		set[p] = true
	}
	return set
}

func requireNode(doc *splice.Document, n *html.Node, what string) error {
	if n == nil {
		return splice.Errorf(splice.EINVALID, "%s: %s marker node required", doc.Name, what)
	}
	if !doc.Contains(n) {
		return splice.Errorf(splice.EINVALID, "%s: %s marker node belongs to another document", doc.Name, what)
	}
	return nil
}

// walker performs the capture walk. Captured nodes that do not contain the
// end node are cloned whole; captured ancestors of the end node are copied
// shallowly and walked into, so the copy stops exactly before end.
type walker struct {
	sanitizer Sanitizer
	start     *html.Node
	end       *html.Node
	endPath   map[*html.Node]bool
	capturing bool
	done      bool
}

func (w *walker) walkChildren(n *html.Node, emit func(*html.Node)) {
	for c := n.FirstChild; c != nil && !w.done; c = c.NextSibling {
		w.visit(c, emit)
	}
}

func (w *walker) visit(n *html.Node, emit func(*html.Node)) {
	if n == w.end {
		w.capturing = false
		w.done = true
		return
	}
	if n == w.start {
		w.capturing = true
	}

	if !w.capturing {
		// Ancestors of start are not copied; only their children are searched.
		w.walkChildren(n, emit)
		return
	}

	if w.endPath[n] {
		w.copyPartial(n, emit)
		return
	}

	for _, c := range w.sanitizer.Clone(n) {
		emit(c)
	}
}

func (w *walker) copyPartial(n *html.Node, emit func(*html.Node)) {
	if w.sanitizer.IsHidden(n) {
		return
	}
	if w.sanitizer.IsWrapper(n) {
		w.walkChildren(n, emit)
		return
	}
	c := shallowCopy(n)
	w.walkChildren(n, func(child *html.Node) {
		c.AppendChild(child)
	})
	// A shell left empty because end was its first content is dropped.
	if c.FirstChild != nil {
		emit(c)
	}
}

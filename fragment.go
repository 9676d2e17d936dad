package splice

import "golang.org/x/net/html"

// Range selects the part of a document a range operation extracts.
// Start is set for RangeBetween and RangeFromStart; End is set for
// RangeBetween and RangeUntilEnd.
type Range struct {
	Kind  RangeKind
	Start *html.Node
	End   *html.Node
}

// Fragment is the ordered list of sanitized, cloned top-level nodes one
// document contributes to the output. Nodes are never shared with the
// source tree.
type Fragment struct {
	Document string
	Seq      int
	Kind     RangeKind
	Nodes    []*html.Node
}

// Empty reports whether the fragment contributes no nodes.
func (f *Fragment) Empty() bool {
	return f == nil || len(f.Nodes) == 0
}

// RangeExtractor copies a range of a document into a Fragment.
type RangeExtractor interface {
	// Extract performs the range operation. Returns EINVALID if the
	// document lacks the structure the operation requires.
	Extract(doc *Document, r Range) (*Fragment, error)
}

// Assembler renders fragments and aggregated styles into one document.
type Assembler interface {
	// Assemble returns the serialized UTF-8 output document. Styles are
	// emitted in the given order, followed by the baseline stylesheet;
	// fragments are emitted in the given order.
	Assemble(title string, frags []*Fragment, styles []StyleRule) ([]byte, error)
}

package mock

import "github.com/fwojciec/splice"

var _ splice.RangeExtractor = (*RangeExtractor)(nil)

// RangeExtractor is a mock implementation of splice.RangeExtractor.
type RangeExtractor struct {
	ExtractFn func(doc *splice.Document, r splice.Range) (*splice.Fragment, error)
}

func (e *RangeExtractor) Extract(doc *splice.Document, r splice.Range) (*splice.Fragment, error) {
	return e.ExtractFn(doc, r)
}

var _ splice.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of splice.Assembler.
type Assembler struct {
	AssembleFn func(title string, frags []*splice.Fragment, styles []splice.StyleRule) ([]byte, error)
}

func (a *Assembler) Assemble(title string, frags []*splice.Fragment, styles []splice.StyleRule) ([]byte, error) {
	return a.AssembleFn(title, frags, styles)
}

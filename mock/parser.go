package mock

import (
	"io"

	"github.com/fwojciec/splice"
)

var _ splice.Parser = (*Parser)(nil)

// Parser is a mock implementation of splice.Parser.
type Parser struct {
	ParseFn func(name string, seq int, r io.Reader) (*splice.Document, error)
}

func (p *Parser) Parse(name string, seq int, r io.Reader) (*splice.Document, error) {
	return p.ParseFn(name, seq, r)
}

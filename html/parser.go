// Package html implements the tree parser, range extractor, sanitizer and
// output assembler on top of golang.org/x/net/html.
package html

import (
	"bytes"
	"io"

	"github.com/fwojciec/splice"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements splice.Parser at compile time.
var _ splice.Parser = (*Parser)(nil)

// Parser builds documents with the x/net/html tree builder. Input in a
// legacy encoding is decoded to UTF-8 first, based on its BOM or <meta>
// charset declaration.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and parses one markup document.
func (p *Parser) Parse(name string, seq int, r io.Reader) (*splice.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, splice.Errorf(splice.EINVALID, "failed to read %s: %v", name, err)
	}

	utf8, err := decode(raw)
	if err != nil {
		return nil, splice.Errorf(splice.EINVALID, "failed to decode %s: %v", name, err)
	}

	root, err := html.Parse(bytes.NewReader(utf8))
	if err != nil {
		return nil, splice.Errorf(splice.EINVALID, "failed to parse %s: %v", name, err)
	}

	return splice.NewDocument(name, seq, utf8, root), nil
}

func decode(raw []byte) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), "")
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

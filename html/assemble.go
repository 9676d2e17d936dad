package html

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/splice"
	"golang.org/x/net/html"
)

// Ensure Assembler implements splice.Assembler at compile time.
var _ splice.Assembler = (*Assembler)(nil)

// BaselineStylesheet is emitted after the aggregated rules, so it only
// decides properties the input documents left unstyled.
const BaselineStylesheet = `body { font-family: "Times New Roman", Times, serif; font-size: 10pt; margin: 2em; }
table { border-collapse: collapse; }
td, th { padding: 0 4px; vertical-align: bottom; }
p { margin: 0.5em 0; }`

// Assembler serializes fragments and styles into one HTML document.
type Assembler struct{}

// NewAssembler creates a new Assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble renders the output document. Aggregated styles come first,
// then the baseline stylesheet; fragments follow in the given order.
func (a *Assembler) Assemble(title string, frags []*splice.Fragment, styles []splice.StyleRule) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))

	for _, rule := range styles {
		switch rule.Kind {
		case splice.StyleLink:
			buf.WriteString(rule.Text)
			buf.WriteString("\n")
		default:
			writeStyle(&buf, rule.Text)
		}
	}
	writeStyle(&buf, BaselineStylesheet)

	buf.WriteString("</head>\n<body>\n")
	for _, frag := range frags {
		for _, n := range frag.Nodes {
			if err := html.Render(&buf, n); err != nil {
				return nil, splice.Errorf(splice.EINTERNAL, "failed to render %s: %v", frag.Document, err)
			}
			buf.WriteString("\n")
		}
	}
	buf.WriteString("</body>\n</html>\n")

	return buf.Bytes(), nil
}

func writeStyle(buf *bytes.Buffer, css string) {
	buf.WriteString("<style>\n")
	buf.WriteString(css)
	buf.WriteString("\n</style>\n")
}

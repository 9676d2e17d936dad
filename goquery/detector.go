package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/splice"
)

// Ensure Detector implements splice.FormatDetector at compile time.
var _ splice.FormatDetector = (*Detector)(nil)

// Detector identifies inline XBRL filings among plain HTML ones.
// It checks the ix namespace declaration, inline tagging elements and the
// meta generator tag.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes a parsed document and returns its format.
func (d *Detector) Detect(doc *splice.Document) splice.Format {
	if doc == nil || doc.Root == nil {
		return splice.FormatUnknown
	}
	sel := goquery.NewDocumentFromNode(doc.Root)

	if d.declaresInlineNamespace(sel) || d.hasInlineElements(sel) || d.generatorMentionsXBRL(sel) {
		return splice.FormatInlineXBRL
	}
	return splice.FormatHTML
}

// declaresInlineNamespace checks the html element for an xmlns:ix declaration.
func (d *Detector) declaresInlineNamespace(doc *goquery.Document) bool {
	_, ok := doc.Find("html").First().Attr("xmlns:ix")
	return ok
}

// hasInlineElements checks for any ix: tagging element.
func (d *Detector) hasInlineElements(doc *goquery.Document) bool {
	return doc.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.HasPrefix(goquery.NodeName(s), "ix:")
	}).Length() > 0
}

// generatorMentionsXBRL checks the meta generator tag.
func (d *Detector) generatorMentionsXBRL(doc *goquery.Document) bool {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	return strings.Contains(generator, "xbrl")
}

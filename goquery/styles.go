package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/splice"
)

// Ensure StyleCollector implements splice.StyleCollector at compile time.
var _ splice.StyleCollector = (*StyleCollector)(nil)

var (
	headEndRe    = regexp.MustCompile(`(?i)</head\s*>|<body[\s>]`)
	styleBlockRe = regexp.MustCompile(`(?is)<(style|script|title)[^>]*>.*?</(style|script|title)\s*>`)
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)

	// cssRuleRe matches "selector { property: value; ... }" without nesting.
	cssRuleRe = regexp.MustCompile(`[A-Za-z.#*\[][^{}<>;]*\{[^{}<>]*:[^{}<>]*\}`)
)

// StyleCollector gathers presentational rules from a document's header:
// <style> bodies, stylesheet <link> tags, and CSS rules left as bare text in
// the raw header by markup that lost its <style> tags.
type StyleCollector struct{}

// NewStyleCollector creates a new StyleCollector.
func NewStyleCollector() *StyleCollector {
	return &StyleCollector{}
}

// Collect returns the document's style rules in document order: blocks,
// then links, then bare header rules.
func (c *StyleCollector) Collect(doc *splice.Document) []splice.StyleRule {
	var rules []splice.StyleRule

	if head := doc.Head(); head != nil {
		sel := goquery.NewDocumentFromNode(head)

		sel.Find("style").Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				rules = append(rules, splice.StyleRule{Kind: splice.StyleBlock, Text: text})
			}
		})

		sel.Find("link[rel]").Each(func(_ int, s *goquery.Selection) {
			rel, _ := s.Attr("rel")
			if !hasToken(rel, "stylesheet") {
				return
			}
			tag, err := goquery.OuterHtml(s)
			if err != nil {
				return
			}
			rules = append(rules, splice.StyleRule{Kind: splice.StyleLink, Text: tag})
		})
	}

	for _, text := range InlineRules(doc.Raw) {
		rules = append(rules, splice.StyleRule{Kind: splice.StyleInline, Text: text})
	}

	return rules
}

// InlineRules returns CSS rules appearing as bare text in the raw header,
// outside any <style>, <script> or <title> element. The header ends at </head> or
// <body; markup with neither has no header to scan.
func InlineRules(raw []byte) []string {
	loc := headEndRe.FindIndex(raw)
	if loc == nil {
		return nil
	}
	header := string(raw[:loc[0]])
	header = styleBlockRe.ReplaceAllString(header, " ")
	header = commentRe.ReplaceAllString(header, " ")
	header = tagRe.ReplaceAllString(header, " ")

	var rules []string
	for _, m := range cssRuleRe.FindAllString(header, -1) {
		rules = append(rules, strings.TrimSpace(m))
	}
	return rules
}

// hasToken reports whether the space-separated attribute value contains
// token, ignoring case.
func hasToken(value, token string) bool {
	for _, f := range strings.Fields(value) {
		if strings.EqualFold(f, token) {
			return true
		}
	}
	return false
}

package mock

import "github.com/fwojciec/splice"

var _ splice.StyleCollector = (*StyleCollector)(nil)

// StyleCollector is a mock implementation of splice.StyleCollector.
type StyleCollector struct {
	CollectFn func(doc *splice.Document) []splice.StyleRule
}

func (c *StyleCollector) Collect(doc *splice.Document) []splice.StyleRule {
	return c.CollectFn(doc)
}

var _ splice.FormatDetector = (*FormatDetector)(nil)

// FormatDetector is a mock implementation of splice.FormatDetector.
type FormatDetector struct {
	DetectFn func(doc *splice.Document) splice.Format
}

func (d *FormatDetector) Detect(doc *splice.Document) splice.Format {
	return d.DetectFn(doc)
}

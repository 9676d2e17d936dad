package splice

// Format identifies the markup flavour of an input document.
type Format string

// Recognised document formats.
const (
	FormatUnknown    Format = ""
	FormatHTML       Format = "html"
	FormatInlineXBRL Format = "ixbrl"
)

// FormatDetector identifies the markup flavour of a parsed document.
type FormatDetector interface {
	// Detect returns FormatUnknown if the document has no tree.
	Detect(doc *Document) Format
}

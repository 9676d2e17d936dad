package splice

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an assembled HTML document into Markdown.
	Convert(html string) (string, error)
}

package sift

// Converter transforms HTML content into another textual representation,
// such as Markdown.
type Converter interface {
	// Convert transforms HTML content. Returns EINVALID for empty input.
	Convert(html string) (string, error)
}

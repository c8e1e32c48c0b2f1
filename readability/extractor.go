// Package readability provides a baseline extractor backed by
// go-readability. It exists so the tuned pipeline's deviation score can be
// compared against an established extraction heuristic over the same
// corpus.
package readability

import (
	"bytes"

	"github.com/fwojciec/sift"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sift.TextExtractor at compile time.
var _ sift.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content text from a
// parsed document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText renders the document and runs readability over it, returning
// the article's text content.
func (e *Extractor) ExtractText(doc *html.Node) (string, error) {
	if doc == nil {
		return "", sift.Errorf(sift.EINVALID, "nil document")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}

	article, err := readability.FromReader(&buf, nil)
	if err != nil {
		return "", err
	}

	return article.TextContent, nil
}

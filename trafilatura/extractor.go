// Package trafilatura provides a baseline extractor backed by
// go-trafilatura, measured by the same deviation metric as the tuned
// pipeline.
package trafilatura

import (
	"bytes"

	"github.com/fwojciec/sift"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sift.TextExtractor at compile time.
var _ sift.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content text from a
// parsed document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText renders the document and runs trafilatura over it, returning
// the extracted content text.
func (e *Extractor) ExtractText(doc *html.Node) (string, error) {
	if doc == nil {
		return "", sift.Errorf(sift.EINVALID, "nil document")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(&buf, opts)
	if err != nil {
		return "", err
	}

	return result.ContentText, nil
}

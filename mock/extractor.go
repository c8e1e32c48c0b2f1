package mock

import (
	"github.com/fwojciec/sift"
	"golang.org/x/net/html"
)

var _ sift.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of sift.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(doc *html.Node) (string, error)
}

func (e *TextExtractor) ExtractText(doc *html.Node) (string, error) {
	return e.ExtractTextFn(doc)
}

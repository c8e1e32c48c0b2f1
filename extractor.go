package sift

import "golang.org/x/net/html"

// TextExtractor extracts the readable text of a document's primary content
// region, with boilerplate (nav, footer, sidebar, ads) removed.
type TextExtractor interface {
	// ExtractText processes a parsed document and returns the joined text
	// of its content region. An empty result is valid: a document with no
	// recognizable content yields "" and a nil error.
	ExtractText(doc *html.Node) (string, error)
}

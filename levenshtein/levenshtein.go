// Package levenshtein implements the extraction quality metric: extracted
// text is compared against hand-labeled expected text with a normalized
// edit-distance measure, aggregated into a percentage deviation score.
package levenshtein

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
	"golang.org/x/net/html"
)

// Distance returns the minimum number of single-character insert, delete,
// and substitute operations needed to turn a into b.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// NormalizeText trims every line and collapses runs of two or more blank
// lines into one. It is idempotent.
func NormalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// ExpectedText returns the full text of a hand-labeled expected document:
// the text content of its body.
func ExpectedText(doc *html.Node) string {
	return goquery.NewDocumentFromNode(doc).Find("body").Text()
}

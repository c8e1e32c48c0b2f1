// Package dom provides the low-level document utilities the extraction
// pipeline is built on: static DOM parsing, inline text measurement, link
// density, and tree traversal helpers. All functions operate on
// golang.org/x/net/html nodes.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a static DOM from markup. No scripts are executed; the
// document is parsed exactly as served.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString is a convenience wrapper around Parse for in-memory markup.
func ParseString(markup string) (*html.Node, error) {
	return Parse(strings.NewReader(markup))
}

// Text returns the whitespace-normalized text of n and its descendants.
// Runs of whitespace collapse to a single space and the result is trimmed.
func Text(n *html.Node) string {
	var b strings.Builder
	appendText(&b, n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func appendText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}

// InlineTextLength returns the length in bytes of the whitespace-normalized
// text beneath n. It is the raw signal behind paragraphish scoring and is
// cached per node by the pipeline.
func InlineTextLength(n *html.Node) int {
	return len(Text(n))
}

// LinkDensity returns the fraction of inlineLength that sits inside
// hyperlink elements beneath n, in [0, 1]. A node with no measurable text
// has density 0.
func LinkDensity(n *html.Node, inlineLength int) float64 {
	if inlineLength <= 0 {
		return 0
	}
	linked := 0
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.DataAtom == atom.A {
			linked += InlineTextLength(cur)
			return // nested anchors are counted once
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	density := float64(linked) / float64(inlineLength)
	if density > 1 {
		density = 1
	}
	return density
}

// Walk visits every element node beneath root in document (pre-order)
// order, reporting each node's depth relative to root.
func Walk(root *html.Node, fn func(n *html.Node, depth int)) {
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if n.Type == html.ElementNode {
			fn(n, depth)
			depth++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth)
		}
	}
	walk(root, 0)
}

// TreeDistance returns the number of edges on the tree path between a and
// b. Zero means the same node.
func TreeDistance(a, b *html.Node) int {
	if a == b {
		return 0
	}

	// Ancestor chain of a, keyed by node with hop count.
	hops := map[*html.Node]int{}
	steps := 0
	for n := a; n != nil; n = n.Parent {
		hops[n] = steps
		steps++
	}

	steps = 0
	for n := b; n != nil; n = n.Parent {
		if up, ok := hops[n]; ok {
			return up + steps
		}
		steps++
	}

	// Disjoint trees; treat as maximally far apart.
	return len(hops) + steps
}

// Body returns the <body> element of a parsed document, or the document
// root if none exists.
func Body(doc *html.Node) *html.Node {
	var body *html.Node
	Walk(doc, func(n *html.Node, _ int) {
		if body == nil && n.DataAtom == atom.Body {
			body = n
		}
	})
	if body == nil {
		return doc
	}
	return body
}

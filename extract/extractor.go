// Package extract implements the content extraction pipeline: an ordered
// chain of scoring rules that classifies block-level text-bearing elements,
// penalizes link-heavy boilerplate, clusters the best candidates, and
// returns the winning cluster's nodes in document order.
package extract

import (
	"sort"
	"strings"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements sift.TextExtractor at compile time.
var _ sift.TextExtractor = (*Extractor)(nil)

// blockAtoms are the block-level text-bearing elements considered
// paragraphish candidates.
var blockAtoms = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Li:         true,
	atom.Code:       true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
}

// facts is the per-run evaluation state: the candidate set in document
// order. Each stage transforms it in place.
type facts struct {
	candidates []*Node
}

// byLabel returns the candidates carrying the given label, preserving
// document order.
func (f *facts) byLabel(label Label) []*Node {
	var nodes []*Node
	for _, n := range f.candidates {
		if n.Has(label) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// stage is one step of the rule chain. Stages run in order over the shared
// facts and must be pure with respect to everything but the facts.
type stage func(f *facts)

// Extractor is the configured content extraction pipeline. It is immutable
// after construction: the coefficient vector is captured by value, so each
// tuning trial binds its own instance without cross-trial interference.
type Extractor struct {
	coeffs sift.Coefficients
	stages []stage
}

// New creates a pipeline bound to the given coefficients. Invalid
// coefficients fail here, not deep inside scoring.
func New(coeffs sift.Coefficients) (*Extractor, error) {
	if err := coeffs.Validate(); err != nil {
		return nil, err
	}
	e := &Extractor{coeffs: coeffs}
	e.stages = []stage{
		e.scoreParagraphish,
		e.penalizeLinkDensity,
		e.boostParagraphTags,
		e.clusterContent,
	}
	return e, nil
}

// Coefficients returns the vector the pipeline was built with.
func (e *Extractor) Coefficients() sift.Coefficients {
	return e.coeffs
}

// Extract runs the rule chain over a parsed document and returns the
// content nodes in document order. The result is deterministic for a fixed
// document and coefficient vector. A document with no paragraphish
// candidates yields an empty, valid result.
func (e *Extractor) Extract(doc *html.Node) []*Node {
	f := &facts{candidates: collectCandidates(doc)}
	for _, s := range e.stages {
		s(f)
	}

	content := f.byLabel(Content)
	sort.SliceStable(content, func(i, j int) bool {
		return content[i].order < content[j].order
	})
	return content
}

// ExtractText implements sift.TextExtractor: it joins the text of the
// extracted nodes with newlines. An empty extraction joins to "".
func (e *Extractor) ExtractText(doc *html.Node) (string, error) {
	nodes := e.Extract(doc)
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, dom.Text(n.El))
	}
	return strings.Join(parts, "\n"), nil
}

// HTML renders the extracted nodes back to markup, joined with newlines.
// Useful for feeding the extraction result to an HTML consumer such as a
// Markdown converter.
func HTML(nodes []*Node) (string, error) {
	var buf strings.Builder
	for i, n := range nodes {
		if i > 0 {
			buf.WriteString("\n")
		}
		if err := html.Render(&buf, n.El); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// collectCandidates walks the document once, wrapping every block-level
// element with its depth and pre-order position.
func collectCandidates(doc *html.Node) []*Node {
	var nodes []*Node
	order := 0
	dom.Walk(doc, func(n *html.Node, depth int) {
		if blockAtoms[n.DataAtom] {
			nodes = append(nodes, newNode(n, depth, order))
		}
		order++
	})
	return nodes
}

// scoreParagraphish classifies every candidate as paragraphish with a score
// proportional to its inline text length, caching the raw length for the
// link-density rule.
func (e *Extractor) scoreParagraphish(f *facts) {
	for _, n := range f.candidates {
		n.inlineLength = dom.InlineTextLength(n.El)
		n.setScore(Paragraphish, float64(n.inlineLength)*e.coeffs.Length)
	}
}

// penalizeLinkDensity rescales paragraphish scores by how much of the
// node's text is anchor text, suppressing navs and footers.
func (e *Extractor) penalizeLinkDensity(f *facts) {
	for _, n := range f.byLabel(Paragraphish) {
		density := dom.LinkDensity(n.El, n.InlineLength())
		n.scaleScore(Paragraphish, (1-density)*e.coeffs.LinkDensity)
	}
}

// boostParagraphTags adds a flat bonus to literal <p> elements: paragraphs
// are more likely to be body text than, say, list items.
func (e *Extractor) boostParagraphTags(f *facts) {
	for _, n := range f.byLabel(Paragraphish) {
		if n.El.DataAtom == atom.P {
			n.addScore(Paragraphish, e.coeffs.ParagraphTag)
		}
	}
}

// clusterContent relabels the members of the top-totaling cluster as
// content.
func (e *Extractor) clusterContent(f *facts) {
	for _, n := range topTotalingCluster(f.byLabel(Paragraphish), e.coeffs) {
		n.setScore(Content, n.Score(Paragraphish))
	}
}

package extract

import "golang.org/x/net/html"

// Label classifies a node within one extraction run.
type Label uint8

// Classification labels, in pipeline order.
const (
	// Paragraphish marks a node as plausibly a block of body text.
	Paragraphish Label = iota

	// Content marks a node selected as part of the winning cluster.
	Content
)

// Node wraps a document element with its per-run classification state: a
// score per label and a cached inline text length. Nodes are owned by one
// extraction call and discarded afterwards.
type Node struct {
	// El is the underlying document element.
	El *html.Node

	// Tag is the element's lowercased tag name.
	Tag string

	// Depth is the element's depth beneath the document root.
	Depth int

	// order is the element's pre-order position in the document, used for
	// the final document-order sort.
	order int

	// inlineLength caches the node's inline text length, computed once
	// during classification and reused by the link-density rule.
	inlineLength int

	scores map[Label]float64
	labels map[Label]bool
}

func newNode(el *html.Node, depth, order int) *Node {
	return &Node{
		El:     el,
		Tag:    el.Data,
		Depth:  depth,
		order:  order,
		scores: make(map[Label]float64, 2),
		labels: make(map[Label]bool, 2),
	}
}

// Score returns the node's score for the given label, zero if unset.
func (n *Node) Score(label Label) float64 {
	return n.scores[label]
}

// Has reports whether the node carries the given label.
func (n *Node) Has(label Label) bool {
	return n.labels[label]
}

// InlineLength returns the cached inline text length.
func (n *Node) InlineLength() int {
	return n.inlineLength
}

func (n *Node) setScore(label Label, score float64) {
	n.labels[label] = true
	n.scores[label] = score
}

func (n *Node) scaleScore(label Label, factor float64) {
	n.scores[label] *= factor
}

func (n *Node) addScore(label Label, bonus float64) {
	n.scores[label] += bonus
}

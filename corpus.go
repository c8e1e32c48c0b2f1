package sift

import (
	"context"

	"golang.org/x/net/html"
)

// CasePair is one hand-labeled test case: a source document and the
// expected content that a perfect extraction would produce. Pairs are
// immutable once loaded and live for the duration of one evaluation.
type CasePair struct {
	// Name identifies the case, typically the fixture directory name.
	Name string

	// Expected is the parsed hand-labeled expected output.
	Expected *html.Node

	// Source is the parsed raw page the content is extracted from.
	Source *html.Node
}

// Corpus is a fixed set of test cases, read-only after load.
type Corpus struct {
	// Dir is the directory the corpus was loaded from.
	Dir string

	// Pairs holds the test cases in load order.
	Pairs []CasePair

	// Fingerprint is a stable hash over the raw fixture bytes, recorded
	// with tuning runs so stored scores remain comparable.
	Fingerprint string
}

// CorpusLoader loads a corpus of test cases from storage.
type CorpusLoader interface {
	// Load reads the named cases from dir. With no names it discovers all
	// case directories. Returns ENOTFOUND if a case is missing one of its
	// fixture files.
	Load(ctx context.Context, dir string, names ...string) (*Corpus, error)
}

// CorpusScorer measures extraction quality of a coefficient vector over a
// set of test cases. Lower is better; 0 means every extraction matched its
// expected text exactly after normalization.
type CorpusScorer interface {
	// DeviationScore builds a pipeline from coeffs, compares every pair,
	// and returns the aggregate percentage deviation. Returns EEMPTYCORPUS
	// if pairs is empty.
	DeviationScore(ctx context.Context, pairs []CasePair, coeffs Coefficients) (float64, error)
}

package levenshtein

import (
	"context"
	"runtime"
	"unicode/utf8"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/extract"
	"golang.org/x/sync/errgroup"
)

// Scorer accumulates edit distances between extracted and expected text
// across a sequence of comparisons. It is bound to one extractor; create a
// fresh Scorer per evaluation.
type Scorer struct {
	extractor sift.TextExtractor

	comparisons int
	distance    int
	expected    int
}

// NewScorer creates a Scorer bound to the given extractor.
func NewScorer(extractor sift.TextExtractor) *Scorer {
	return &Scorer{extractor: extractor}
}

// Compare extracts content from the pair's source document, measures the
// edit distance against the expected document's normalized text, and adds
// both the distance and the expected length to the running totals. Must be
// called at least once before Score is meaningful.
func (s *Scorer) Compare(pair sift.CasePair) error {
	distance, expected, err := comparePair(s.extractor, pair)
	if err != nil {
		return err
	}
	s.distance += distance
	s.expected += expected
	s.comparisons++
	return nil
}

// Score returns 100 × (accumulated edit distance) / (accumulated expected
// length). Lower is better; 0 is a perfect match, and values above 100 are
// possible when extracted text is substantially longer than or unrelated
// to the expected text. Calling Score before any comparison is an
// EEMPTYCORPUS error, never a silent zero.
func (s *Scorer) Score() (float64, error) {
	if s.comparisons == 0 {
		return 0, sift.Errorf(sift.EEMPTYCORPUS, "no comparisons accumulated")
	}
	if s.expected == 0 {
		return 0, sift.Errorf(sift.EEMPTYCORPUS, "corpus contains no expected text")
	}
	return 100 * float64(s.distance) / float64(s.expected), nil
}

// comparePair measures one pair: the distance between extracted and
// expected normalized text, and the expected text's length in runes. A
// degenerate (empty) extraction is valid and diffs against the full
// expected length.
func comparePair(extractor sift.TextExtractor, pair sift.CasePair) (distance, expected int, err error) {
	got, err := extractor.ExtractText(pair.Source)
	if err != nil {
		return 0, 0, err
	}

	want := NormalizeText(ExpectedText(pair.Expected))
	got = NormalizeText(got)

	return Distance(want, got), utf8.RuneCountInString(want), nil
}

// Ensure CorpusScorer implements sift.CorpusScorer at compile time.
var _ sift.CorpusScorer = (*CorpusScorer)(nil)

// CorpusScorer scores coefficient vectors against a corpus. It is the
// objective the tuner minimizes.
type CorpusScorer struct{}

// NewCorpusScorer creates a new CorpusScorer.
func NewCorpusScorer() *CorpusScorer {
	return &CorpusScorer{}
}

// DeviationScore builds a pipeline from coeffs, feeds every pair through a
// fresh comparison, and returns the aggregate score.
func (cs *CorpusScorer) DeviationScore(ctx context.Context, pairs []sift.CasePair, coeffs sift.Coefficients) (float64, error) {
	extractor, err := extract.New(coeffs)
	if err != nil {
		return 0, err
	}
	return DeviationScoreWith(ctx, pairs, extractor)
}

// DeviationScoreWith scores an arbitrary extractor against the pairs. Pair
// comparisons are independent, so they run in parallel; totals are combined
// by summing per-pair results in pair order, keeping the aggregate
// deterministic. Any pair error fails the whole evaluation: silently
// skipping a case would corrupt the aggregate score's meaning.
func DeviationScoreWith(ctx context.Context, pairs []sift.CasePair, extractor sift.TextExtractor) (float64, error) {
	type totals struct {
		distance int
		expected int
	}
	results := make([]totals, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			distance, expected, err := comparePair(extractor, pair)
			if err != nil {
				return err
			}
			results[i] = totals{distance: distance, expected: expected}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	sum := totals{}
	for _, r := range results {
		sum.distance += r.distance
		sum.expected += r.expected
	}
	if len(pairs) == 0 || sum.expected == 0 {
		return 0, sift.Errorf(sift.EEMPTYCORPUS, "no expected text to compare against")
	}
	return 100 * float64(sum.distance) / float64(sum.expected), nil
}

package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/sift"
	main "github.com/fwojciec/sift/cmd/sift"
	"github.com/fwojciec/sift/dom"
	"github.com/fwojciec/sift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// testCorpus returns a one-case corpus for command tests.
func testCorpus(t *testing.T) *sift.Corpus {
	t.Helper()

	expected, err := dom.ParseString(`<html><body><p>Hello world</p></body></html>`)
	require.NoError(t, err)
	source, err := dom.ParseString(`<html><body><article><p>Hello world</p></article></body></html>`)
	require.NoError(t, err)

	return &sift.Corpus{
		Dir:         "testdata/corpus",
		Pairs:       []sift.CasePair{{Name: "hello", Expected: expected, Source: source}},
		Fingerprint: "00000000deadbeef",
	}
}

func TestScoreCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints coefficients and deviation score", func(t *testing.T) {
		t.Parallel()

		corpus := testCorpus(t)

		loader := &mock.CorpusLoader{
			LoadFn: func(_ context.Context, dir string, names ...string) (*sift.Corpus, error) {
				assert.Equal(t, "testdata/corpus", dir)
				assert.Empty(t, names)
				return corpus, nil
			},
		}
		scorer := &mock.CorpusScorer{
			DeviationScoreFn: func(_ context.Context, pairs []sift.CasePair, coeffs sift.Coefficients) (float64, error) {
				assert.Len(t, pairs, 1)
				assert.Equal(t, sift.DefaultCoefficients(), coeffs)
				return 12.5, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: loader,
			Scorer: scorer,
		}

		cmd := &main.ScoreCmd{Corpus: "testdata/corpus"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "12.50%")
		assert.Contains(t, stdout.String(), sift.DefaultCoefficients().String())
		assert.Contains(t, stdout.String(), "00000000deadbeef")
		assert.Empty(t, stderr.String())
	})

	t.Run("passes custom coefficients to the scorer", func(t *testing.T) {
		t.Parallel()

		corpus := testCorpus(t)

		var scored sift.Coefficients
		loader := &mock.CorpusLoader{
			LoadFn: func(_ context.Context, _ string, _ ...string) (*sift.Corpus, error) {
				return corpus, nil
			},
		}
		scorer := &mock.CorpusScorer{
			DeviationScoreFn: func(_ context.Context, _ []sift.CasePair, coeffs sift.Coefficients) (float64, error) {
				scored = coeffs
				return 0, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: loader,
			Scorer: scorer,
		}

		cmd := &main.ScoreCmd{
			Corpus: "testdata/corpus",
			Coeffs: []float64{1, 2, 3, 4, 5, 6, 7},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, sift.CoefficientsFromVector([7]float64{1, 2, 3, 4, 5, 6, 7}), scored)
	})

	t.Run("rejects a wrong-length coefficient vector", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ScoreCmd{
			Corpus: "testdata/corpus",
			Coeffs: []float64{1, 2, 3},
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sift.EINVALID, sift.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})

	t.Run("forwards named cases to the loader", func(t *testing.T) {
		t.Parallel()

		corpus := testCorpus(t)

		var gotNames []string
		loader := &mock.CorpusLoader{
			LoadFn: func(_ context.Context, _ string, names ...string) (*sift.Corpus, error) {
				gotNames = names
				return corpus, nil
			},
		}
		scorer := &mock.CorpusScorer{
			DeviationScoreFn: func(_ context.Context, _ []sift.CasePair, _ sift.Coefficients) (float64, error) {
				return 0, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: loader,
			Scorer: scorer,
		}

		cmd := &main.ScoreCmd{
			Corpus: "testdata/corpus",
			Cases:  []string{"hello", "article"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"hello", "article"}, gotNames)
	})

	t.Run("scores baselines in sorted name order", func(t *testing.T) {
		t.Parallel()

		corpus := testCorpus(t)

		loader := &mock.CorpusLoader{
			LoadFn: func(_ context.Context, _ string, _ ...string) (*sift.Corpus, error) {
				return corpus, nil
			},
		}
		scorer := &mock.CorpusScorer{
			DeviationScoreFn: func(_ context.Context, _ []sift.CasePair, _ sift.Coefficients) (float64, error) {
				return 5, nil
			},
		}
		identity := &mock.TextExtractor{
			ExtractTextFn: func(doc *html.Node) (string, error) {
				return "Hello world", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: loader,
			Scorer: scorer,
			Baselines: map[string]sift.TextExtractor{
				"readability": identity,
				"trafilatura": identity,
			},
		}

		cmd := &main.ScoreCmd{Corpus: "testdata/corpus", Baselines: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "baseline readability: 0.00%")
		assert.Contains(t, output, "baseline trafilatura: 0.00%")
		assert.Less(t, strings.Index(output, "baseline readability"), strings.Index(output, "baseline trafilatura"))
	})

	t.Run("returns error when corpus loading fails", func(t *testing.T) {
		t.Parallel()

		loader := &mock.CorpusLoader{
			LoadFn: func(_ context.Context, _ string, _ ...string) (*sift.Corpus, error) {
				return nil, sift.Errorf(sift.ENOTFOUND, "corpus directory not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: loader,
		}

		cmd := &main.ScoreCmd{Corpus: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sift.ENOTFOUND, sift.ErrorCode(err))
		assert.Contains(t, stderr.String(), "corpus directory not found")
	})
}

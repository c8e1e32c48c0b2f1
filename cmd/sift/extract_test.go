package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sift"
	main "github.com/fwojciec/sift/cmd/sift"
	"github.com/fwojciec/sift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHTMLFile writes markup to a temp file and returns its path.
func writeHTMLFile(t *testing.T, markup string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(markup), 0644))
	return path
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	page := `<html><body>
		<nav><a href="/">Home</a> <a href="/about">About</a></nav>
		<article><p>Content extraction finds the part of a page a reader came for.</p></article>
	</body></html>`

	t.Run("prints extracted text by default", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ExtractCmd{File: writeHTMLFile(t, page), Format: "text"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Content extraction finds the part of a page a reader came for.")
		assert.NotContains(t, stdout.String(), "About")
		assert.Empty(t, stderr.String())
	})

	t.Run("renders markdown through the converter", func(t *testing.T) {
		t.Parallel()

		var converted string
		converter := &mock.Converter{
			ConvertFn: func(markup string) (string, error) {
				converted = markup
				return "converted markdown", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Converter: converter,
		}

		cmd := &main.ExtractCmd{File: writeHTMLFile(t, page), Format: "markdown"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, converted, "<p>")
		assert.Contains(t, stdout.String(), "converted markdown")
	})

	t.Run("returns error for a missing file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ExtractCmd{File: filepath.Join(t.TempDir(), "absent.html"), Format: "text"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.NotEmpty(t, stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects invalid coefficients before touching the file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ExtractCmd{
			File:   "does-not-matter.html",
			Format: "text",
			Coeffs: []float64{1, 2},
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sift.EINVALID, sift.ErrorCode(err))
	})
}

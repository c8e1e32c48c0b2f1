// Package fs loads extraction test corpora from the filesystem. A corpus
// directory holds one subdirectory per test case, each containing exactly
// two files: expected.html (the hand-labeled content) and source.html (the
// raw page).
package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/dom"
)

// Fixture file names within a case directory.
const (
	ExpectedFile = "expected.html"
	SourceFile   = "source.html"
)

// Ensure Loader implements sift.CorpusLoader at compile time.
var _ sift.CorpusLoader = (*Loader)(nil)

// Loader loads corpora from case directories.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the named cases from dir, in the given order. With no names it
// discovers every subdirectory of dir, sorted by name so the corpus
// fingerprint is stable. A case missing one of its fixture files is an
// ENOTFOUND error at load time, before any downstream parse failure could
// obscure it.
func (l *Loader) Load(ctx context.Context, dir string, names ...string) (*sift.Corpus, error) {
	if len(names) == 0 {
		var err error
		if names, err = discoverCases(dir); err != nil {
			return nil, err
		}
	}

	corpus := &sift.Corpus{Dir: dir}
	digest := xxhash.New()

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		expectedRaw, err := readFixture(dir, name, ExpectedFile)
		if err != nil {
			return nil, err
		}
		sourceRaw, err := readFixture(dir, name, SourceFile)
		if err != nil {
			return nil, err
		}

		// Fingerprint covers case names and raw bytes in load order.
		digest.WriteString(name)
		digest.Write(expectedRaw)
		digest.Write(sourceRaw)

		expected, err := dom.Parse(bytes.NewReader(expectedRaw))
		if err != nil {
			return nil, sift.Errorf(sift.EINVALID, "case %q: parsing %s: %v", name, ExpectedFile, err)
		}
		source, err := dom.Parse(bytes.NewReader(sourceRaw))
		if err != nil {
			return nil, sift.Errorf(sift.EINVALID, "case %q: parsing %s: %v", name, SourceFile, err)
		}

		corpus.Pairs = append(corpus.Pairs, sift.CasePair{
			Name:     name,
			Expected: expected,
			Source:   source,
		})
	}

	if len(corpus.Pairs) == 0 {
		return nil, sift.Errorf(sift.EEMPTYCORPUS, "no test cases found in %q", dir)
	}

	corpus.Fingerprint = fmt.Sprintf("%016x", digest.Sum64())
	return corpus, nil
}

func discoverCases(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sift.Errorf(sift.ENOTFOUND, "corpus directory %q does not exist", dir)
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func readFixture(dir, name, file string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sift.Errorf(sift.ENOTFOUND, "case %q is missing %s", name, file)
		}
		return nil, err
	}
	return raw, nil
}

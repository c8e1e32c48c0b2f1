package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/dom"
	"github.com/fwojciec/sift/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	coeffs, err := resolveCoefficients(c.Coeffs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}

	extractor, err := extract.New(coeffs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
		return err
	}
	nodes := extractor.Extract(doc)

	switch c.Format {
	case "markdown":
		markup, err := extract.HTML(nodes)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
			return err
		}
		md, err := deps.Converter.Convert(markup)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
	default:
		text, err := extractor.ExtractText(doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, text)
	}

	return nil
}

// Package sift extracts the primary human-readable content region of an
// HTML document by scoring and clustering text-bearing nodes, measures
// extraction quality against hand-labeled expected output, and tunes the
// scoring coefficients against a corpus of test documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or role (e.g., extract/, levenshtein/,
// sqlite/).
package sift

// Package htmlcmp compares HTML documents or fragments for semantic
// equivalence under a configurable tolerance policy.
//
// This is the recommended import for most uses:
//
//	import "github.com/systemsoverload/htmlcmp"
//
// Usage:
//
//	if err := htmlcmp.Compare(got, want); err != nil {
//	    m := err.(*htmlcmp.Mismatch)
//	    fmt.Println(m.Explain())
//	}
//
// Differences that do not affect rendering, incidental whitespace and
// attribute order among them, are ignored by default. What else counts
// as a difference is controlled by Options; see Defaults, Strict,
// Relaxed, and Markdown.
//
// In tests, prefer the assertion helpers in pkg/htmltest.
package htmlcmp

import "github.com/systemsoverload/htmlcmp/pkg/compare"

// =============================================================================
// Re-exported Types
// =============================================================================

// Options govern what the comparison treats as significant.
// This is compare.Options; see that package for field documentation.
type Options = compare.Options

// Mismatch describes the first point where two inputs diverge.
// It implements error; its Explain method renders the full report.
type Mismatch = compare.Mismatch

// Kind identifies which comparison rule a mismatch violated.
type Kind = compare.Kind

// Path locates a node as the sequence of child positions from the root.
type Path = compare.Path

const (
	KindNodeType       = compare.KindNodeType
	KindTag            = compare.KindTag
	KindAttributes     = compare.KindAttributes
	KindText           = compare.KindText
	KindComment        = compare.KindComment
	KindChildCount     = compare.KindChildCount
	KindNoSiblingMatch = compare.KindNoSiblingMatch
	KindExtraSibling   = compare.KindExtraSibling
)

// =============================================================================
// Option Constructors
// =============================================================================

// Defaults returns the default comparison policy.
func Defaults() Options { return compare.Defaults() }

// Strict returns options that also compare comment content.
func Strict() Options { return compare.Strict() }

// Relaxed returns options that ignore attributes and sibling order.
func Relaxed() Options { return compare.Relaxed() }

// Markdown returns options suited to comparing rendered markdown.
func Markdown() Options { return compare.Markdown() }

// =============================================================================
// Comparison Entry Points
// =============================================================================

// Compare reports whether two markup strings are semantically equivalent
// under the default options. It returns nil on a match and a *Mismatch
// describing the first divergence otherwise.
func Compare(left, right string) error {
	return CompareWith(left, right, compare.Defaults())
}

// CompareWith is Compare under a custom Options value.
func CompareWith(left, right string, opts Options) error {
	if m := compare.Compare(left, right, opts); m != nil {
		return m
	}
	return nil
}

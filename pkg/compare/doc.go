// Package compare implements the HTML comparison engine: the options
// model that governs what is significant, the recursive matcher, and the
// mismatch result with its human-readable report.
//
// # Comparing
//
// Compare takes two markup strings and an Options value and returns nil
// when they are semantically equivalent, or a *Mismatch describing the
// first divergence:
//
//	if m := compare.Compare(left, right, compare.Defaults()); m != nil {
//	    fmt.Println(m.Explain())
//	}
//
// The engine is a stateless recursive descent that halts at the first
// failing check. It never fails for any input: malformed markup is
// absorbed by lenient parsing, and every rule violation is a reportable
// mismatch, not an error condition.
//
// # Options
//
// Options is an immutable value with independently toggleable fields;
// Defaults treats whitespace and comments as insignificant. Strict,
// Relaxed, and Markdown return pre-filled policies for common cases.
//
// # Sibling order
//
// By default children are compared pairwise by position. With
// IgnoreSiblingOrder each element's children form a multiset matched by
// full structural equivalence: a greedy one-pass matching in document
// order, taking the first feasible candidate, with no backtracking.
// When a single candidate remains the comparison recurses into it
// directly, so a mismatch below a single-child level keeps its own kind
// and path instead of surfacing as a failed sibling match.
//
// # Concurrency
//
// Compare builds fresh trees per call and shares no state across calls,
// so independent comparisons may run on separate goroutines.
package compare

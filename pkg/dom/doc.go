// Package dom provides the parsed node tree that HTML comparison operates
// on: lenient parsing of raw markup, pre-comparison normalization, and
// deterministic snapshot rendering for mismatch reports.
//
// # Parsing
//
// Parse turns any markup string, fragment or full document, into a tree
// rooted at a synthetic container element:
//
//	tree := dom.Parse("<div><p>Hello</p></div>")
//
// Parsing follows browser error recovery: unclosed tags are auto-closed,
// implied elements are inserted, and stray end tags are recovered. There
// is no error channel; every input produces a tree.
//
// # Normalization
//
// Normalize conditions a tree in place before comparison, stripping
// comments and collapsing insignificant whitespace according to
// NormalizeOptions. It is independent of the matcher so it can be tested
// alone.
//
// # Rendering
//
// Render produces an HTML snapshot of a subtree with sorted attributes
// and escaped content, used when reporting the first divergence between
// two trees.
package dom

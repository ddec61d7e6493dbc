package compare

import (
	"fmt"
	"strings"
)

// Kind identifies which comparison rule a mismatch violated.
type Kind uint8

const (
	KindNodeType       Kind = iota // element vs text/comment at the same position
	KindTag                        // tag names differ
	KindAttributes                 // effective attribute sets differ
	KindText                       // normalized text content differs
	KindComment                    // comment content differs
	KindChildCount                 // effective child counts differ
	KindNoSiblingMatch             // unordered mode: left child has no equivalent
	KindExtraSibling               // unordered mode: right child left unmatched
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNodeType:
		return "node type differs"
	case KindTag:
		return "tag name differs"
	case KindAttributes:
		return "attribute set differs"
	case KindText:
		return "text differs"
	case KindComment:
		return "comment differs"
	case KindChildCount:
		return "child count differs"
	case KindNoSiblingMatch:
		return "no sibling match"
	case KindExtraSibling:
		return "unmatched right sibling"
	default:
		return "unknown"
	}
}

// Path locates a node as the sequence of child positions from the tree
// root. Element segments are "tag[i]", text and comment segments are
// "#text[i]" and "#comment[i]", with i the position among the children
// considered by the comparison.
type Path []string

// String returns the path in "/html[0]/body[1]/div[0]" form.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	return "/" + strings.Join(p, "/")
}

// child returns a copy of p extended by one segment.
func (p Path) child(seg string) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = seg
	return next
}

// Mismatch describes the first point where two trees diverge. It is
// produced once per comparison and immutable thereafter, and implements
// error so callers can propagate it directly.
type Mismatch struct {
	// Kind is the violated comparison rule.
	Kind Kind

	// Path locates the divergent node from the tree root.
	Path Path

	// Left and Right are rendered snapshots of the divergent subtrees.
	// One side may be empty for the unmatched-sibling kinds.
	Left  string
	Right string

	// Detail is a one-line cause, e.g. the two differing values.
	Detail string

	// LeftInput and RightInput are the original, un-normalized markup
	// strings the comparison was called with.
	LeftInput  string
	RightInput string
}

// Error implements the error interface with the short form of the
// mismatch. Use Explain for the full report.
func (m *Mismatch) Error() string {
	if m.Detail != "" {
		return fmt.Sprintf("%s at %s: %s", m.Kind, m.Path, m.Detail)
	}
	return fmt.Sprintf("%s at %s", m.Kind, m.Path)
}

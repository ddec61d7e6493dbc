package dom

import (
	"strings"
	"unicode"
)

// NormalizeOptions control the pre-comparison conditioning pass.
type NormalizeOptions struct {
	// StripComments removes comment nodes from every child list,
	// recursively.
	StripComments bool

	// CollapseWhitespace collapses interior whitespace runs in text and
	// comment content to a single space, trims leading and trailing
	// whitespace, and removes text nodes left empty. This is what lets
	// differently indented markup compare equal.
	CollapseWhitespace bool
}

// Normalize conditions a tree in place prior to comparison. Both sides of
// a comparison must be normalized with the same options. The original
// markup strings are untouched; only the parsed tree is rewritten.
func Normalize(n *Node, opts NormalizeOptions) {
	if n == nil || n.Kind != KindElement {
		return
	}

	kept := n.Children[:0]
	for _, c := range n.Children {
		switch c.Kind {
		case KindComment:
			if opts.StripComments {
				continue
			}
			if opts.CollapseWhitespace {
				c.Text = CollapseWhitespace(c.Text)
			}
		case KindText:
			if opts.CollapseWhitespace {
				c.Text = CollapseWhitespace(c.Text)
				if c.Text == "" {
					continue
				}
			}
		case KindElement:
			Normalize(c, opts)
		}
		kept = append(kept, c)
	}
	n.Children = kept
}

// CollapseWhitespace reduces every interior whitespace run to a single
// space and trims leading and trailing whitespace, mirroring how HTML
// rendering treats text between element boundaries.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

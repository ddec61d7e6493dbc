package compare

import (
	"fmt"
	"strings"
)

// Explain renders the full human-readable report for a mismatch: the
// violated rule, the path to the divergent node, snapshots of both
// subtrees, and both original inputs so a human can see the exact markup
// that was compared. Explain is purely presentational; it never alters
// the comparison result.
func (m *Mismatch) Explain() string {
	var b strings.Builder

	fmt.Fprintf(&b, "HTML comparison failed: %s\n", m.Kind)
	fmt.Fprintf(&b, "  at: %s\n", m.Path)
	if m.Detail != "" {
		fmt.Fprintf(&b, "  cause: %s\n", m.Detail)
	}
	if m.Left != "" {
		fmt.Fprintf(&b, "  left subtree:  %s\n", m.Left)
	}
	if m.Right != "" {
		fmt.Fprintf(&b, "  right subtree: %s\n", m.Right)
	}

	b.WriteString("left input:\n")
	writeIndented(&b, m.LeftInput)
	b.WriteString("right input:\n")
	writeIndented(&b, m.RightInput)

	return b.String()
}

// writeIndented writes s with every line prefixed by two spaces.
func writeIndented(b *strings.Builder, s string) {
	for _, line := range strings.Split(s, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

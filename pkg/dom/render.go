package dom

import (
	"sort"
	"strings"
)

// Render returns the HTML for a node subtree. It is used to snapshot the
// divergent subtrees in mismatch reports, so the output is deterministic:
// attributes are sorted by name, void elements carry no closing tag, and
// text and attribute values are escaped. The synthetic root renders its
// children only.
func Render(n *Node) string {
	var b strings.Builder
	renderNode(&b, n)
	return b.String()
}

// renderNode dispatches rendering based on node kind.
func renderNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindElement:
		renderElement(b, n)
	case KindText:
		b.WriteString(escapeHTML(n.Text))
	case KindComment:
		b.WriteString("<!--")
		b.WriteString(n.Text)
		b.WriteString("-->")
	}
}

// renderElement renders an element with its attributes and children.
func renderElement(b *strings.Builder, n *Node) {
	if n.IsRoot() {
		for _, c := range n.Children {
			renderNode(b, c)
		}
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)

	// Sort for deterministic output; declaration order is not significant.
	attrs := append([]Attr(nil), n.Attrs...)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Value != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(a.Value))
			b.WriteString(`"`)
		}
	}
	b.WriteByte('>')

	if isVoidElement(n.Tag) {
		return
	}

	for _, c := range n.Children {
		renderNode(b, c)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// isVoidElement returns true if the tag is a void element.
func isVoidElement(tag string) bool {
	return voidElements[tag]
}

package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Parse builds a node tree from raw markup. Parsing is lenient in the
// browser sense: unclosed tags are auto-closed, implied elements (html,
// head, body) are inserted, stray end tags are recovered, and unknown
// tags are preserved as elements. Parse is a total function: malformed
// input still produces a tree, never an error.
//
// The returned node is always the synthetic container element (RootTag),
// whether the input was a fragment or a full document.
func Parse(markup string) *Node {
	root := &Node{Kind: KindElement, Tag: RootTag}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse only fails on reader errors, which strings.Reader
		// cannot produce. Keep the contract total regardless.
		return root
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if n := convert(c); n != nil {
			root.Children = append(root.Children, n)
		}
	}
	return root
}

// convert maps an html.Node to the comparison tree, dropping node types
// that carry no comparable content (doctypes).
func convert(n *html.Node) *Node {
	switch n.Type {
	case html.ElementNode:
		el := &Node{Kind: KindElement, Tag: strings.ToLower(n.Data)}
		for _, a := range n.Attr {
			el.Attrs = append(el.Attrs, Attr{Key: strings.ToLower(a.Key), Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	case html.TextNode:
		return &Node{Kind: KindText, Text: n.Data}
	case html.CommentNode:
		return &Node{Kind: KindComment, Text: n.Data}
	default:
		return nil
	}
}

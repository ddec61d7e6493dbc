package dom

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "Hello World"},
		{"Hello   World", "Hello World"},
		{"Hello \t\n World", "Hello World"},
		{"  Hello  ", "Hello"},
		{"\n\t  \n", ""},
		{"", ""},
		{"one", "one"},
	}
	for _, c := range cases {
		if got := CollapseWhitespace(c.in); got != c.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeStripsCommentsRecursively(t *testing.T) {
	root := Parse("<div><!-- a --><p><!-- b -->Text</p></div>")
	Normalize(root, NormalizeOptions{StripComments: true})

	var count func(n *Node) int
	count = func(n *Node) int {
		total := 0
		if n.Kind == KindComment {
			total++
		}
		for _, c := range n.Children {
			total += count(c)
		}
		return total
	}
	if got := count(root); got != 0 {
		t.Errorf("comments after normalize = %d, want 0", got)
	}

	p := findElement(root, "p")
	if len(p.Children) != 1 || p.Children[0].Text != "Text" {
		t.Errorf("p children = %+v, want single text node %q", p.Children, "Text")
	}
}

func TestNormalizeDropsIndentationText(t *testing.T) {
	root := Parse("<div>\n  <p>Hello</p>\n</div>")
	Normalize(root, NormalizeOptions{CollapseWhitespace: true})

	div := findElement(root, "div")
	if len(div.Children) != 1 {
		t.Fatalf("div children = %d, want 1 (indentation pruned)", len(div.Children))
	}
	if div.Children[0].Tag != "p" {
		t.Errorf("remaining child = %q, want p", div.Children[0].Tag)
	}
}

func TestNormalizeCollapsesTextContent(t *testing.T) {
	root := Parse("<p>  Hello   World  </p>")
	Normalize(root, NormalizeOptions{CollapseWhitespace: true})

	p := findElement(root, "p")
	if len(p.Children) != 1 || p.Children[0].Text != "Hello World" {
		t.Errorf("p text = %+v, want %q", p.Children, "Hello World")
	}
}

func TestNormalizeCollapsesRetainedComments(t *testing.T) {
	root := Parse("<div><!--  note  --></div>")
	Normalize(root, NormalizeOptions{CollapseWhitespace: true})

	div := findElement(root, "div")
	if len(div.Children) != 1 {
		t.Fatalf("div children = %d, want 1", len(div.Children))
	}
	if div.Children[0].Text != "note" {
		t.Errorf("comment text = %q, want %q", div.Children[0].Text, "note")
	}
}

func TestNormalizeWithoutCollapseKeepsTextExact(t *testing.T) {
	root := Parse("<div>\n  <p>Hello   World</p>\n</div>")
	Normalize(root, NormalizeOptions{})

	div := findElement(root, "div")
	if len(div.Children) != 3 {
		t.Fatalf("div children = %d, want 3 (whitespace text retained)", len(div.Children))
	}
	p := findElement(div, "p")
	if p.Children[0].Text != "Hello   World" {
		t.Errorf("p text = %q, want exact original", p.Children[0].Text)
	}
}

func TestNormalizeNilIsNoop(t *testing.T) {
	Normalize(nil, NormalizeOptions{StripComments: true, CollapseWhitespace: true})
}

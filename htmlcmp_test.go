package htmlcmp

import (
	"errors"
	"testing"
)

func TestCompareMatchReturnsNil(t *testing.T) {
	if err := Compare("<div><p>Hello</p></div>", "<div>\n  <p>Hello</p>\n</div>"); err != nil {
		t.Errorf("Compare = %v, want nil", err)
	}
}

func TestCompareCollapsesTextWhitespace(t *testing.T) {
	if err := Compare("<p>Hello   World</p>", "<p>Hello World</p>"); err != nil {
		t.Errorf("Compare = %v, want nil", err)
	}
}

func TestCompareReturnsTypedMismatch(t *testing.T) {
	err := Compare("<div class='test'>Content</div>", "<div class='different'>Content</div>")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var m *Mismatch
	if !errors.As(err, &m) {
		t.Fatalf("error type = %T, want *Mismatch", err)
	}
	if m.Kind != KindAttributes {
		t.Errorf("kind = %q, want %q", m.Kind, KindAttributes)
	}
}

func TestCompareWithSiblingOrderOptions(t *testing.T) {
	opts := Defaults()
	opts.IgnoreSiblingOrder = true
	opts.IgnoreAttributes = true
	err := CompareWith(
		"<div><p>First</p><p>Second</p></div>",
		"<div><p>Second</p><p>First</p></div>",
		opts)
	if err != nil {
		t.Errorf("CompareWith = %v, want nil", err)
	}
}

func TestCompareWithIgnoredAttributes(t *testing.T) {
	opts := Defaults()
	opts.IgnoredAttributes = map[string]bool{"id": true}
	if err := CompareWith("<h1 id='a'>Title</h1>", "<h1 id='b'>Title</h1>", opts); err != nil {
		t.Errorf("CompareWith = %v, want nil", err)
	}
}

func TestRelaxedPresetEndToEnd(t *testing.T) {
	err := CompareWith(
		"<div class='a'><p>First</p><p>Second</p></div>",
		"<div class='b'><p>Second</p><p>First</p></div>",
		Relaxed())
	if err != nil {
		t.Errorf("relaxed compare = %v, want nil", err)
	}
}

func TestStrictPresetEndToEnd(t *testing.T) {
	err := CompareWith(
		"<div class='test'><!--comment--><p>Content</p></div>",
		"<div class='test'><!--comment--><p>Content</p></div>",
		Strict())
	if err != nil {
		t.Errorf("strict compare = %v, want nil", err)
	}

	err = CompareWith(
		"<div><!-- one --><p>Content</p></div>",
		"<div><!-- two --><p>Content</p></div>",
		Strict())
	if err == nil {
		t.Error("strict compare should report differing comments")
	}
}

func TestMarkdownPresetEndToEnd(t *testing.T) {
	err := CompareWith(
		"<h1 id='heading-1'>Title</h1><p>Content</p>",
		"<h1 id='different-id'>Title</h1><p>Content</p>",
		Markdown())
	if err != nil {
		t.Errorf("markdown compare = %v, want nil", err)
	}
}

func TestCompareParallel(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
		match       bool
	}{
		{"formatting", "<div><p>Hello</p></div>", "<div>\n  <p>Hello</p>\n</div>", true},
		{"text", "<p>one</p>", "<p>two</p>", false},
		{"attrs", "<a href='x'>l</a>", "<a href='y'>l</a>", false},
		{"entities", "<p>&quot;q&quot;</p>", "<p>&#34;q&#34;</p>", true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			err := Compare(c.left, c.right)
			if c.match && err != nil {
				t.Errorf("Compare = %v, want nil", err)
			}
			if !c.match && err == nil {
				t.Error("Compare = nil, want mismatch")
			}
		})
	}
}

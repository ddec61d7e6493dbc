package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/systemsoverload/htmlcmp/pkg/dom"
)

// Compare parses, normalizes, and recursively matches two markup strings
// under opts. It returns nil when the trees are semantically equivalent
// and the first mismatch found otherwise (short-circuit; it does not
// collect every difference).
//
// Compare holds no state between calls; concurrent calls on separate
// goroutines are independent.
func Compare(left, right string, opts Options) *Mismatch {
	lt := dom.Parse(left)
	rt := dom.Parse(right)

	norm := dom.NormalizeOptions{
		StripComments:      opts.IgnoreComments,
		CollapseWhitespace: opts.IgnoreWhitespace,
	}
	dom.Normalize(lt, norm)
	dom.Normalize(rt, norm)

	m := newMatcher(opts)
	mm := m.nodes(nil, lt, rt)
	if mm != nil {
		mm.LeftInput = left
		mm.RightInput = right
	}
	return mm
}

// matcher is one recursive descent. It carries only the immutable options
// and the pre-lowered ignored-attribute set.
type matcher struct {
	opts    Options
	ignored map[string]bool
}

func newMatcher(opts Options) matcher {
	m := matcher{opts: opts}
	if len(opts.IgnoredAttributes) > 0 {
		m.ignored = make(map[string]bool, len(opts.IgnoredAttributes))
		for name, on := range opts.IgnoredAttributes {
			if on {
				m.ignored[strings.ToLower(name)] = true
			}
		}
	}
	return m
}

// nodes compares one node pair. path already names the pair's own
// position.
func (m matcher) nodes(path Path, l, r *dom.Node) *Mismatch {
	if l.Kind != r.Kind {
		return &Mismatch{
			Kind:   KindNodeType,
			Path:   path,
			Left:   dom.Render(l),
			Right:  dom.Render(r),
			Detail: fmt.Sprintf("%s vs %s", l.Kind, r.Kind),
		}
	}

	switch l.Kind {
	case dom.KindElement:
		return m.elements(path, l, r)
	case dom.KindText:
		return m.text(path, l, r)
	case dom.KindComment:
		return m.comment(path, l, r)
	}
	return nil
}

// elements compares tag identity, attribute sets, and children.
func (m matcher) elements(path Path, l, r *dom.Node) *Mismatch {
	if !strings.EqualFold(l.Tag, r.Tag) {
		return &Mismatch{
			Kind:   KindTag,
			Path:   path,
			Left:   dom.Render(l),
			Right:  dom.Render(r),
			Detail: fmt.Sprintf("%q vs %q", l.Tag, r.Tag),
		}
	}

	if !m.opts.IgnoreAttributes {
		if mm := m.attributes(path, l, r); mm != nil {
			return mm
		}
	}

	lc := m.effectiveChildren(l)
	rc := m.effectiveChildren(r)
	if m.opts.IgnoreSiblingOrder {
		return m.unordered(path, lc, rc)
	}
	return m.ordered(path, l, r, lc, rc)
}

// attributes compares the effective attribute sets of two elements:
// same names, same values, order never significant.
func (m matcher) attributes(path Path, l, r *dom.Node) *Mismatch {
	la := m.effectiveAttrs(l)
	ra := m.effectiveAttrs(r)

	mismatch := func(detail string) *Mismatch {
		return &Mismatch{
			Kind:   KindAttributes,
			Path:   path,
			Left:   dom.Render(l),
			Right:  dom.Render(r),
			Detail: detail,
		}
	}

	for _, k := range sortedKeys(la) {
		rv, ok := ra[k]
		if !ok {
			return mismatch(fmt.Sprintf("attribute %q missing on right", k))
		}
		if rv != la[k] {
			return mismatch(fmt.Sprintf("attribute %q: %q vs %q", k, la[k], rv))
		}
	}
	for _, k := range sortedKeys(ra) {
		if _, ok := la[k]; !ok {
			return mismatch(fmt.Sprintf("attribute %q missing on left", k))
		}
	}
	return nil
}

// ordered compares children pairwise by position. l and r are the parent
// elements, kept for the child-count snapshot.
func (m matcher) ordered(path Path, l, r *dom.Node, left, right []*dom.Node) *Mismatch {
	if len(left) != len(right) {
		return &Mismatch{
			Kind:   KindChildCount,
			Path:   path,
			Left:   dom.Render(l),
			Right:  dom.Render(r),
			Detail: fmt.Sprintf("%d vs %d children", len(left), len(right)),
		}
	}
	for i := range left {
		if mm := m.nodes(path.child(segment(left[i], i)), left[i], right[i]); mm != nil {
			return mm
		}
	}
	return nil
}

// unordered matches children as multisets: for each left child, the first
// unconsumed right child that compares equivalent is taken, in document
// order, with no backtracking across consumed matches. The contract is
// "equivalent sets", not best global alignment, so the greedy pass is
// deterministic and sufficient.
//
// When a left child has exactly one unconsumed candidate there is no
// choice to make, so the comparison recurses directly and any nested
// mismatch keeps its own kind and path. Without this, every level with a
// single child (the synthetic root, the implied html and body wrappers)
// would flatten nested mismatches into a no-sibling-match at the top.
func (m matcher) unordered(path Path, left, right []*dom.Node) *Mismatch {
	consumed := make([]bool, len(right))
	remaining := len(right)

	for i, lc := range left {
		if remaining == 1 {
			for j, rc := range right {
				if consumed[j] {
					continue
				}
				if mm := m.nodes(path.child(segment(lc, i)), lc, rc); mm != nil {
					return mm
				}
				consumed[j] = true
				remaining--
				break
			}
			continue
		}

		found := false
		for j, rc := range right {
			if consumed[j] {
				continue
			}
			if m.nodes(path.child(segment(lc, i)), lc, rc) == nil {
				consumed[j] = true
				remaining--
				found = true
				break
			}
		}
		if !found {
			return &Mismatch{
				Kind:   KindNoSiblingMatch,
				Path:   path.child(segment(lc, i)),
				Left:   dom.Render(lc),
				Detail: "no equivalent sibling on the right",
			}
		}
	}

	for j, rc := range right {
		if !consumed[j] {
			return &Mismatch{
				Kind:   KindExtraSibling,
				Path:   path.child(segment(rc, j)),
				Right:  dom.Render(rc),
				Detail: "no equivalent sibling on the left",
			}
		}
	}
	return nil
}

// text compares normalized text content exactly.
func (m matcher) text(path Path, l, r *dom.Node) *Mismatch {
	if m.opts.IgnoreText {
		return nil
	}
	if l.Text != r.Text {
		return &Mismatch{
			Kind:   KindText,
			Path:   path,
			Left:   l.Text,
			Right:  r.Text,
			Detail: fmt.Sprintf("%q vs %q", l.Text, r.Text),
		}
	}
	return nil
}

// comment compares comment content exactly. When comments are ignored
// they were already stripped during normalization; the guard keeps the
// rule local anyway.
func (m matcher) comment(path Path, l, r *dom.Node) *Mismatch {
	if m.opts.IgnoreComments {
		return nil
	}
	if l.Text != r.Text {
		return &Mismatch{
			Kind:   KindComment,
			Path:   path,
			Left:   l.Text,
			Right:  r.Text,
			Detail: fmt.Sprintf("%q vs %q", l.Text, r.Text),
		}
	}
	return nil
}

// effectiveChildren returns the child sequence the comparison considers.
// Comment and whitespace pruning already happened during normalization;
// text nodes drop out here when text is ignored entirely.
func (m matcher) effectiveChildren(n *dom.Node) []*dom.Node {
	if !m.opts.IgnoreText {
		return n.Children
	}
	kept := make([]*dom.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == dom.KindText {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// effectiveAttrs builds the attribute set for comparison, dropping
// ignored names. The first declaration wins on duplicates, as in
// browsers.
func (m matcher) effectiveAttrs(n *dom.Node) map[string]string {
	attrs := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		key := strings.ToLower(a.Key)
		if m.ignored[key] {
			continue
		}
		if _, ok := attrs[key]; ok {
			continue
		}
		attrs[key] = a.Value
	}
	return attrs
}

// segment names one child position for the mismatch path.
func segment(n *dom.Node, i int) string {
	switch n.Kind {
	case dom.KindText:
		return fmt.Sprintf("#text[%d]", i)
	case dom.KindComment:
		return fmt.Sprintf("#comment[%d]", i)
	default:
		return fmt.Sprintf("%s[%d]", n.Tag, i)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

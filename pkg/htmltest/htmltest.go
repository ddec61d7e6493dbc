package htmltest

import (
	"testing"

	"github.com/systemsoverload/htmlcmp/pkg/compare"
)

// Equal asserts that two markup strings are semantically equivalent under
// the default options.
//
// Example:
//
//	htmltest.Equal(t, "<div><p>Hello</p></div>", "<div>\n  <p>Hello</p>\n</div>")
func Equal(t testing.TB, left, right string) {
	t.Helper()
	EqualWith(t, left, right, compare.Defaults())
}

// EqualWith asserts equivalence under custom options.
//
// Example:
//
//	opts := compare.Defaults()
//	opts.IgnoreSiblingOrder = true
//	htmltest.EqualWith(t, got, want, opts)
func EqualWith(t testing.TB, left, right string, opts compare.Options) {
	t.Helper()
	if m := compare.Compare(left, right, opts); m != nil {
		t.Errorf("%s", m.Explain())
	}
}

// NotEqual asserts that two markup strings differ under the default
// options.
func NotEqual(t testing.TB, left, right string) {
	t.Helper()
	NotEqualWith(t, left, right, compare.Defaults())
}

// NotEqualWith asserts that two markup strings differ under custom
// options.
func NotEqualWith(t testing.TB, left, right string, opts compare.Options) {
	t.Helper()
	if compare.Compare(left, right, opts) == nil {
		t.Errorf("markup compared as equivalent but a difference was expected\nleft:\n%s\nright:\n%s", left, right)
	}
}

// Package htmltest provides test assertions over HTML comparison.
//
// The htmltest package reduces boilerplate when asserting that generated
// or rendered HTML matches an expected shape, failing the test with the
// full mismatch report when it does not.
//
// # Quick Start
//
//	func TestRenderCard(t *testing.T) {
//	    got := RenderCard("Title")
//	    htmltest.Equal(t, got, "<div class=\"card\"><h1>Title</h1></div>")
//	}
//
// # Custom Policies
//
// Pass a compare.Options value to control what counts as a difference:
//
//	opts := compare.Defaults()
//	opts.IgnoredAttributes = map[string]bool{"id": true}
//	htmltest.EqualWith(t, got, want, opts)
//
// # Asserting Difference
//
// NotEqual and NotEqualWith fail when two inputs compare as equivalent:
//
//	htmltest.NotEqual(t, "<p>a</p>", "<p>b</p>")
package htmltest

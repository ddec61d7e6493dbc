package compare

// Options govern what the matcher treats as significant. An Options value
// is read at every decision point of one comparison pass and is never
// mutated mid-traversal. Every field combination is legal, including
// degenerate ones like ignoring both text and attributes (then only tag
// identity and structure are compared).
//
// The zero value is not the default policy; use Defaults.
type Options struct {
	// IgnoreWhitespace collapses whitespace runs inside text nodes before
	// comparing and drops indentation-only text nodes, so differently
	// formatted markup compares equal.
	// Default: true.
	IgnoreWhitespace bool

	// IgnoreAttributes skips attribute comparison for every element.
	// Default: false.
	IgnoreAttributes bool

	// IgnoredAttributes names attributes excluded from comparison even
	// when attribute comparison is otherwise active. Names are matched
	// case-insensitively.
	// Default: empty.
	IgnoredAttributes map[string]bool

	// IgnoreText skips comparing text node content entirely.
	// Default: false.
	IgnoreText bool

	// IgnoreComments drops comment nodes from both trees before
	// comparison.
	// Default: true.
	IgnoreComments bool

	// IgnoreSiblingOrder treats each element's children as an unordered
	// multiset rather than a sequence.
	// Default: false.
	IgnoreSiblingOrder bool
}

// Defaults returns the default comparison policy: whitespace and comments
// are insignificant, everything else is compared.
func Defaults() Options {
	return Options{
		IgnoreWhitespace: true,
		IgnoreComments:   true,
	}
}

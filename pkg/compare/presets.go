package compare

// Strict returns options that are strict about everything except
// insignificant whitespace: comments are retained and compared.
func Strict() Options {
	o := Defaults()
	o.IgnoreComments = false
	return o
}

// Relaxed returns options that ignore all formatting differences:
// attributes, comments, and sibling order are all insignificant.
func Relaxed() Options {
	o := Defaults()
	o.IgnoreAttributes = true
	o.IgnoreSiblingOrder = true
	return o
}

// Markdown returns options suited to comparing rendered markdown, where
// generated heading ids differ between renderers.
func Markdown() Options {
	o := Defaults()
	o.IgnoredAttributes = map[string]bool{"id": true}
	return o
}

package dom

import (
	"strconv"
	"strings"
)

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string { return escape(s, false) }

// escapeAttr escapes text for an attribute value. Beyond the content
// entities it encodes tabs and line breaks, which would otherwise be
// lost or would break the quoted value.
func escapeAttr(s string) string { return escape(s, true) }

func escape(s string, attr bool) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case r == '"':
			buf.WriteString("&quot;")
		case r == '\'':
			buf.WriteString("&#39;")
		case attr && (r == '\n' || r == '\r' || r == '\t'):
			buf.WriteString("&#")
			buf.WriteString(strconv.Itoa(int(r)))
			buf.WriteByte(';')
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

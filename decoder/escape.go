package decoder

import "html"

// Escape makes value safe for HTML text and attribute context by escaping
// &, <, >, " and '.
func Escape(value string) string {
	return html.EscapeString(value)
}

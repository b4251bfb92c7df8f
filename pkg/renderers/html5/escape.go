package html5

import "html"

// content applies the escaping policy to question and answer text: raw
// content passes through byte for byte, everything else is escaped.
func content(text string, raw bool) string {
	if raw {
		return text
	}
	return html.EscapeString(text)
}

// attr escapes attribute values. Attributes are escaped even for raw
// questions.
func attr(value string) string {
	return html.EscapeString(value)
}

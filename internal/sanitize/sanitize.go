// Package sanitize normalizes plain-text input before it is validated and stored.
//
// Rich content (page bodies) must not be passed through here; it is stored
// verbatim and escaped by whatever renders it.
package sanitize

import "strings"

// trimSet are the characters removed from both ends of the input.
const trimSet = " \t\n\r\x00\x0B"

var htmlReplacer = strings.NewReplacer( //nolint:gochecknoglobals
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// Sanitize trims surrounding whitespace, removes escape backslashes and
// HTML-encodes special characters.
func Sanitize(s string) string {
	return EscapeHTML(StripSlashes(strings.Trim(s, trimSet)))
}

// StripSlashes removes one level of backslash escaping: `\x` becomes `x`,
// `\\` becomes `\` and `\0` becomes a NUL byte. A trailing lone backslash is
// dropped.
func StripSlashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}

		i++
		if i == len(s) {
			break
		}

		if s[i] == '0' {
			b.WriteByte(0)
			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

// EscapeHTML encodes & " ' < > as entities. Existing entities are encoded again.
// Invalid UTF-8 sequences are replaced by U+FFFD.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(strings.ToValidUTF8(s, "\uFFFD"))
}

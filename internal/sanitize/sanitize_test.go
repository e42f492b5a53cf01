package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\r\n\x0B\x00 ", ""},
		{"trims surrounding whitespace", "  Alice  ", "Alice"},
		{"keeps inner whitespace", "Alice  Smith", "Alice  Smith"},
		{"strips escape backslashes", `O\'Brien`, "O&#039;Brien"},
		{"double backslash keeps one", `C:\\path`, `C:\path`},
		{"encodes tags", `<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"encodes ampersand first", "Tom & Jerry", "Tom &amp; Jerry"},
		{"re-encodes entities", "&amp;", "&amp;amp;"},
		{"unicode untouched", "  شعاع أحمر ", "شعاع أحمر"},
		{"replaces invalid utf-8", "bad\xffname", "bad\uFFFDname"},
		{"collapses invalid run", "a\xff\xfe<b", "a\uFFFD&lt;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestStripSlashes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{`a\b`, "ab"},
		{`a\\b`, `a\b`},
		{`a\0b`, "a\x00b"},
		{`trailing\`, "trailing"},
		{`\\\\`, `\\`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripSlashes(tt.input), tt.input)
	}
}

func TestSanitizeIsNotIdempotentOnEntities(t *testing.T) {
	once := Sanitize("a<b")
	assert.Equal(t, "a&lt;b", once)
	assert.Equal(t, "a&amp;lt;b", Sanitize(once))
}

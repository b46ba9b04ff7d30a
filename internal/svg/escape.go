// Package svg assembles a compiled timeline document into a self-contained
// animated SVG fragment.
package svg

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes a string for use as XML character data. Terminal
// lines and commands are arbitrary text and must never reach the markup
// unescaped.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes a string for use inside a double-quoted XML attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

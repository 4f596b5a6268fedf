package skadoo

import (
	"strings"
	"unicode/utf8"
)

// longForm derives the canonical long flag from the name's word parts, e.g.
// ["dry", "run"] becomes "--dry-run".
func longForm(parts []string) string {
	return "--" + strings.Join(parts, "-")
}

// shortForm derives the canonical short flag from the first rune of each
// word part, e.g. ["dry", "run"] becomes "-dr".
func shortForm(parts []string) string {
	var b strings.Builder
	b.WriteByte('-')
	for _, part := range parts {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}

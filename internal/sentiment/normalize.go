package sentiment

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and strips every rune outside a-z and
// whitespace. It never fails; garbage in yields the empty string out.
// The same transform feeds both training and inference so the two
// always see the same token stream.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

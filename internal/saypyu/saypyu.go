package saypyu

import (
	"strings"
	"unicode/utf8"
)

// Transliterate converts an IPA pronunciation into SaypYu.
//
// At each position the rule table is tried in order, and within a rule each
// pattern in order; the first pattern that prefixes the remaining input
// wins. Only when no rule matches is the single character looked up on its
// own. Unknown characters produce no output.
//
// Example: Transliterate("krʌˈsteɪʃən") == "krɘsteyshɘn"
func Transliterate(ipa string) string {
	var b strings.Builder
	b.Grow(len(ipa) * 3 / 2)

	for pos := 0; pos < len(ipa); {
		rest := ipa[pos:]

		if repl, n, ok := matchRule(rest); ok {
			b.WriteString(repl)
			pos += n
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		if s, ok := single[r]; ok {
			b.WriteString(s)
		}
		pos += size
	}

	return b.String()
}

// matchRule returns the replacement and matched byte length of the first
// rule pattern that prefixes s.
func matchRule(s string) (string, int, bool) {
	for _, r := range rules {
		for _, p := range r.Patterns {
			if strings.HasPrefix(s, p) {
				return r.Replacement, len(p), true
			}
		}
	}
	return "", 0, false
}

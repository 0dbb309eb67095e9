package saypyu

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer streams IPA text through the same rules as Transliterate.
// Output does not depend on how the input is split across Transform calls.
type Transformer struct {
	transform.NopResetter
}

// NewTransformer returns a Transformer for use with transform.NewReader,
// transform.NewWriter or transform.String.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform implements transform.Transformer.
func (Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rest := src[nSrc:]

		// A longer pattern might still match once more input arrives.
		if !atEOF && isPartialPattern(rest) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if repl, n, ok := matchRuleBytes(rest); ok {
			if nDst+len(repl) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], repl)
			nSrc += n
			continue
		}

		if !atEOF && !utf8.FullRune(rest) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		r, size := utf8.DecodeRune(rest)
		if s, ok := single[r]; ok {
			if nDst+len(s) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], s)
		}
		nSrc += size
	}

	return nDst, nSrc, nil
}

// isPartialPattern reports whether b is a proper prefix of some rule pattern.
func isPartialPattern(b []byte) bool {
	if len(b) >= maxPatternLen {
		return false
	}
	for _, r := range rules {
		for _, p := range r.Patterns {
			if len(p) > len(b) && p[:len(b)] == string(b) {
				return true
			}
		}
	}
	return false
}

func matchRuleBytes(b []byte) (string, int, bool) {
	for _, r := range rules {
		for _, p := range r.Patterns {
			if len(b) >= len(p) && string(b[:len(p)]) == p {
				return r.Replacement, len(p), true
			}
		}
	}
	return "", 0, false
}

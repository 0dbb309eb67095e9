package saypyu

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// DroppedRune is a character that Transliterate leaves out of its output.
type DroppedRune struct {
	Offset int // byte offset in the input
	Rune   rune
	Name   string // Unicode character name, empty if unknown
}

// String formats d as "U+02C8 MODIFIER LETTER VERTICAL LINE at 3".
func (d DroppedRune) String() string {
	name := d.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%U %s at %d", d.Rune, name, d.Offset)
}

// Dropped walks ipa exactly as Transliterate does and reports every
// character that produced no output because neither table knows it.
// Characters consumed by a rule, or mapped to an empty string, are not
// reported.
func Dropped(ipa string) []DroppedRune {
	var dropped []DroppedRune

	for pos := 0; pos < len(ipa); {
		if _, n, ok := matchRule(ipa[pos:]); ok {
			pos += n
			continue
		}

		r, size := utf8.DecodeRuneInString(ipa[pos:])
		if _, ok := single[r]; !ok {
			dropped = append(dropped, DroppedRune{
				Offset: pos,
				Rune:   r,
				Name:   runenames.Name(r),
			})
		}
		pos += size
	}

	return dropped
}

// Explain returns a human readable list of the characters Dropped reports,
// one per line, or an empty string when nothing is dropped.
func Explain(ipa string) string {
	dropped := Dropped(ipa)
	if len(dropped) == 0 {
		return ""
	}

	var b strings.Builder
	for _, d := range dropped {
		fmt.Fprintf(&b, "  %q %s\n", d.Rune, d)
	}
	return b.String()
}

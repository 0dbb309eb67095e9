package saypyu

// Rule maps any of its patterns to a single SaypYu replacement.
// Patterns are literal strings and are tried in order.
type Rule struct {
	Patterns    []string
	Replacement string
}

// rules is checked in order at every position before the single-character
// table. More specific patterns must come before simpler ones.
var rules = []Rule{
	{[]string{"e:", "eː"}, "ee"},
	{[]string{"i:", "iː"}, "ii"}, // OED & CED
	{[]string{"u:", "uː"}, "uu"}, // OED & CED
	{[]string{"eɪ"}, "ey"},
	{[]string{"aɪ", "ʌɪ"}, "ai"}, // IPA, OED
	{[]string{"ɔɪ"}, "oy"},
	{[]string{"æʊ"}, "aw"},
	{[]string{"aʊ"}, "ou"},
	{[]string{"oʊ", "əʊ"}, "ow"}, // IPA, OED & CED
	{[]string{"əʊ"}, "oh"},
	{[]string{"ui"}, "uy"},
	{[]string{
		"ɜr",         // IPA
		"ɜ:r", "ɜːr", // keeps "stirring" from becoming "sturring"
		"ɜ:", "ɜː", // CED
		"ɘ:", "ɘː", // OED
	}, "ur"},
	{[]string{
		"oʊr",        // IPA
		"ɔ:r", "ɔːr", // OED & CED
	}, "oor"},
	// SaypYu /ii/ is the i in pizza, so beer is /biir/ rather than /bir/.
	{[]string{"ɪər", "ɪə"}, "iir"},
	// OED writes "ər" both for "air" and for "father", so it has no rule here.
	{[]string{
		"ɛər", "εər", "eər", // IPA
		"εə", "ɛə", "eə", // CED
	}, "ayr"},
	{[]string{"ʊə"}, "ur"}, // CED & OED
	{[]string{"aɪər", "ʌɪə"}, "aiɘr"},
	{[]string{"aɪər", "aʊə"}, "ouɘr"},
	{[]string{"tʃ"}, "tsh"},
	{[]string{"dʒ", "ʤ"}, "j"},
	// TODO: "ju" -> "yu" would keep cube /kjuːb/ as /kyub/, but it needs
	// checking against the dictionaries first (and whether it should only
	// match /juː/).
}

// single maps one character to its SaypYu spelling. Characters missing
// here are dropped, which is how stress marks and length marks disappear.
var single = map[rune]string{
	'ō': "oh",
	'ā': "ay",
	'a': "a", 'æ': "a",
	'ɑ': "aa", 'ä': "aa",
	'e': "e", 'ε': "e", 'ɛ': "e",
	'ɪ': "i",
	'i': "ii",
	'o': "o", 'ɒ': "o",
	'ɔ': "aw",
	'ʊ': "u",
	'u': "uu",
	'y': "uy",
	'ə': "ɘ", 'ʌ': "ɘ", // schwa
	'ø': "ur", 'œ': "ur", // /ɘɘ/ in older SaypYu spellings
	'j': "y", 'ʎ': "y", 'ʝ': "y",
	'w': "w",
	'ʍ': "hw",
	'ɥ': "w",
	'b': "b",
	'd': "d",
	'f': "f",
	'g': "g", 'ɡ': "g",
	'h': "h",
	'k': "k",
	'x': "kh",
	'l': "l",
	'm': "m",
	'n': "n",
	'p': "p",
	'q': "q", // IPA q, not English q
	'r': "r", 'ɾ': "r", 'ɹ': "r",
	's': "s",
	't': "t",
	'v': "v",
	'z': "z",
	'θ': "th",
	'ð': "dh",
	'ʃ': "sh",
	'ʒ': "j",
	'ŋ': "ng",
	'(': "(",
	')': ")",
	' ': " ",
}

// maxPatternLen is the byte length of the longest rule pattern.
var maxPatternLen = func() int {
	n := 0
	for _, r := range rules {
		for _, p := range r.Patterns {
			if len(p) > n {
				n = len(p)
			}
		}
	}
	return n
}()

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Patterns:    append([]string(nil), r.Patterns...),
			Replacement: r.Replacement,
		}
	}
	return out
}

// Lookup returns the single-character spelling of r and whether r is known.
func Lookup(r rune) (string, bool) {
	s, ok := single[r]
	return s, ok
}

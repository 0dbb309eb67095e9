package internal

import "unicode"

// Version is the saypyu release version
const Version = "0.3.0"

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

// isAlphaNumeric checks if a rune is a letter or digit, IPA letters included
func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

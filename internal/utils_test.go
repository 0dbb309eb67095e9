package internal

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"crustacean", "crustacean"},
		{"ice cream", "ice_cream"},
		{"a/b\\c", "a_b_c"},
		{"ʃɪp", "ʃɪp"},
		{"well-known_word", "well-known_word"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

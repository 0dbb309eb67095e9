package batch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/saypyu/internal/saypyu"
)

// Entry is one line of a batch file
type Entry struct {
	Label string
	IPA   string
	// NeedsLookup indicates the IPA must be fetched from a phonetic source
	NeedsLookup bool
}

// ReadBatchFile reads entries from a file
// Supports formats:
// - IPA only: "krʌˈsteɪʃən"
// - With label: "crustacean = krʌˈsteɪʃən"
// - Word only: "crustacean =" (IPA will be looked up)
// Lines starting with '#' are comments.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseBatch(string(content)), nil
}

// ParseBatch parses batch file content
func ParseBatch(content string) []Entry {
	var entries []Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, "=") {
			entries = append(entries, Entry{IPA: line})
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		label := strings.TrimSpace(parts[0])
		ipa := strings.TrimSpace(parts[1])

		switch {
		case label != "" && ipa != "":
			entries = append(entries, Entry{Label: label, IPA: ipa})
		case label != "":
			// Format: "WORD =" - IPA must be looked up
			entries = append(entries, Entry{Label: label, NeedsLookup: true})
		case ipa != "":
			entries = append(entries, Entry{IPA: ipa})
		}
		// Ignore lines with both sides empty
	}

	return entries
}

// Result is a transliterated batch entry
type Result struct {
	Label  string
	IPA    string
	SaypYu string
}

// Convert transliterates every entry that has IPA. Entries still needing
// a lookup are skipped.
func Convert(entries []Entry) []Result {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if e.IPA == "" {
			continue
		}
		results = append(results, Result{
			Label:  e.Label,
			IPA:    e.IPA,
			SaypYu: saypyu.Transliterate(e.IPA),
		})
	}
	return results
}

// WriteResults writes one tab separated "label ipa saypyu" line per result
func WriteResults(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Label, r.IPA, r.SaypYu); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	return nil
}

package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/saypyu/internal/saypyu"
)

// Case is one IPA pronunciation and the SaypYu spelling it should produce.
type Case struct {
	Word     string
	IPA      string
	Expected string
	Line     int
}

// Fixture holds all cases read from a fixture file.
type Fixture struct {
	Cases []Case
	Lines int // non-comment lines, with or without cases
}

// Parse reads a fixture.
//
// Each line is: word ipa expected [ipa expected ...]
// Lines starting with '#' are comments. Tokens starting with '(' are
// annotations and skipped, and a token starting with '#' ends the line.
func Parse(r io.Reader) (*Fixture, error) {
	f := &Fixture{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		f.Lines++

		word := fields[0]
		for i := 1; i < len(fields); i++ {
			tok := fields[i]
			if strings.HasPrefix(tok, "(") {
				continue
			}
			if strings.HasPrefix(tok, "#") {
				break
			}

			i++
			if i >= len(fields) || strings.HasPrefix(fields[i], "#") {
				return nil, fmt.Errorf("line %d: IPA /%s/ for %q has no expected SaypYu", lineNum, tok, word)
			}

			f.Cases = append(f.Cases, Case{
				Word:     word,
				IPA:      tok,
				Expected: fields[i],
				Line:     lineNum,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	return f, nil
}

// Load is a convenience wrapper that opens a file path.
func Load(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Failure is a case whose transliteration differs from the expected value.
type Failure struct {
	Case
	Actual string
}

// Warning flags a suspicious fixture entry that still gets checked.
type Warning struct {
	Expected string
	Line     int
}

func (w Warning) String() string {
	return fmt.Sprintf("WARNING SaypYu /%s/ contains ə instead of ɘ! :%d", w.Expected, w.Line)
}

// Result summarises a fixture run.
type Result struct {
	Total    int // non-comment fixture lines
	Checked  int // individual cases checked
	Failures []Failure
	Warnings []Warning
}

// Passed reports whether every case matched.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// FailureRate is the percentage of failures relative to the checked lines.
func (r *Result) FailureRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(len(r.Failures)) / float64(r.Total) * 100
}

// Run transliterates every case and compares it byte for byte with the
// expected spelling.
func (f *Fixture) Run() *Result {
	return f.RunWith(saypyu.Transliterate)
}

// RunWith is Run with a custom conversion function.
func (f *Fixture) RunWith(convert func(string) string) *Result {
	res := &Result{Total: f.Lines}

	for _, c := range f.Cases {
		res.Checked++

		// expected values are written with ɘ, never the IPA schwa
		if strings.ContainsRune(c.Expected, 'ə') {
			res.Warnings = append(res.Warnings, Warning{Expected: c.Expected, Line: c.Line})
		}

		actual := convert(c.IPA)
		if actual != c.Expected {
			res.Failures = append(res.Failures, Failure{Case: c, Actual: actual})
		}
	}

	return res
}

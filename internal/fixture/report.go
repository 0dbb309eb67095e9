package fixture

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Report writes warnings, one aligned line per failure and a summary.
// It returns the number of failures.
func Report(w io.Writer, res *Result) int {
	for _, warn := range res.Warnings {
		fmt.Fprintln(w, warn)
	}

	if len(res.Failures) == 0 {
		fmt.Fprintf(w, "%3d / %3d tests passed\n", res.Total, res.Total)
		return 0
	}

	var maxWord, maxIPA, maxActual, maxExpected int
	for _, f := range res.Failures {
		maxWord = max(maxWord, runewidth.StringWidth(f.Word))
		maxIPA = max(maxIPA, runewidth.StringWidth(f.IPA))
		maxActual = max(maxActual, runewidth.StringWidth(f.Actual))
		maxExpected = max(maxExpected, runewidth.StringWidth(f.Expected))
	}

	for _, f := range res.Failures {
		fmt.Fprintf(w, "FAILED %s%s IPA /%s/%s=> /%s/%s(expected /%s/)%s:%d\n",
			f.Word, pad(maxWord, f.Word),
			f.IPA, pad(maxIPA+1, f.IPA),
			f.Actual, pad(maxActual+1, f.Actual),
			f.Expected, pad(maxExpected+1, f.Expected),
			f.Line)
	}

	fmt.Fprintf(w, "%3d / %3d tests failed (%.1f%%)\n", len(res.Failures), res.Total, res.FailureRate())
	return len(res.Failures)
}

// pad returns the spaces needed to widen s to width display columns.
func pad(width int, s string) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

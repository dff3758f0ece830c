package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/lib"
)

// Verify computes the digest of filePath and compares it with expected,
// ignoring case, then prints a report to the output stream.
// A file that cannot be digested is reported on the error stream and counts as
// a mismatch; callers cannot tell the two apart.
func (r *Runner) Verify(filePath, expected string) bool {
	actual, err := lib.ComputeDigest(filePath)
	if err != nil {
		r.errorf("%v", err)
		return false
	}

	expected = strings.ToLower(expected)
	match := actual == expected

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}

	result := "MISMATCH"
	if match {
		result = "MATCH"
	}
	fmt.Fprintf(r.Out, "File: %s\n", absPath)
	fmt.Fprintf(r.Out, "Expected: %s\n", expected)
	fmt.Fprintf(r.Out, "Actual: %s\n", actual)
	fmt.Fprintf(r.Out, "Result: %s\n", result)

	slog.Debug("verified file", "path", absPath, "match", match)
	return match
}

package commands

import (
	"fmt"

	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/lib"
)

// Calc prints the digest of a single file to the output stream. On failure
// only a diagnostic is written, so the output stream stays scriptable.
func (r *Runner) Calc(filePath string) bool {
	digest, err := lib.ComputeDigest(filePath)
	if err != nil {
		r.errorf("%v", err)
		return false
	}

	fmt.Fprintln(r.Out, digest)
	return true
}

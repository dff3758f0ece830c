// Package commands implements the mdcheck operations on top of lib.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFailed is returned to the CLI layer when an operation has already
// reported its failure and the process should only exit non-zero.
var ErrFailed = errors.New("operation failed")

// Runner carries the two streams every operation writes to: Out for primary
// results (digests, verification reports) and Err for diagnostics.
type Runner struct {
	Out io.Writer
	Err io.Writer
}

// NewRunner returns a Runner bound to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{Out: os.Stdout, Err: os.Stderr}
}

func (r *Runner) errorf(format string, args ...any) {
	fmt.Fprintf(r.Err, "Error: "+format+"\n", args...)
}

func (r *Runner) warnf(format string, args ...any) {
	fmt.Fprintf(r.Err, "Warning: "+format+"\n", args...)
}

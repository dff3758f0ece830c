package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/lib"
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/types"
)

// CheckOptions tunes manifest verification.
type CheckOptions struct {
	// BaseDir is the directory relative entry paths are resolved against.
	// Empty means the current working directory.
	BaseDir string
}

// Check re-verifies every entry of a manifest. Malformed lines and mismatches
// are reported and fail the run, but never stop it: every line is processed.
// It returns true only if every line parsed and every file matched.
func (r *Runner) Check(manifestPath string, opts CheckOptions) bool {
	file, err := os.Open(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: manifest %s", lib.ErrNotFound, manifestPath)
		} else {
			err = fmt.Errorf("%w: manifest %s: %w", lib.ErrReadFailure, manifestPath, err)
		}
		r.errorf("%v", err)
		return false
	}
	defer file.Close()

	if opts.BaseDir != "" {
		slog.Debug("resolving entries", "base", opts.BaseDir)
	}

	allPassed := true
	checked, failed := 0, 0
	scanErr := lib.ScanManifest(file, func(line types.Line, parseErr error) {
		if parseErr != nil {
			r.warnf("line %d: %v", line.Number, parseErr)
			allPassed = false
			failed++
			return
		}

		checked++
		if !r.Verify(resolveEntryPath(opts.BaseDir, line.Entry.Path), line.Entry.Digest) {
			allPassed = false
			failed++
		}
	})
	if scanErr != nil {
		r.errorf("failed to read manifest %s: %v", manifestPath, scanErr)
		return false
	}

	fmt.Fprintf(r.Err, "%d entries checked, %d failed\n", checked, failed)
	return allPassed
}

// resolveEntryPath turns a slash-separated manifest path into a native path
// anchored at baseDir. Absolute entry paths are kept as they are.
func resolveEntryPath(baseDir, entryPath string) string {
	native := filepath.FromSlash(entryPath)
	if filepath.IsAbs(native) || baseDir == "" {
		return native
	}
	return filepath.Join(baseDir, native)
}

package commands

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/lib"
	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/types"
)

// GenerateOptions tunes manifest generation.
type GenerateOptions struct {
	// Output is the manifest path. Empty selects lib.DefaultManifestPath.
	Output string
	// Excludes are extra gitignore-style patterns, applied on top of the
	// tree's own ignore file.
	Excludes []string
}

// Generate walks directory recursively and writes a manifest with one entry
// per file. Files that cannot be digested are reported and left out without
// failing the run. It returns false only when the directory is missing or the
// manifest cannot be written.
func (r *Runner) Generate(directory string, opts GenerateOptions) bool {
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		r.errorf("%v", fmt.Errorf("%w: directory %s", lib.ErrNotFound, directory))
		return false
	}

	output := opts.Output
	if output == "" {
		output = lib.DefaultManifestPath(directory)
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		absOutput = output
	}

	// WalkDir does not descend into a symlinked root, so walk its target.
	root, err := filepath.EvalSymlinks(directory)
	if err != nil {
		r.errorf("%v", fmt.Errorf("%w: directory %s: %w", lib.ErrNotFound, directory, err))
		return false
	}

	rawPatterns, err := lib.ReadIgnoreFile(root)
	if err != nil {
		r.warnf("ignoring unreadable %s in %s: %v", lib.IgnoreFilename, directory, err)
	}
	ignore := lib.NewIgnoreMatcher(root, append(rawPatterns, opts.Excludes...))
	if patterns := ignore.Patterns(); len(patterns) > 0 {
		slog.Debug("loaded ignore rules", "dir", root, "patterns", patterns)
	}

	count, err := r.writeManifest(root, output, ignore)
	if err != nil {
		r.errorf("%v", err)
		return false
	}

	fmt.Fprintf(r.Err, "Manifest written: %s (%d entries)\n", absOutput, count)
	return true
}

// writeManifest creates the manifest file and fills it from the walk. The file
// is closed before it returns, on every path.
func (r *Runner) writeManifest(directory, output string, ignore *lib.IgnoreMatcher) (count int, err error) {
	file, err := os.Create(output)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot open %s: %w", lib.ErrWriteFailure, output, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", lib.ErrWriteFailure, output, cerr)
		}
	}()

	// The manifest may be written inside the tree it describes; it must not
	// list itself.
	outputInfo, _ := file.Stat()

	mw := lib.NewManifestWriter(file)
	walkErr := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == directory {
				return err
			}
			r.warnf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == directory {
			return nil
		}

		relPath, err := filepath.Rel(directory, path)
		if err != nil {
			return err
		}
		slashed := filepath.ToSlash(relPath)

		if ignore.IsIgnored(slashed) {
			slog.Debug("ignored path", "path", slashed)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if outputInfo != nil {
			if fi, err := os.Stat(path); err == nil && os.SameFile(fi, outputInfo) {
				slog.Debug("skipping manifest output", "path", slashed)
				return nil
			}
		}

		digest, err := lib.ComputeDigest(path)
		if err != nil {
			r.warnf("skipping %v", err)
			return nil
		}
		return mw.Write(types.Entry{Digest: digest, Path: slashed})
	})
	if walkErr != nil {
		return mw.Count(), fmt.Errorf("failed to walk %s: %w", directory, walkErr)
	}

	if err := mw.Flush(); err != nil {
		return mw.Count(), err
	}
	return mw.Count(), nil
}

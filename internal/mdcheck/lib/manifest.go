package lib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/gingerrexayers/mdcheck-go/internal/mdcheck/types"
)

// binaryMarker prefixes the path token of every generated entry.
const binaryMarker = "*"

// FormatEntry renders an entry as a manifest line, without the trailing newline.
func FormatEntry(e types.Entry) string {
	return e.Digest + " " + binaryMarker + e.Path
}

// IsSkippable reports whether a manifest line carries no entry: blank lines and
// '#' comments.
func IsSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// ParseLine splits a manifest line on its first run of whitespace into a digest
// and a path. A leading binary marker on the path is dropped. Lines that do not
// yield exactly two tokens return an error matching ErrFormat.
func ParseLine(line string) (types.Entry, error) {
	trimmed := strings.TrimSpace(line)
	sep := strings.IndexFunc(trimmed, unicode.IsSpace)
	if sep < 0 {
		return types.Entry{}, fmt.Errorf("%w: %q", ErrFormat, snippet(trimmed))
	}

	digest := trimmed[:sep]
	path := strings.TrimLeftFunc(trimmed[sep:], unicode.IsSpace)
	path = strings.TrimPrefix(path, binaryMarker)
	if path == "" {
		return types.Entry{}, fmt.Errorf("%w: %q", ErrFormat, snippet(trimmed))
	}

	return types.Entry{Digest: digest, Path: path}, nil
}

// snippet shortens a line for use in diagnostics.
func snippet(line string) string {
	const maxLen = 80
	if len(line) <= maxLen {
		return line
	}
	return line[:maxLen] + "..."
}

// ScanManifest reads a manifest from r and calls fn for every line that is not
// blank or a comment. Lines that fail to parse are passed to fn with a non-nil
// error and an empty entry; scanning continues after them. Lines have no length
// limit. The returned error is only ever a read error from r.
func ScanManifest(r io.Reader, fn func(line types.Line, parseErr error)) error {
	reader := bufio.NewReader(r)

	lineNum := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("%w: %w", ErrReadFailure, err)
		}
		if err == io.EOF && text == "" {
			return nil
		}

		lineNum++
		if !IsSkippable(text) {
			entry, parseErr := ParseLine(text)
			fn(types.Line{Number: lineNum, Entry: entry}, parseErr)
		}
		if err == io.EOF {
			return nil
		}
	}
}

// ManifestWriter writes entries to an underlying writer, one per line.
type ManifestWriter struct {
	w     *bufio.Writer
	count int
}

// NewManifestWriter buffers writes to w. Flush must be called once all entries
// have been written.
func NewManifestWriter(w io.Writer) *ManifestWriter {
	return &ManifestWriter{w: bufio.NewWriter(w)}
}

// Write appends one entry line.
func (mw *ManifestWriter) Write(e types.Entry) error {
	if _, err := mw.w.WriteString(FormatEntry(e) + "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	mw.count++
	return nil
}

// Count returns the number of entries written so far.
func (mw *ManifestWriter) Count() int {
	return mw.count
}

// Flush writes any buffered data to the underlying writer.
func (mw *ManifestWriter) Flush() error {
	if err := mw.w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}

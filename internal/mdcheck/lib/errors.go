package lib

import "errors"

// Sentinel errors for the failure classes every operation reports. Callers
// wrap them with context and match with errors.Is.
var (
	// ErrNotFound means the target file or directory does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReadFailure covers I/O and permission errors while reading a file.
	ErrReadFailure = errors.New("read failure")
	// ErrWriteFailure covers errors opening or writing a manifest.
	ErrWriteFailure = errors.New("write failure")
	// ErrFormat means a manifest line does not parse into (digest, path).
	ErrFormat = errors.New("malformed manifest line")
)

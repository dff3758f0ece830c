// Package lib contains the core, reusable services for the mdcheck application.
package lib

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ComputeDigest calculates the MD5 digest of a file's contents by streaming it
// from disk in DefaultBlockSize blocks, so arbitrarily large files never have
// to fit in memory.
// The path must resolve to an existing regular file; anything else yields an
// error matching ErrNotFound. I/O errors, permission denial included, match
// ErrReadFailure.
func ComputeDigest(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filePath)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, filePath, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrNotFound, filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, filePath, err)
	}
	defer file.Close()

	digest, err := ComputeDigestFromReader(file, DefaultBlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailure, filePath, err)
	}
	return digest, nil
}

// ComputeDigestFromReader feeds r through an MD5 accumulator blockSize bytes at
// a time and returns the lowercase hex digest. A non-positive blockSize selects
// DefaultBlockSize.
func ComputeDigestFromReader(r io.Reader, blockSize int) (string, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	hasher := md5.New()
	buf := make([]byte, blockSize)
	// *os.File implements io.WriterTo, so io.CopyBuffer would ignore buf.
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

package lib

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
)

// --- Constants ---

// DefaultBlockSize is the number of bytes read per step when streaming a file
// through the digest function.
const DefaultBlockSize = 64 * 1024

// ManifestExtension is appended to a directory's base name to derive the
// default manifest file name.
const ManifestExtension = ".md5"

// IgnoreFilename is the name of the optional file, at the root of a generated
// tree, that holds gitignore-style exclusion patterns.
const IgnoreFilename = ".mdcheckignore"

// DefaultManifestPath returns the manifest path used when the caller does not
// name one: the directory's base name plus ManifestExtension, relative to the
// current working directory. "." and ".." are resolved to the name of the
// directory they refer to; the filesystem root is named "root".
func DefaultManifestPath(directory string) string {
	base := filepath.Base(strings.TrimRight(directory, `/\`))
	if base == "." || base == ".." {
		if abs, err := filepath.Abs(directory); err == nil {
			base = filepath.Base(abs)
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "root"
	}
	return base + ManifestExtension
}

// IgnoreMatcher decides which paths under a tree are left out of a manifest.
// A zero-pattern matcher ignores nothing.
type IgnoreMatcher struct {
	baseDir  string
	matcher  gitignore.GitIgnore
	patterns []string
}

// canonicalDir resolves symlinks in dir and makes it absolute, falling back to
// dir itself when either step fails.
func canonicalDir(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ReadIgnoreFile returns the raw lines of baseDir/IgnoreFilename. A missing
// file yields no patterns and no error.
func ReadIgnoreFile(baseDir string) ([]string, error) {
	content, err := os.ReadFile(filepath.Join(canonicalDir(baseDir), IgnoreFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return strings.Split(string(content), "\n"), nil
}

// NewIgnoreMatcher compiles gitignore-style patterns anchored at baseDir.
func NewIgnoreMatcher(baseDir string, rawPatterns []string) *IgnoreMatcher {
	base := canonicalDir(baseDir)
	patterns := normalizePatterns(rawPatterns)
	m := &IgnoreMatcher{baseDir: base, patterns: patterns}
	if len(patterns) == 0 {
		return m
	}

	m.matcher = gitignore.New(
		strings.NewReader(strings.Join(patterns, "\n")),
		base,
		// Keep parsing past bad patterns.
		func(err gitignore.Error) bool { return true },
	)
	return m
}

// Patterns returns the normalized patterns the matcher was compiled from.
func (m *IgnoreMatcher) Patterns() []string {
	return m.patterns
}

// IsIgnored reports whether relPath, given relative to the matcher's base
// directory, is excluded.
func (m *IgnoreMatcher) IsIgnored(relPath string) bool {
	if m == nil || m.matcher == nil {
		return false
	}

	match := m.matcher.Match(filepath.Join(m.baseDir, filepath.FromSlash(relPath)))
	if match == nil {
		return false
	}
	return match.Ignore()
}

// normalizePatterns strips comments and blank lines, converts Windows
// separators, and expands bare directory patterns ("build/") to globs.
func normalizePatterns(raw []string) []string {
	var out []string
	for _, p := range raw {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		trimmed = strings.ReplaceAll(trimmed, "\\", "/")
		if strings.HasSuffix(trimmed, "/") && !strings.HasSuffix(trimmed, "**/") {
			trimmed += "**"
		}
		out = append(out, trimmed)
	}
	return out
}

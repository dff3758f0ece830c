package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestPath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	testCases := []struct {
		directory string
		want      string
	}{
		{"d", "d.md5"},
		{"d/", "d.md5"},
		{"d///", "d.md5"},
		{"/data/photos/2024/", "2024.md5"},
		{"nested/dir", "dir.md5"},
		{".", filepath.Base(cwd) + ".md5"},
		{"/", "root.md5"},
	}

	for _, tc := range testCases {
		t.Run(tc.directory, func(t *testing.T) {
			assert.Equal(t, tc.want, DefaultManifestPath(tc.directory))
		})
	}
}

// setupIgnoreTest creates a canonical temp dir, optionally with an ignore file.
// The matcher resolves symlinks in its base dir (macOS /var -> /private/var),
// so the test works from the canonical path too.
func setupIgnoreTest(t *testing.T, ignoreContent string) string {
	t.Helper()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err, "Failed to resolve symlinks for temp dir")

	if ignoreContent != "" {
		err = os.WriteFile(filepath.Join(tmpDir, IgnoreFilename), []byte(ignoreContent), 0644)
		require.NoError(t, err, "Failed to create ignore file")
	}
	return tmpDir
}

func TestIsIgnored(t *testing.T) {
	testCases := []struct {
		name            string
		ignoreContent   string
		extra           []string
		pathToCheck     string
		shouldBeIgnored bool
	}{
		{
			name:            "No rules ignore nothing",
			pathToCheck:     "anything.txt",
			shouldBeIgnored: false,
		},
		{
			name:            "Specific file match",
			ignoreContent:   "secret.txt",
			pathToCheck:     "secret.txt",
			shouldBeIgnored: true,
		},
		{
			name:            "Glob pattern in subdir",
			ignoreContent:   "*.log",
			pathToCheck:     "logs/system.log",
			shouldBeIgnored: true,
		},
		{
			name:            "Directory pattern match (build/)",
			ignoreContent:   "build/",
			pathToCheck:     "build/asset.js",
			shouldBeIgnored: true,
		},
		{
			name:            "Negation pattern (!)",
			ignoreContent:   "*.log\n!important.log",
			pathToCheck:     "important.log",
			shouldBeIgnored: false,
		},
		{
			name:            "Comment and empty lines are skipped",
			ignoreContent:   "# This is a comment\n\n  \n\n*.tmp",
			pathToCheck:     "some.tmp",
			shouldBeIgnored: true,
		},
		{
			name:            "Path not in ignore list",
			ignoreContent:   "*.log",
			pathToCheck:     "src/main.go",
			shouldBeIgnored: false,
		},
		{
			name:            "Extra pattern without an ignore file",
			extra:           []string{"*.bak"},
			pathToCheck:     "notes.bak",
			shouldBeIgnored: true,
		},
		{
			name:            "Extra pattern with Windows-style separators",
			extra:           []string{"dist\\main.js"},
			pathToCheck:     "dist/main.js",
			shouldBeIgnored: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			testDir := setupIgnoreTest(t, tc.ignoreContent)
			fullPath := filepath.Join(testDir, filepath.FromSlash(tc.pathToCheck))
			require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
			require.NoError(t, os.WriteFile(fullPath, []byte("test"), 0644))

			filePatterns, err := ReadIgnoreFile(testDir)
			require.NoError(t, err)
			matcher := NewIgnoreMatcher(testDir, append(filePatterns, tc.extra...))

			// Act
			isIgnored := matcher.IsIgnored(tc.pathToCheck)

			// Assert
			assert.Equal(t, tc.shouldBeIgnored, isIgnored, "Path '%s' with ignore content:\n---\n%s\n---", tc.pathToCheck, tc.ignoreContent)
		})
	}
}

func TestNewIgnoreMatcherNormalizesPatterns(t *testing.T) {
	testDir := setupIgnoreTest(t, "# comment\n\nbuild/\n  *.log  \n")

	filePatterns, err := ReadIgnoreFile(testDir)
	require.NoError(t, err)
	matcher := NewIgnoreMatcher(testDir, append(filePatterns, "out\\"))

	assert.Equal(t, []string{"build/**", "*.log", "out/**"}, matcher.Patterns())
}

func TestNilIgnoreMatcher(t *testing.T) {
	var matcher *IgnoreMatcher
	assert.False(t, matcher.IsIgnored("a.txt"))
}

func TestReadIgnoreFile(t *testing.T) {
	t.Run("missing file yields no patterns", func(t *testing.T) {
		patterns, err := ReadIgnoreFile(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, patterns)
	})

	t.Run("unreadable ignore file is an error", func(t *testing.T) {
		testDir := setupIgnoreTest(t, "")
		require.NoError(t, os.Mkdir(filepath.Join(testDir, IgnoreFilename), 0755))

		_, err := ReadIgnoreFile(testDir)
		assert.Error(t, err)
	})
}

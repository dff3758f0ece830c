package types

// Entry is one line of a manifest: the digest of a file and its path relative
// to the tree the manifest was generated from. Path is slash-separated.
type Entry struct {
	Digest string
	Path   string
}

// Line is a parsed, non-skipped manifest line together with its 1-based
// position in the file, so diagnostics can point back at it.
type Line struct {
	Number int
	Entry  Entry
}

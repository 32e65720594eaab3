package types

// SkipReason explains why a file was left untouched.
type SkipReason string

const (
	SkipNoExtension       SkipReason = "no-extension"
	SkipExtensionMismatch SkipReason = "extension-mismatch"
	SkipUnsplittable      SkipReason = "unsplittable" // separator absent from the base name
	SkipEmptyPart         SkipReason = "empty-part"   // one side is blank after trimming
)

// Silent reports whether a skip is expected noise that the console should not print.
func (r SkipReason) Silent() bool {
	return r == SkipNoExtension || r == SkipExtensionMismatch
}

type (
	// Rename records a performed rename.
	Rename struct {
		OldPath string `json:"oldPath"`
		NewPath string `json:"newPath"`
	}

	// Skip records a file that was considered but not renamed.
	Skip struct {
		Path   string     `json:"path"`
		Reason SkipReason `json:"reason"`
	}
)

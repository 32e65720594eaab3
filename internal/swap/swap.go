// Package swap implements the name surgery behind a rename: splitting a base
// name at the last separator, swapping the two halves and joining them again.
package swap

import (
	"strings"

	"github.com/taigrr/batch-renamer/internal/types"
)

// Result is the outcome of splitting a base name. It is either Matched or
// NotApplicable.
type Result interface {
	isResult()
}

// Matched holds the two pieces of a base name in their original order.
type Matched struct {
	Head string
	Tail string
}

// NotApplicable means the base name cannot be swapped.
type NotApplicable struct {
	Reason types.SkipReason
}

func (Matched) isResult()       {}
func (NotApplicable) isResult() {}

// SplitExt splits a file name into its base name and the extension after the
// final dot. A name whose only dot is the leading one (".hidden") has no
// extension.
func SplitExt(name string) (stem, ext string, ok bool) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// Split partitions stem at the last occurrence of sep and trims both pieces.
func Split(stem, sep string) Result {
	if sep == "" {
		return NotApplicable{Reason: types.SkipUnsplittable}
	}

	i := strings.LastIndex(stem, sep)
	if i == -1 {
		return NotApplicable{Reason: types.SkipUnsplittable}
	}

	head := strings.TrimSpace(stem[:i])
	tail := strings.TrimSpace(stem[i+len(sep):])
	if head == "" || tail == "" {
		return NotApplicable{Reason: types.SkipEmptyPart}
	}

	return Matched{Head: head, Tail: tail}
}

// Join builds the swapped base name: tail, padded separator, head.
func Join(m Matched, join, padding string) string {
	return m.Tail + padding + join + padding + m.Head
}

// NewName returns the swapped file name for name, keeping its extension.
// The returned Result is Matched when a new name was produced.
func NewName(name, sep, join, padding string) (string, Result) {
	stem, ext, ok := SplitExt(name)
	if !ok {
		return "", NotApplicable{Reason: types.SkipNoExtension}
	}

	res := Split(stem, sep)
	m, ok := res.(Matched)
	if !ok {
		return "", res
	}

	return Join(m, join, padding) + "." + ext, m
}

// Unescape strips backslash escape markers from a separator given on the
// command line, so that "\-" can be passed where "-" would look like a flag.
func Unescape(sep string) string {
	return strings.ReplaceAll(sep, `\`, "")
}

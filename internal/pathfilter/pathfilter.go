// Package pathfilter decides which directory entries a rename run considers.
package pathfilter

import (
	"regexp"
	"slices"
	"strings"

	"github.com/taigrr/batch-renamer/internal/types"
)

// PathFilter filters ignored paths and file extensions.
type PathFilter struct {
	ignoredPatterns   []*regexp.Regexp
	allowedExtensions []string
}

// New creates a new PathFilter with the given configuration. A nil config
// ignores nothing and allows no extension.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{}
	if config == nil {
		return pf
	}

	for _, pattern := range config.IgnoredPatterns {
		if re, err := globToRegexp(pattern); err == nil {
			pf.ignoredPatterns = append(pf.ignoredPatterns, re)
		}
	}
	pf.allowedExtensions = slices.Clone(config.AllowedExtensions)

	return pf
}

// globToRegexp converts a glob pattern to an anchored regex.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	return regexp.Compile("^" + regexPattern + "$")
}

// IsIgnored checks if a path relative to the run's root matches an ignore pattern.
func (pf *PathFilter) IsIgnored(path string) bool {
	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	for _, re := range pf.ignoredPatterns {
		if re.MatchString(normalizedPath) {
			return true
		}
	}
	return false
}

// AllowsExtension reports whether ext (without the leading dot) is in the
// allowed set. Comparison is exact and case-sensitive.
func (pf *PathFilter) AllowsExtension(ext string) bool {
	return slices.Contains(pf.allowedExtensions, ext)
}

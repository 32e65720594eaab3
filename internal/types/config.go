// Package types defines the data structures shared across the renamer.
package types

type (
	// RenameConfig contains the validated settings for a single rename run.
	RenameConfig struct {
		Directory      string   `json:"directory"`
		Extensions     []string `json:"extensions"`
		SplitSeparator string   `json:"splitSeparator"`
		JoinSeparator  string   `json:"joinSeparator"`
		Padding        string   `json:"padding,omitempty"`
		Recursive      bool     `json:"recursive,omitempty"`
		Ignore         []string `json:"ignore,omitempty"` // globs relative to Directory
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns   []string `json:"ignoredPatterns"`
		AllowedExtensions []string `json:"allowedExtensions"`
	}
)

// Package config turns command line and config file options into a validated
// rename configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/taigrr/batch-renamer/internal/swap"
	"github.com/taigrr/batch-renamer/internal/types"
	"gopkg.in/yaml.v3"
)

// ReservedSeparator is the value delimiter for list options and cannot be
// used as a separator.
const ReservedSeparator = ","

// Options holds raw, unvalidated settings.
type Options struct {
	Directory  string   `yaml:"directory"`
	Extensions []string `yaml:"extensions"`
	Separator  []string `yaml:"separator"` // split separator, then optional join separator
	Padding    string   `yaml:"padding"`
	Recursive  bool     `yaml:"recursive"`
	Ignore     []string `yaml:"ignore"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Directory:  ".",
		Extensions: []string{"mp3"},
		Separator:  []string{"-"},
	}
}

// LoadFile overlays the YAML file at path onto opts. Keys missing from the
// file keep their current values; unknown keys are an error.
func LoadFile(path string, opts *Options) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("failed to read config file: %s - %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config file: %s - %w", path, err)
	}

	return nil
}

// Resolve validates opts and builds the rename configuration.
func Resolve(opts Options) (types.RenameConfig, error) {
	if strings.TrimSpace(opts.Directory) == "" {
		return types.RenameConfig{}, errors.New("directory cannot be empty")
	}

	if len(opts.Extensions) == 0 {
		return types.RenameConfig{}, errors.New("at least one extension is required")
	}
	for _, ext := range opts.Extensions {
		if ext == "" {
			return types.RenameConfig{}, errors.New("extensions cannot be empty")
		}
	}

	split, join, err := ParseSeparators(opts.Separator)
	if err != nil {
		return types.RenameConfig{}, err
	}

	return types.RenameConfig{
		Directory:      opts.Directory,
		Extensions:     opts.Extensions,
		SplitSeparator: split,
		JoinSeparator:  join,
		Padding:        opts.Padding,
		Recursive:      opts.Recursive,
		Ignore:         opts.Ignore,
	}, nil
}

// ParseSeparators returns the split and join separators from one or two
// values. Escape markers are stripped from the split separator only; the join
// separator is used as given and defaults to the split separator.
func ParseSeparators(values []string) (split, join string, err error) {
	if len(values) == 0 || len(values) > 2 {
		return "", "", fmt.Errorf("expected one or two separators, got %d", len(values))
	}

	parsed := make([]string, len(values))
	for i, v := range values {
		if strings.Contains(v, ReservedSeparator) {
			return "", "", fmt.Errorf("%q is not allowed as a separator", ReservedSeparator)
		}
		parsed[i] = v
		if i == 0 {
			parsed[i] = swap.Unescape(v)
		}
		if parsed[i] == "" {
			return "", "", fmt.Errorf("separator cannot be empty (%q is not allowed as a separator)", ReservedSeparator)
		}
	}

	split = parsed[0]
	join = split
	if len(parsed) == 2 {
		join = parsed[1]
	}
	return split, join, nil
}

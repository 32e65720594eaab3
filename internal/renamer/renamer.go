// Package renamer walks a directory tree and swaps the two halves of every
// matching file name.
package renamer

import (
	"path/filepath"

	"github.com/taigrr/batch-renamer/internal/filesystem"
	"github.com/taigrr/batch-renamer/internal/pathfilter"
	"github.com/taigrr/batch-renamer/internal/swap"
	"github.com/taigrr/batch-renamer/internal/types"
)

// Notifier receives one notice per rename and per skip.
type Notifier interface {
	Renamed(oldPath, newPath string)
	Skipped(path string, reason types.SkipReason)
}

// Service performs rename runs against a filesystem.
type Service struct {
	fileSystem *filesystem.Service
}

// New creates a new Service. A nil fs uses the operating system.
func New(fs *filesystem.Service) *Service {
	if fs == nil {
		fs = filesystem.New(nil)
	}
	return &Service{fileSystem: fs}
}

// RenameTree renames every matching file under cfg.Directory and returns the
// number of files renamed. The first listing or rename failure aborts the run;
// renames already performed are kept.
func (s *Service) RenameTree(cfg types.RenameConfig, n Notifier) (int, error) {
	if n == nil {
		n = discard{}
	}
	w := walker{
		fs:  s.fileSystem,
		cfg: cfg,
		filter: pathfilter.New(&types.PathFilterConfig{
			IgnoredPatterns:   cfg.Ignore,
			AllowedExtensions: cfg.Extensions,
		}),
		notifier: n,
	}
	return w.walk(cfg.Directory)
}

type walker struct {
	fs       *filesystem.Service
	cfg      types.RenameConfig
	filter   *pathfilter.PathFilter
	notifier Notifier
}

func (w *walker) walk(dir string) (int, error) {
	entries, err := w.fs.ListDirectory(dir)
	if err != nil {
		return 0, err
	}

	renamed := 0
	for _, entry := range entries {
		if w.ignored(entry.Path) {
			continue
		}

		if entry.IsDir {
			if !w.cfg.Recursive {
				continue
			}
			count, err := w.walk(entry.Path)
			renamed += count
			if err != nil {
				return renamed, err
			}
			continue
		}

		ok, err := w.renameFile(entry)
		if err != nil {
			return renamed, err
		}
		if ok {
			renamed++
		}
	}

	return renamed, nil
}

func (w *walker) renameFile(entry filesystem.Entry) (bool, error) {
	_, ext, ok := swap.SplitExt(entry.Name)
	if !ok {
		w.notifier.Skipped(entry.Path, types.SkipNoExtension)
		return false, nil
	}
	if !w.filter.AllowsExtension(ext) {
		w.notifier.Skipped(entry.Path, types.SkipExtensionMismatch)
		return false, nil
	}

	newName, res := swap.NewName(entry.Name, w.cfg.SplitSeparator, w.cfg.JoinSeparator, w.cfg.Padding)
	if na, ok := res.(swap.NotApplicable); ok {
		w.notifier.Skipped(entry.Path, na.Reason)
		return false, nil
	}

	newPath := filepath.Join(filepath.Dir(entry.Path), newName)
	w.notifier.Renamed(entry.Path, newPath)
	if err := w.fs.Rename(entry.Path, newPath); err != nil {
		return false, err
	}

	return true, nil
}

// ignored matches ignore patterns against the path relative to the run's root.
func (w *walker) ignored(path string) bool {
	if len(w.cfg.Ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.cfg.Directory, path)
	if err != nil {
		return false
	}
	return w.filter.IsIgnored(filepath.ToSlash(rel))
}

type discard struct{}

func (discard) Renamed(string, string)           {}
func (discard) Skipped(string, types.SkipReason) {}

// Package filesystem provides the directory listing and rename primitives a
// rename run is built on.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Entry is a single directory entry discovered during traversal.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// Service provides file system operations on top of an afero.Fs.
type Service struct {
	fs afero.Fs
}

// New creates a new Service. A nil fs uses the operating system.
func New(fsys afero.Fs) *Service {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Service{fs: fsys}
}

// ListDirectory lists the entries of dir sorted by name.
func (s *Service) ListDirectory(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, &DirectoryAccessError{Path: dir, Err: err}
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		isDir := info.IsDir()
		// ReadDir does not follow links; a link to a directory is a directory.
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, err := s.fs.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}
		entries = append(entries, Entry{
			Path:  path,
			Name:  info.Name(),
			IsDir: isDir,
		})
	}

	return entries, nil
}

// Rename renames oldPath to newPath.
func (s *Service) Rename(oldPath, newPath string) error {
	if err := s.fs.Rename(oldPath, newPath); err != nil {
		return &RenameError{OldPath: oldPath, NewPath: newPath, Err: err}
	}
	return nil
}

// DirectoryAccessError is returned when a directory cannot be listed.
type DirectoryAccessError struct {
	Path string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("directory not found: %s", e.Path)
	}
	if errors.Is(e.Err, fs.ErrPermission) {
		return fmt.Sprintf("permission denied: %s", e.Path)
	}
	return fmt.Sprintf("failed to list directory: %s - %v", e.Path, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// RenameError is returned when a single file rename fails.
type RenameError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *RenameError) Error() string {
	if errors.Is(e.Err, fs.ErrPermission) {
		return fmt.Sprintf("permission denied: cannot rename %s to %s", e.OldPath, e.NewPath)
	}
	return fmt.Sprintf("failed to rename %s to %s: %v", e.OldPath, e.NewPath, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

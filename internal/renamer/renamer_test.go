package renamer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/taigrr/batch-renamer/internal/filesystem"
	"github.com/taigrr/batch-renamer/internal/notice"
	"github.com/taigrr/batch-renamer/internal/types"
)

func setupTestTree(t *testing.T, fsys afero.Fs, files ...string) {
	t.Helper()
	for _, name := range files {
		if err := fsys.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", name, err)
		}
		if err := afero.WriteFile(fsys, name, []byte(name), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

func defaultConfig() types.RenameConfig {
	return types.RenameConfig{
		Directory:      "/music",
		Extensions:     []string{"mp3"},
		SplitSeparator: "-",
		JoinSeparator:  "-",
	}
}

func assertExists(t *testing.T, fsys afero.Fs, path string, want bool) {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		t.Fatalf("Exists(%s) error = %v", path, err)
	}
	if ok != want {
		t.Errorf("Exists(%s) = %v, want %v", path, ok, want)
	}
}

func TestService_RenameTree_Transform(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		split   string
		join    string
		padding string
		want    string
	}{
		{"swap", "song-title.mp3", "-", "-", "", "title-song.mp3"},
		{"padding", "song-title.mp3", "-", "-", " ", "title - song.mp3"},
		{"distinct join", "song-title.mp3", "-", ".", "", "title.song.mp3"},
		{"last occurrence", "a-b-c.mp3", "-", "-", "", "c-a-b.mp3"},
		{"trimmed pieces", "Artist - Track.mp3", "-", "-", " ", "Track - Artist.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFs := afero.NewMemMapFs()
			setupTestTree(t, memFs, "/music/"+tt.file)
			svc := New(filesystem.New(memFs))

			cfg := defaultConfig()
			cfg.SplitSeparator = tt.split
			cfg.JoinSeparator = tt.join
			cfg.Padding = tt.padding

			var c notice.Collector
			count, err := svc.RenameTree(cfg, &c)
			if err != nil {
				t.Fatalf("RenameTree() error = %v", err)
			}
			if count != 1 {
				t.Errorf("RenameTree() = %d, want 1", count)
			}

			assertExists(t, memFs, "/music/"+tt.file, false)
			assertExists(t, memFs, "/music/"+tt.want, true)

			wantRename := types.Rename{OldPath: "/music/" + tt.file, NewPath: "/music/" + tt.want}
			if len(c.Renames) != 1 || c.Renames[0] != wantRename {
				t.Errorf("Renames = %+v, want [%+v]", c.Renames, wantRename)
			}
		})
	}
}

func TestService_RenameTree_Skips(t *testing.T) {
	memFs := afero.NewMemMapFs()
	setupTestTree(t, memFs,
		"/music/report.txt",
		"/music/a.MP3",
		"/music/track.mp3",
		"/music/track-.mp3",
		"/music/README",
	)
	svc := New(filesystem.New(memFs))

	var c notice.Collector
	count, err := svc.RenameTree(defaultConfig(), &c)
	if err != nil {
		t.Fatalf("RenameTree() error = %v", err)
	}
	if count != 0 {
		t.Errorf("RenameTree() = %d, want 0", count)
	}
	if len(c.Renames) != 0 {
		t.Errorf("Renames = %+v, want none", c.Renames)
	}

	want := map[string]types.SkipReason{
		"/music/report.txt": types.SkipExtensionMismatch,
		"/music/a.MP3":      types.SkipExtensionMismatch,
		"/music/track.mp3":  types.SkipUnsplittable,
		"/music/track-.mp3": types.SkipEmptyPart,
		"/music/README":     types.SkipNoExtension,
	}
	if len(c.Skips) != len(want) {
		t.Fatalf("Skips = %+v, want %d entries", c.Skips, len(want))
	}
	for _, skip := range c.Skips {
		if want[skip.Path] != skip.Reason {
			t.Errorf("skip %s reason = %q, want %q", skip.Path, skip.Reason, want[skip.Path])
		}
		assertExists(t, memFs, skip.Path, true)
	}
}

func TestService_RenameTree_Recursion(t *testing.T) {
	files := []string{
		"/music/a-b.mp3",
		"/music/album/c-d.mp3",
		"/music/album/disc2/e-f.mp3",
		"/music/album/disc2/g-h.mp3",
	}

	t.Run("non-recursive does not visit subdirectories", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		setupTestTree(t, memFs, files...)
		svc := New(filesystem.New(memFs))

		var c notice.Collector
		count, err := svc.RenameTree(defaultConfig(), &c)
		if err != nil {
			t.Fatalf("RenameTree() error = %v", err)
		}
		if count != 1 {
			t.Errorf("RenameTree() = %d, want 1", count)
		}
		for _, skip := range c.Skips {
			t.Errorf("unexpected visit of %s", skip.Path)
		}
		assertExists(t, memFs, "/music/b-a.mp3", true)
		assertExists(t, memFs, "/music/album/c-d.mp3", true)
		assertExists(t, memFs, "/music/album/disc2/e-f.mp3", true)
	})

	t.Run("recursive aggregates nested counts", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		setupTestTree(t, memFs, files...)
		svc := New(filesystem.New(memFs))

		cfg := defaultConfig()
		cfg.Recursive = true
		count, err := svc.RenameTree(cfg, nil)
		if err != nil {
			t.Fatalf("RenameTree() error = %v", err)
		}
		if count != 4 {
			t.Errorf("RenameTree() = %d, want 4", count)
		}
		for _, path := range []string{
			"/music/b-a.mp3",
			"/music/album/d-c.mp3",
			"/music/album/disc2/f-e.mp3",
			"/music/album/disc2/h-g.mp3",
		} {
			assertExists(t, memFs, path, true)
		}
	})

	t.Run("directories are never renamed", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		setupTestTree(t, memFs, "/music/live-set.mp3/x-y.mp3")
		svc := New(filesystem.New(memFs))

		cfg := defaultConfig()
		cfg.Recursive = true
		count, err := svc.RenameTree(cfg, nil)
		if err != nil {
			t.Fatalf("RenameTree() error = %v", err)
		}
		if count != 1 {
			t.Errorf("RenameTree() = %d, want 1", count)
		}
		assertExists(t, memFs, "/music/live-set.mp3/y-x.mp3", true)
	})
}

func TestService_RenameTree_SwapTwiceRestores(t *testing.T) {
	memFs := afero.NewMemMapFs()
	setupTestTree(t, memFs, "/music/song-title.mp3", "/music/Artist-Track.mp3")
	svc := New(filesystem.New(memFs))

	for i := range 2 {
		if _, err := svc.RenameTree(defaultConfig(), nil); err != nil {
			t.Fatalf("RenameTree() pass %d error = %v", i+1, err)
		}
	}

	assertExists(t, memFs, "/music/song-title.mp3", true)
	assertExists(t, memFs, "/music/Artist-Track.mp3", true)
}

func TestService_RenameTree_Ignore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	setupTestTree(t, memFs,
		"/music/a-b.mp3",
		"/music/c-d.mp3",
		"/music/drafts/e-f.mp3",
	)
	svc := New(filesystem.New(memFs))

	cfg := defaultConfig()
	cfg.Recursive = true
	cfg.Ignore = []string{"c-d.mp3", "drafts"}

	count, err := svc.RenameTree(cfg, nil)
	if err != nil {
		t.Fatalf("RenameTree() error = %v", err)
	}
	if count != 1 {
		t.Errorf("RenameTree() = %d, want 1", count)
	}
	assertExists(t, memFs, "/music/b-a.mp3", true)
	assertExists(t, memFs, "/music/c-d.mp3", true)
	assertExists(t, memFs, "/music/drafts/e-f.mp3", true)
}

// faultyFs fails Open or Rename for one path.
type faultyFs struct {
	afero.Fs
	failOpen   string
	failRename string
}

func (f faultyFs) Open(name string) (afero.File, error) {
	if name == f.failOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.Open(name)
}

func (f faultyFs) Rename(oldname, newname string) error {
	if oldname == f.failRename {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: fs.ErrPermission}
	}
	return f.Fs.Rename(oldname, newname)
}

func TestService_RenameTree_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		svc := New(filesystem.New(afero.NewMemMapFs()))

		count, err := svc.RenameTree(defaultConfig(), nil)
		if count != 0 {
			t.Errorf("RenameTree() = %d, want 0", count)
		}
		var accessErr *filesystem.DirectoryAccessError
		if !errors.As(err, &accessErr) {
			t.Fatalf("error = %v, want *DirectoryAccessError", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
		}
	})

	t.Run("rename failure aborts the run", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		setupTestTree(t, memFs, "/music/a-b.mp3", "/music/c-d.mp3", "/music/e-f.mp3")
		svc := New(filesystem.New(faultyFs{Fs: memFs, failRename: "/music/c-d.mp3"}))

		_, err := svc.RenameTree(defaultConfig(), nil)
		var renameErr *filesystem.RenameError
		if !errors.As(err, &renameErr) {
			t.Fatalf("error = %v, want *RenameError", err)
		}
		if renameErr.OldPath != "/music/c-d.mp3" {
			t.Errorf("OldPath = %q, want /music/c-d.mp3", renameErr.OldPath)
		}

		// Earlier renames are kept, later entries are never reached.
		assertExists(t, memFs, "/music/b-a.mp3", true)
		assertExists(t, memFs, "/music/c-d.mp3", true)
		assertExists(t, memFs, "/music/e-f.mp3", true)
	})

	t.Run("unreadable subdirectory aborts siblings", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		setupTestTree(t, memFs, "/music/a/a-b.mp3", "/music/b/c-d.mp3", "/music/c/e-f.mp3")
		svc := New(filesystem.New(faultyFs{Fs: memFs, failOpen: "/music/b"}))

		cfg := defaultConfig()
		cfg.Recursive = true
		_, err := svc.RenameTree(cfg, nil)

		var accessErr *filesystem.DirectoryAccessError
		if !errors.As(err, &accessErr) {
			t.Fatalf("error = %v, want *DirectoryAccessError", err)
		}
		if accessErr.Path != "/music/b" {
			t.Errorf("Path = %q, want /music/b", accessErr.Path)
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
		}

		assertExists(t, memFs, "/music/a/b-a.mp3", true)
		assertExists(t, memFs, "/music/c/e-f.mp3", true)
	})
}

func TestService_RenameTree_FollowsDirectoryLinks(t *testing.T) {
	root := t.TempDir()
	album := t.TempDir()
	live := t.TempDir()
	osFs := afero.NewOsFs()
	setupTestTree(t, osFs, filepath.Join(album, "a-b.mp3"), filepath.Join(live, "c-d.mp3"))
	if err := os.Symlink(album, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	// A linked directory whose name looks like a matching file.
	if err := os.Symlink(live, filepath.Join(root, "x-y.mp3")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	svc := New(filesystem.New(osFs))

	t.Run("non-recursive leaves linked directories alone", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Directory = root

		var c notice.Collector
		count, err := svc.RenameTree(cfg, &c)
		if err != nil {
			t.Fatalf("RenameTree() error = %v", err)
		}
		if count != 0 {
			t.Errorf("RenameTree() = %d, want 0", count)
		}
		if len(c.Renames) != 0 || len(c.Skips) != 0 {
			t.Errorf("Renames = %+v, Skips = %+v, want none", c.Renames, c.Skips)
		}
		assertExists(t, osFs, filepath.Join(root, "x-y.mp3"), true)
	})

	t.Run("recursive descends into linked directories", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Directory = root
		cfg.Recursive = true

		var c notice.Collector
		count, err := svc.RenameTree(cfg, &c)
		if err != nil {
			t.Fatalf("RenameTree() error = %v", err)
		}
		if count != 2 {
			t.Errorf("RenameTree() = %d, want 2", count)
		}
		for _, skip := range c.Skips {
			t.Errorf("unexpected skip %+v", skip)
		}
		assertExists(t, osFs, filepath.Join(root, "x-y.mp3"), true)
		assertExists(t, osFs, filepath.Join(album, "b-a.mp3"), true)
		assertExists(t, osFs, filepath.Join(live, "d-c.mp3"), true)
	})
}

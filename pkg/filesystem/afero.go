package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/devw-tools/devw/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS on top of an afero.Fs.
type aferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

// NewOS returns the real filesystem.
func NewOS() types.FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem, mostly for tests.
func NewMemory() types.FS {
	return New(afero.NewMemMapFs())
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// WriteFile writes data to a temporary file next to name and renames it into
// place, so readers never see a half-written document.
func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	tmp, err := afero.TempFile(a.fs, filepath.Dir(name), "."+filepath.Base(name)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = a.fs.Chmod(tmpName, perm)
	}
	if err == nil {
		err = a.fs.Rename(tmpName, name)
	}
	if err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}
	return nil
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// ReadDir returns entries sorted by name, matching os.ReadDir.
func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

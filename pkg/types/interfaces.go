package types

import (
	"io/fs"
)

// FS is the filesystem surface the stores are written against. Paths are
// native paths; implementations live in pkg/filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces name in one step.
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	// ReadDir lists name sorted by file name.
	ReadDir(name string) ([]fs.DirEntry, error)
}

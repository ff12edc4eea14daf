package markers

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/types"
)

// Outcome describes what MergeFile did to its target.
type Outcome struct {
	// Changed is set when the file was written.
	Changed bool
	// Created is set when the file did not exist.
	Created bool
	// Replaced is set when an existing region was replaced rather than a new
	// one appended.
	Replaced bool
}

// MergeFile merges generated into the marked region of the file at path,
// creating the file and its parent directories when missing. The file is only
// written when its content changes.
func MergeFile(fsys types.FS, path, generated string) (Outcome, error) {
	log := logging.GetLogger("markers")

	var out Outcome
	var existing string
	data, err := fsys.ReadFile(path)
	switch {
	case err == nil:
		existing = string(data)
		out.Replaced = HasRegion(existing)
	case os.IsNotExist(err):
		out.Created = true
		log.Debug().Str("path", path).Msg("Target does not exist, creating it")
	default:
		return out, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	merged := Merge(existing, generated)
	if !out.Created && merged == existing {
		log.Debug().Str("path", path).Msg("Marked region already up to date")
		return out, nil
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return out, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
	}

	perm := fs.FileMode(0644)
	if info, statErr := fsys.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}
	if err := fsys.WriteFile(path, []byte(merged), perm); err != nil {
		return out, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	out.Changed = true

	log.Info().Str("path", path).Bool("created", out.Created).Bool("replaced", out.Replaced).Msg("Merged generated content")
	return out, nil
}

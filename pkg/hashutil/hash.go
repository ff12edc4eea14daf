// Package hashutil fingerprints the active rule set so callers can tell
// whether compiled output is stale without recompiling.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/types"
)

// ComputeRulesHash returns the hex SHA-256 of rules. Each rule is
// serialised as id|scope|severity|content|enabled and the lines are sorted
// by id before joining with newlines, so input order does not matter.
func ComputeRulesHash(rules []types.Rule) string {
	type line struct {
		id   string
		text string
	}
	lines := make([]line, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, line{
			id:   r.ID,
			text: strings.Join([]string{r.ID, r.Scope, r.Severity, r.Content, strconv.FormatBool(r.Enabled)}, "|"),
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].id != lines[j].id {
			return lines[i].id < lines[j].id
		}
		return lines[i].text < lines[j].text
	})

	h := sha256.New()
	for i, l := range lines {
		if i > 0 {
			h.Write([]byte("\n"))
		}
		h.Write([]byte(l.text))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ReadStoredHash returns the cached hash for the project at root, trimmed.
// It reports false when no readable hash file exists.
func ReadStoredHash(fs types.FS, root string) (string, bool) {
	data, err := fs.ReadFile(paths.HashFile(root))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// WriteHash stores hash in the project's cache directory, creating it as
// needed.
func WriteHash(fs types.FS, root, hash string) error {
	path := paths.HashFile(root)
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create cache directory %s", dir)
	}
	if err := fs.WriteFile(path, []byte(hash), os.FileMode(0644)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write hash file %s", path)
	}
	return nil
}

package rules

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/rs/zerolog"
)

// Store is the rule store as seen by the block installer.
type Store interface {
	// LoadScope returns the document for scope. A missing or unparseable
	// document yields an empty one for that scope.
	LoadScope(scope string) (types.RuleFile, error)

	// SaveScope persists file, creating the store on demand.
	SaveScope(file types.RuleFile) error

	// ListDocuments returns the name of every scope document, sorted. A
	// scope may be stored in more than one document. A missing store yields
	// none.
	ListDocuments() ([]string, error)

	// LoadDocument returns the document stored under name, with the same
	// fallbacks as LoadScope.
	LoadDocument(name string) (types.RuleFile, error)

	// SaveDocument persists file under name.
	SaveDocument(name string, file types.RuleFile) error
}

// FileStore is a Store backed by <rulesDir>/<scope>.yml files. Documents
// named <scope>.yaml are read and written in place.
type FileStore struct {
	fs     types.FS
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a store over the rules directory dir.
func NewFileStore(fs types.FS, dir string) *FileStore {
	return &FileStore{
		fs:     fs,
		dir:    dir,
		logger: logging.GetLogger("rules.store"),
	}
}

// Dir returns the rules directory
func (s *FileStore) Dir() string { return s.dir }

// LoadScope implements Store.
func (s *FileStore) LoadScope(scope string) (types.RuleFile, error) {
	if err := paths.ValidateScope(scope); err != nil {
		return types.RuleFile{Scope: scope, Rules: []types.RuleEntry{}}, err
	}
	return s.load(s.pathFor(scope), scope)
}

// LoadDocument implements Store.
func (s *FileStore) LoadDocument(name string) (types.RuleFile, error) {
	scope, ok := paths.ScopeFromFile(name)
	if !ok {
		return types.RuleFile{Scope: scope, Rules: []types.RuleEntry{}},
			errors.Newf(errors.ErrInvalidInput, "not a rule file name: %q", name)
	}
	return s.load(filepath.Join(s.dir, name), scope)
}

func (s *FileStore) load(path, scope string) (types.RuleFile, error) {
	empty := types.RuleFile{Scope: scope, Rules: []types.RuleEntry{}}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return empty, errors.Wrapf(err, errors.ErrRuleStoreRead, "failed to read rule file %s", path)
	}

	file, ok := ParseRuleFile(data, scope)
	if !ok {
		s.logger.Warn().Str("path", path).Msg("Ignoring unparseable rule file")
		return empty, nil
	}
	// The file name is the scope's identity.
	if file.Scope != scope {
		s.logger.Debug().Str("path", path).Str("declared", file.Scope).Msg("Scope key differs from file name")
		file.Scope = scope
	}
	return file, nil
}

// SaveScope implements Store.
func (s *FileStore) SaveScope(file types.RuleFile) error {
	if err := paths.ValidateScope(file.Scope); err != nil {
		return err
	}
	return s.save(s.pathFor(file.Scope), file)
}

// SaveDocument implements Store.
func (s *FileStore) SaveDocument(name string, file types.RuleFile) error {
	scope, ok := paths.ScopeFromFile(name)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "not a rule file name: %q", name)
	}
	file.Scope = scope
	return s.save(filepath.Join(s.dir, name), file)
}

func (s *FileStore) save(path string, file types.RuleFile) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create rules directory %s", s.dir)
	}

	data, err := MarshalRuleFile(file)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRuleStoreWrite, "failed to encode scope %s", file.Scope)
	}

	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write rule file %s", path)
	}

	s.logger.Debug().Str("path", path).Int("rules", len(file.Rules)).Msg("Saved rule file")
	return nil
}

// ListDocuments implements Store. Files not named <scope>.yml or
// <scope>.yaml with a valid scope are ignored.
func (s *FileStore) ListDocuments() ([]string, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRuleStoreRead, "failed to list rules directory %s", s.dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := paths.ScopeFromFile(entry.Name()); !ok {
			s.logger.Debug().Str("file", entry.Name()).Msg("Skipping non-rule file")
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// pathFor returns the existing document for scope, preferring .yml, or the
// .yml path when neither exists.
func (s *FileStore) pathFor(scope string) string {
	primary := paths.ScopeFile(s.dir, scope)
	if _, err := s.fs.Stat(primary); err == nil {
		return primary
	}
	alt := filepath.Join(s.dir, scope+".yaml")
	if _, err := s.fs.Stat(alt); err == nil {
		return alt
	}
	return primary
}

// LoadAll returns every rule in the store, document by document in
// ListDocuments order and in file order within a document.
func LoadAll(store Store) ([]types.Rule, error) {
	names, err := store.ListDocuments()
	if err != nil {
		return nil, err
	}

	var all []types.Rule
	for _, name := range names {
		file, err := store.LoadDocument(name)
		if err != nil {
			return nil, err
		}
		all = append(all, file.ToRules()...)
	}
	return all, nil
}

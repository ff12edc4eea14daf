package rules

import (
	"sort"
	"sync"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/types"
)

// MemoryStore is an in-memory Store. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	scopes map[string]types.RuleFile
	saves  map[string]int
}

// NewMemoryStore creates a store seeded with files.
func NewMemoryStore(files ...types.RuleFile) *MemoryStore {
	m := &MemoryStore{
		scopes: make(map[string]types.RuleFile),
		saves:  make(map[string]int),
	}
	for _, f := range files {
		m.scopes[f.Scope] = cloneFile(f)
	}
	return m
}

// LoadScope implements Store.
func (m *MemoryStore) LoadScope(scope string) (types.RuleFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.scopes[scope]
	if !ok {
		return types.RuleFile{Scope: scope, Rules: []types.RuleEntry{}}, nil
	}
	return cloneFile(f), nil
}

// SaveScope implements Store.
func (m *MemoryStore) SaveScope(file types.RuleFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scopes[file.Scope] = cloneFile(file)
	m.saves[file.Scope]++
	return nil
}

// ListDocuments implements Store. Each scope is one <scope>.yml document.
func (m *MemoryStore) ListDocuments() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.scopes))
	for s := range m.scopes {
		names = append(names, s+paths.RuleFileExt)
	}
	sort.Strings(names)
	return names, nil
}

// LoadDocument implements Store.
func (m *MemoryStore) LoadDocument(name string) (types.RuleFile, error) {
	scope, ok := paths.ScopeFromFile(name)
	if !ok {
		return types.RuleFile{Rules: []types.RuleEntry{}}, errors.Newf(errors.ErrInvalidInput, "not a rule file name: %q", name)
	}
	return m.LoadScope(scope)
}

// SaveDocument implements Store.
func (m *MemoryStore) SaveDocument(name string, file types.RuleFile) error {
	scope, ok := paths.ScopeFromFile(name)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "not a rule file name: %q", name)
	}
	file.Scope = scope
	return m.SaveScope(file)
}

// Saves returns how many times scope was written.
func (m *MemoryStore) Saves(scope string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[scope]
}

func cloneFile(f types.RuleFile) types.RuleFile {
	out := types.RuleFile{Scope: f.Scope, Rules: make([]types.RuleEntry, len(f.Rules))}
	for i, e := range f.Rules {
		c := e
		if e.Enabled != nil {
			v := *e.Enabled
			c.Enabled = &v
		}
		if e.Tags != nil {
			c.Tags = append([]string(nil), e.Tags...)
		}
		out.Rules[i] = c
	}
	return out
}

// pkg/rules/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test rule store loading, saving and listing

package rules_test

import (
	"testing"

	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/rules"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesDir = "/proj/.dwf/rules"

func newStore(t *testing.T, files map[string]string) (*rules.FileStore, types.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	if len(files) > 0 {
		require.NoError(t, fsys.MkdirAll(rulesDir, 0755))
	}
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(rulesDir+"/"+name, []byte(content), 0644))
	}
	return rules.NewFileStore(fsys, rulesDir), fsys
}

func TestFileStore_LoadMissingScope(t *testing.T) {
	store, _ := newStore(t, nil)

	f, err := store.LoadScope("conventions")
	require.NoError(t, err)
	assert.Equal(t, "conventions", f.Scope)
	assert.Empty(t, f.Rules)
}

func TestFileStore_LoadMalformedScopeDegradesToEmpty(t *testing.T) {
	store, _ := newStore(t, map[string]string{
		"security.yml": ":\n invalid: [broken",
	})

	f, err := store.LoadScope("security")
	require.NoError(t, err)
	assert.Equal(t, "security", f.Scope)
	assert.Empty(t, f.Rules)
}

func TestFileStore_LoadUsesFileNameAsScope(t *testing.T) {
	store, _ := newStore(t, map[string]string{
		"testing.yml": "scope: something-else\nrules:\n  - id: a\n    content: A\n",
	})

	f, err := store.LoadScope("testing")
	require.NoError(t, err)
	assert.Equal(t, "testing", f.Scope)
	assert.Len(t, f.Rules, 1)
}

func TestFileStore_LoadYamlExtension(t *testing.T) {
	store, fsys := newStore(t, map[string]string{
		"legacy.yaml": "scope: legacy\nrules:\n  - id: a\n    content: A\n",
	})

	f, err := store.LoadScope("legacy")
	require.NoError(t, err)
	require.Len(t, f.Rules, 1)

	f.Rules = nil
	require.NoError(t, store.SaveScope(f))

	data, err := fsys.ReadFile(rulesDir + "/legacy.yaml")
	require.NoError(t, err)
	assert.Equal(t, "scope: legacy\nrules: []\n", string(data), "existing .yaml file is written in place")
	_, err = fsys.Stat(rulesDir + "/legacy.yml")
	assert.Error(t, err)
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	store, fsys := newStore(t, nil)

	err := store.SaveScope(types.RuleFile{
		Scope: "conventions",
		Rules: []types.RuleEntry{{ID: "rule-a", Severity: "error", Content: "Rule A.", SourceBlock: "test-block"}},
	})
	require.NoError(t, err)

	data, err := fsys.ReadFile(rulesDir + "/conventions.yml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "sourceBlock: test-block")
}

func TestFileStore_SaveRejectsBadScope(t *testing.T) {
	store, _ := newStore(t, nil)
	assert.Error(t, store.SaveScope(types.RuleFile{Scope: "../escape"}))
	assert.Error(t, store.SaveScope(types.RuleFile{Scope: ""}))
}

func TestFileStore_ListDocuments(t *testing.T) {
	store, fsys := newStore(t, map[string]string{
		"security.yml":     "scope: security\nrules: []\n",
		"conventions.yml":  "scope: conventions\nrules: []\n",
		"conventions.yaml": "scope: conventions\nrules: []\n",
		"legacy.yaml":      "scope: legacy\nrules: []\n",
		"README.md":        "not a rule file",
		"..yml":            "scope: dot\nrules: []\n",
	})
	require.NoError(t, fsys.MkdirAll(rulesDir+"/nested.yml", 0755))

	names, err := store.ListDocuments()
	require.NoError(t, err)
	assert.Equal(t, []string{"conventions.yaml", "conventions.yml", "legacy.yaml", "security.yml"}, names)
}

func TestFileStore_ListDocumentsMissingDir(t *testing.T) {
	store, _ := newStore(t, nil)

	names, err := store.ListDocuments()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileStore_LoadAndSaveDocument(t *testing.T) {
	store, fsys := newStore(t, map[string]string{
		"conventions.yml":  "scope: conventions\nrules:\n  - id: a\n    content: A\n",
		"conventions.yaml": "scope: other\nrules:\n  - id: b\n    content: B\n",
	})

	f, err := store.LoadDocument("conventions.yaml")
	require.NoError(t, err)
	assert.Equal(t, "conventions", f.Scope)
	require.Len(t, f.Rules, 1)
	assert.Equal(t, "b", f.Rules[0].ID)

	f.Rules = nil
	require.NoError(t, store.SaveDocument("conventions.yaml", f))

	data, err := fsys.ReadFile(rulesDir + "/conventions.yaml")
	require.NoError(t, err)
	assert.Equal(t, "scope: conventions\nrules: []\n", string(data))
	data, err = fsys.ReadFile(rulesDir + "/conventions.yml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "id: a", "the sibling document is untouched")

	_, err = store.LoadDocument("..yml")
	assert.Error(t, err)
	assert.Error(t, store.SaveDocument("README.md", f))
}

func TestLoadAll_ReadsEveryDocument(t *testing.T) {
	store, _ := newStore(t, map[string]string{
		"conventions.yml":  "scope: conventions\nrules:\n  - id: a\n    content: A\n",
		"conventions.yaml": "scope: conventions\nrules:\n  - id: b\n    content: B\n",
	})

	all, err := rules.LoadAll(store)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestLoadAll(t *testing.T) {
	store := rules.NewMemoryStore(
		types.RuleFile{Scope: "security", Rules: []types.RuleEntry{{ID: "s1", Content: "S1"}}},
		types.RuleFile{Scope: "conventions", Rules: []types.RuleEntry{{ID: "c1", Content: "C1"}, {ID: "c2", Content: "C2"}}},
	)

	all, err := rules.LoadAll(store)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, "conventions", all[0].Scope)
	assert.True(t, all[0].Enabled)
	assert.Equal(t, "s1", all[2].ID)
	assert.Equal(t, "security", all[2].Scope)
}

func TestMemoryStore_IsolatesCallers(t *testing.T) {
	store := rules.NewMemoryStore()
	f := types.RuleFile{Scope: "x", Rules: []types.RuleEntry{{ID: "a", Tags: []string{"t"}}}}
	require.NoError(t, store.SaveScope(f))

	f.Rules[0].Tags[0] = "mutated"
	loaded, err := store.LoadScope("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, loaded.Rules[0].Tags)
	assert.Equal(t, 1, store.Saves("x"))
}

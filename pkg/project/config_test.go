// pkg/project/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test block membership updates and typed loading of config.yml

package project_test

import (
	"strings"
	"testing"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/project"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "/proj/.dwf/config.yml"

const validConfig = `version: "0.1"
project:
  name: "test-project"
tools:
  - claude
mode: copy
blocks: []
`

func setup(t *testing.T, content string) (*project.FileStore, types.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/proj/.dwf", 0755))
	require.NoError(t, fsys.WriteFile(configPath, []byte(content), 0644))
	return project.NewFileStore(fsys, configPath), fsys
}

func read(t *testing.T, fsys types.FS) string {
	t.Helper()
	data, err := fsys.ReadFile(configPath)
	require.NoError(t, err)
	return string(data)
}

func TestAddBlock(t *testing.T) {
	store, fsys := setup(t, validConfig)

	changed, err := store.AddBlock("test-block")
	require.NoError(t, err)
	assert.True(t, changed)

	cfg, err := project.Load(fsys, configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"test-block"}, cfg.Blocks)
	assert.Equal(t, "test-project", cfg.Project.Name)
	assert.Equal(t, []string{"claude"}, cfg.Tools)
	assert.Equal(t, "copy", cfg.Mode)
	assert.Equal(t, "0.1", cfg.Version)
}

func TestAddBlock_Idempotent(t *testing.T) {
	store, fsys := setup(t, validConfig)

	_, err := store.AddBlock("test-block")
	require.NoError(t, err)
	first := read(t, fsys)

	changed, err := store.AddBlock("test-block")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, read(t, fsys))
}

func TestAddBlock_PreservesOtherKeysAndComments(t *testing.T) {
	store, fsys := setup(t, `# project settings
version: "0.1"
custom:
  nested: value # keep me
blocks:
  - existing
mode: link
`)

	_, err := store.AddBlock("new-block")
	require.NoError(t, err)

	out := read(t, fsys)
	assert.Contains(t, out, "# project settings")
	assert.Contains(t, out, "nested: value # keep me")
	assert.Contains(t, out, "mode: link")
	assert.Less(t, strings.Index(out, "version:"), strings.Index(out, "custom:"), "key order is preserved")
	assert.Less(t, strings.Index(out, "blocks:"), strings.Index(out, "mode:"), "key order is preserved")

	cfg, err := project.Load(fsys, configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"existing", "new-block"}, cfg.Blocks)
}

func TestAddBlock_MissingBlocksKey(t *testing.T) {
	store, fsys := setup(t, "version: \"0.1\"\n")

	_, err := store.AddBlock("b")
	require.NoError(t, err)

	cfg, err := project.Load(fsys, configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, cfg.Blocks)
}

func TestRemoveBlock(t *testing.T) {
	store, fsys := setup(t, "blocks:\n  - a\n  - b\n  - c\n")

	changed, err := store.RemoveBlock("b")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "blocks:\n  - a\n  - c\n", read(t, fsys))
}

func TestRemoveBlock_AbsentIsNoop(t *testing.T) {
	store, fsys := setup(t, validConfig)

	changed, err := store.RemoveBlock("nonexistent")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, validConfig, read(t, fsys), "config must stay byte-identical")
}

func TestFileStore_InvalidConfigIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken yaml", ":\n invalid: [broken"},
		{"scalar document", "just a string\n"},
		{"list document", "- a\n- b\n"},
		{"empty document", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := setup(t, tt.content)

			_, err := store.AddBlock("x")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)

			_, err = store.RemoveBlock("x")
			require.Error(t, err)
		})
	}
}

func TestFileStore_MissingConfig(t *testing.T) {
	store := project.NewFileStore(filesystem.NewMemory(), configPath)

	_, err := store.AddBlock("x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_CoercesLooseFields(t *testing.T) {
	_, fsys := setup(t, "version: 1\ntools: claude\nproject: nope\nblocks: [a, 2]\n")

	cfg, err := project.Load(fsys, configPath)
	require.NoError(t, err)
	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, []string{"claude"}, cfg.Tools)
	assert.Equal(t, []string{"a", "2"}, cfg.Blocks)
	assert.True(t, cfg.HasBlock("a"))
	assert.False(t, cfg.HasBlock("b"))
}

func TestDefaultRoundTrip(t *testing.T) {
	data, err := project.Marshal(project.Default("demo"))
	require.NoError(t, err)

	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile(configPath, data, 0644))

	cfg, err := project.Load(fsys, configPath)
	require.NoError(t, err)
	assert.Equal(t, project.Default("demo"), cfg)
}

func TestMemoryStore(t *testing.T) {
	store := project.NewMemoryStore("a")

	changed, err := store.AddBlock("a")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = store.AddBlock("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, store.Blocks())

	changed, err = store.RemoveBlock("a")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"b"}, store.Blocks())
}

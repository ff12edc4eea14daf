// pkg/blocks/registry_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, real temp dir for the package helpers
// PURPOSE: Test block registry discovery and parsing

package blocks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryDir = "/registry"

const sampleBlock = `id: test-block
name: "Test Block"
description: "A test block"
version: "1.0.0"

rules:
  - id: test-rule-a
    scope: conventions
    severity: error
    content: |
      Rule A content.

  - id: test-rule-b
    scope: security
    severity: warning
    content: |
      Rule B content.
`

const anotherBlock = `id: another-block
name: "Another Block"
description: "Another test block"
version: "0.2.0"

rules:
  - id: another-rule
    scope: testing
    severity: info
    content: Some content.
`

const tomlBlock = `id = "toml-block"
name = "TOML Block"
description = "Defined in TOML"
version = "2.0.0"

[[rules]]
id = "toml-rule"
scope = "conventions"
severity = "warning"
content = "Prefer small functions."
tags = ["style"]
`

func newRegistry(t *testing.T, files map[string]string) *blocks.Registry {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(registryDir, 0755))
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(filepath.Join(registryDir, name), []byte(content), 0644))
	}
	return blocks.NewRegistry(fsys, registryDir)
}

func ids(defs []types.BlockDefinition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}

func TestRegistry_LoadAll(t *testing.T) {
	reg := newRegistry(t, map[string]string{
		"test-block.yml":    sampleBlock,
		"another-block.yml": anotherBlock,
	})

	defs, err := reg.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"another-block", "test-block"}, ids(defs), "sorted by file name")
}

func TestRegistry_LoadAll_MissingDirectory(t *testing.T) {
	reg := blocks.NewRegistry(filesystem.NewMemory(), "/nowhere")

	defs, err := reg.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestRegistry_LoadAll_SkipsInvalidFiles(t *testing.T) {
	reg := newRegistry(t, map[string]string{
		"good.yml":     sampleBlock,
		"bad.yml":      ":\n invalid: [broken",
		"noid.yml":     "name: nameless\nrules: []\n",
		"list.yml":     "- just\n- a list\n",
		"badscope.yml": "id: escape\nrules:\n  - id: r\n    scope: ../etc\n    content: x\n",
		"README.md":    "# not a block",
	})

	defs, err := reg.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"test-block"}, ids(defs))
}

func TestRegistry_ParsesMetadataAndRules(t *testing.T) {
	reg := newRegistry(t, map[string]string{"test.yml": sampleBlock})

	defs, err := reg.LoadAll()
	require.NoError(t, err)
	require.Len(t, defs, 1)

	block := defs[0]
	assert.Equal(t, "test-block", block.ID)
	assert.Equal(t, "Test Block", block.Name)
	assert.Equal(t, "A test block", block.Description)
	assert.Equal(t, "1.0.0", block.Version)
	require.Len(t, block.Rules, 2)

	rule := block.Rules[0]
	assert.Equal(t, "test-rule-a", rule.ID)
	assert.Equal(t, "conventions", rule.Scope)
	assert.Equal(t, "error", rule.Severity)
	assert.Contains(t, rule.Content, "Rule A")
}

func TestRegistry_LoadsTOML(t *testing.T) {
	reg := newRegistry(t, map[string]string{
		"toml-block.toml": tomlBlock,
		"test-block.yaml": sampleBlock,
	})

	defs, err := reg.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"test-block", "toml-block"}, ids(defs))

	block := defs[1]
	assert.Equal(t, "TOML Block", block.Name)
	require.Len(t, block.Rules, 1)
	assert.Equal(t, "conventions", block.Rules[0].Scope)
	assert.Equal(t, []string{"style"}, block.Rules[0].Tags)
}

func TestRegistry_Load(t *testing.T) {
	reg := newRegistry(t, map[string]string{
		"test-block.yml":    sampleBlock,
		"another-block.yml": anotherBlock,
	})

	t.Run("existing block", func(t *testing.T) {
		block, ok, err := reg.Load("test-block")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "test-block", block.ID)
	})

	t.Run("unknown block", func(t *testing.T) {
		_, ok, err := reg.Load("nonexistent")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegistry_IndexFirstDuplicateWins(t *testing.T) {
	reg := newRegistry(t, map[string]string{
		"a.yml": "id: dup\nname: first\nrules: []\n",
		"b.yml": "id: dup\nname: second\nrules: []\n",
	})

	index, err := reg.Index()
	require.NoError(t, err)
	assert.Equal(t, 1, index.Count())

	block, ok := index.Get("dup")
	require.True(t, ok)
	assert.Equal(t, "first", block.Name)
}

func TestLoadAllBlocksAndLoadBlock(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test-block.yml"), []byte(sampleBlock), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "another-block.yml"), []byte(anotherBlock), 0644))

	assert.Len(t, blocks.LoadAllBlocks(dir), 2)
	assert.Empty(t, blocks.LoadAllBlocks(filepath.Join(dir, "nonexistent")))

	block, ok := blocks.LoadBlock("another-block", dir)
	require.True(t, ok)
	assert.Equal(t, "0.2.0", block.Version)

	_, ok = blocks.LoadBlock("nonexistent", dir)
	assert.False(t, ok)
}

func TestLoadAllBlocksAndLoadBlock_UnreadableRegistry(t *testing.T) {
	notADir := filepath.Join(t.TempDir(), "blocks")
	require.NoError(t, os.WriteFile(notADir, []byte(sampleBlock), 0644))

	assert.Empty(t, blocks.LoadAllBlocks(notADir))

	_, ok := blocks.LoadBlock("test-block", notADir)
	assert.False(t, ok)
}

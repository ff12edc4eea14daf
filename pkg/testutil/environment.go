// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, project
// PURPOSE: Orchestrate test environments with a project and a registry

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/project"
	"github.com/devw-tools/devw/pkg/rules"
	"github.com/devw-tools/devw/pkg/types"
	"gopkg.in/yaml.v3"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a project root plus a block registry.
type TestEnvironment struct {
	Root        string
	RegistryDir string
	FS          types.FS
	Type        EnvType

	t *testing.T
}

// NewTestEnvironment creates an environment with empty project and
// registry directories. The project is not initialised; call InitProject.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		base := t.TempDir()
		env.Root = filepath.Join(base, "project")
		env.RegistryDir = filepath.Join(base, "registry")
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/virtual/project"
		env.RegistryDir = "/virtual/registry"
		env.FS = filesystem.NewMemory()
	}

	env.mkdir(env.Root)
	env.mkdir(env.RegistryDir)
	return env
}

// InitProject writes a default config listing blocks and creates the rules
// directory.
func (env *TestEnvironment) InitProject(blocks ...string) {
	env.t.Helper()

	cfg := project.Default("test-project")
	cfg.Blocks = append(cfg.Blocks, blocks...)
	data, err := project.Marshal(cfg)
	if err != nil {
		env.t.Fatalf("Failed to encode config: %v", err)
	}
	env.WriteFile(paths.ConfigFile(env.Root), string(data))
	env.mkdir(paths.RulesDir(env.Root))
}

// WriteConfig replaces the project config with content.
func (env *TestEnvironment) WriteConfig(content string) {
	env.t.Helper()
	env.WriteFile(paths.ConfigFile(env.Root), content)
}

// WriteScope writes a raw scope file.
func (env *TestEnvironment) WriteScope(scope, content string) {
	env.t.Helper()
	env.WriteFile(paths.ScopeFile(paths.RulesDir(env.Root), scope), content)
}

// Scope loads a scope through the file store.
func (env *TestEnvironment) Scope(scope string) types.RuleFile {
	env.t.Helper()
	file, err := rules.NewFileStore(env.FS, paths.RulesDir(env.Root)).LoadScope(scope)
	if err != nil {
		env.t.Fatalf("Failed to load scope %s: %v", scope, err)
	}
	return file
}

// ConfigBlocks returns the blocks listed in the project config.
func (env *TestEnvironment) ConfigBlocks() []string {
	env.t.Helper()
	cfg, err := project.Load(env.FS, paths.ConfigFile(env.Root))
	if err != nil {
		env.t.Fatalf("Failed to load config: %v", err)
	}
	return cfg.Blocks
}

// SetupBlock writes block into the registry as <id>.yml.
func (env *TestEnvironment) SetupBlock(block types.BlockDefinition) string {
	env.t.Helper()
	data, err := yaml.Marshal(block)
	if err != nil {
		env.t.Fatalf("Failed to encode block %s: %v", block.ID, err)
	}
	path := filepath.Join(env.RegistryDir, block.ID+".yml")
	env.WriteFile(path, string(data))
	return path
}

// WriteFile writes content to path, creating parent directories.
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	env.mkdir(filepath.Dir(path))
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ReadFile returns the content of path, failing the test when missing.
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}

func (env *TestEnvironment) mkdir(path string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/devw-tools/devw/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot overrides project root discovery
	EnvProjectRoot = "DEVW_PROJECT_ROOT"

	// EnvRegistryDir overrides the block registry directory
	EnvRegistryDir = "DEVW_REGISTRY_DIR"
)

// Project layout. These names are part of the on-disk contract and are not
// user-configurable.
const (
	// DwfDirName is the per-project directory holding all devw state
	DwfDirName = ".dwf"

	// RulesDirName holds one <scope>.yml file per scope
	RulesDirName = "rules"

	// ConfigFileName is the project config inside DwfDirName
	ConfigFileName = "config.yml"

	// CacheDirName holds derived data such as the rules hash
	CacheDirName = ".cache"

	// HashFileName is the cached rule-set fingerprint
	HashFileName = "rules.hash"

	// RuleFileExt is the extension used when writing scope files
	RuleFileExt = ".yml"

	// AppDirName is the directory name used under XDG base dirs
	AppDirName = "devw"

	// BlocksDirName is the registry directory under the XDG data dir
	BlocksDirName = "blocks"

	// maxUpwardSearchLevels limits how far up the tree the root search goes
	maxUpwardSearchLevels = 10
)

// Paths resolves every location devw reads or writes inside one project.
type Paths struct {
	root         string
	usedFallback bool
}

// New creates a Paths instance for the given project root.
// If root is empty it is taken from DEVW_PROJECT_ROOT, then from the nearest
// parent containing a .dwf directory, then the current directory.
func New(root string) (*Paths, error) {
	p := &Paths{}

	if root == "" {
		found, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		root = found
		p.usedFallback = usedFallback
	}

	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.root = abs

	return p, nil
}

// Root returns the project root
func (p *Paths) Root() string { return p.root }

// UsedFallback reports whether the current directory was used because no
// project could be found.
func (p *Paths) UsedFallback() bool { return p.usedFallback }

// DwfDir returns <root>/.dwf
func (p *Paths) DwfDir() string { return DwfDir(p.root) }

// RulesDir returns <root>/.dwf/rules
func (p *Paths) RulesDir() string { return RulesDir(p.root) }

// ConfigFile returns <root>/.dwf/config.yml
func (p *Paths) ConfigFile() string { return ConfigFile(p.root) }

// HashFile returns <root>/.dwf/.cache/rules.hash
func (p *Paths) HashFile() string { return HashFile(p.root) }

// DwfDir returns the .dwf directory of the project at root.
func DwfDir(root string) string {
	return filepath.Join(root, DwfDirName)
}

// RulesDir returns the rules directory of the project at root.
func RulesDir(root string) string {
	return filepath.Join(root, DwfDirName, RulesDirName)
}

// ConfigFile returns the config path of the project at root.
func ConfigFile(root string) string {
	return filepath.Join(root, DwfDirName, ConfigFileName)
}

// HashFile returns the rules hash cache path of the project at root.
func HashFile(root string) string {
	return filepath.Join(root, DwfDirName, CacheDirName, HashFileName)
}

// ScopeFile returns the file name for a scope inside rulesDir.
func ScopeFile(rulesDir, scope string) string {
	return filepath.Join(rulesDir, scope+RuleFileExt)
}

// ScopeFromFile returns the scope encoded in a rule file name and whether the
// name follows the rule-file convention: a .yml or .yaml extension on a stem
// that ValidateScope accepts.
func ScopeFromFile(name string) (string, bool) {
	for _, ext := range []string{".yml", ".yaml"} {
		if strings.HasSuffix(name, ext) {
			scope := strings.TrimSuffix(name, ext)
			if ValidateScope(scope) != nil {
				return "", false
			}
			return scope, true
		}
	}
	return "", false
}

// RegistryDir returns the default block registry directory:
// DEVW_REGISTRY_DIR if set, otherwise $XDG_DATA_HOME/devw/blocks.
func RegistryDir() string {
	if dir := os.Getenv(EnvRegistryDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.DataHome, AppDirName, BlocksDirName)
}

// ValidateScope rejects scope names that would escape the rules directory.
func ValidateScope(scope string) error {
	if scope == "" {
		return errors.New(errors.ErrInvalidInput, "scope cannot be empty")
	}
	if strings.ContainsAny(scope, `/\`) || scope == "." || scope == ".." {
		return errors.Newf(errors.ErrInvalidInput, "invalid scope name: %q", scope)
	}
	return nil
}

func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return root, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	dir := cwd
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if info, err := os.Stat(filepath.Join(dir, DwfDirName)); err == nil && info.IsDir() {
			return dir, false, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd, true, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

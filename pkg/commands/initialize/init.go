package initialize

import (
	"path/filepath"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/project"
	"github.com/devw-tools/devw/pkg/types"
)

// InitProjectOptions defines the options for the InitProject command.
type InitProjectOptions struct {
	// ProjectRoot is where .dwf is created.
	ProjectRoot string
	// Name is recorded in the config; defaults to the root's base name.
	Name string
	// FS defaults to the OS filesystem.
	FS types.FS
}

// InitProject creates .dwf/config.yml and .dwf/rules/ when missing. An
// existing config is never overwritten.
func InitProject(opts InitProjectOptions) (*types.InitResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "InitProject").Str("root", opts.ProjectRoot).Msg("Executing command")

	if opts.ProjectRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "project root cannot be empty")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &types.InitResult{Root: opts.ProjectRoot, Created: []string{}}

	rulesDir := paths.RulesDir(opts.ProjectRoot)
	if _, err := fs.Stat(rulesDir); err != nil {
		if err := fs.MkdirAll(rulesDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", rulesDir)
		}
		result.Created = append(result.Created, rulesDir)
	}

	configPath := paths.ConfigFile(opts.ProjectRoot)
	if _, err := fs.Stat(configPath); err != nil {
		name := opts.Name
		if name == "" {
			name = filepath.Base(opts.ProjectRoot)
		}
		data, err := project.Marshal(project.Default(name))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode default config")
		}
		if err := fs.WriteFile(configPath, data, 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", configPath)
		}
		result.Created = append(result.Created, configPath)
	}

	log.Info().Str("command", "InitProject").Int("created", len(result.Created)).Msg("Command finished")
	return result, nil
}

package list

import (
	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/project"
	"github.com/devw-tools/devw/pkg/types"
)

// ListBlocksOptions defines the options for the ListBlocks command.
type ListBlocksOptions struct {
	// ProjectRoot is the directory containing .dwf. When the project has no
	// config every block is reported as not installed.
	ProjectRoot string
	// RegistryDir holds the block definitions.
	RegistryDir string
	// FS defaults to the OS filesystem.
	FS types.FS
}

// ListBlocks returns the registry blocks in file-name order, followed by any
// installed block the registry no longer has.
func ListBlocks(opts ListBlocksOptions) (*types.ListBlocksResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListBlocks").Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	index, err := blocks.NewRegistry(fs, opts.RegistryDir).Index()
	if err != nil {
		return nil, err
	}

	var installed []string
	configPath := paths.ConfigFile(opts.ProjectRoot)
	if _, statErr := fs.Stat(configPath); statErr == nil {
		cfg, err := project.Load(fs, configPath)
		if err != nil {
			return nil, err
		}
		installed = cfg.Blocks
	}
	isInstalled := make(map[string]bool, len(installed))
	for _, id := range installed {
		isInstalled[id] = true
	}

	log.Debug().Int("registryBlocks", index.Count()).Int("installed", len(installed)).Msg("Loaded block index")

	result := &types.ListBlocksResult{Blocks: make([]types.BlockInfo, 0, index.Count())}
	for _, def := range index.Items() {
		result.Blocks = append(result.Blocks, types.BlockInfo{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Version:     def.Version,
			Rules:       len(def.Rules),
			Installed:   isInstalled[def.ID],
		})
	}
	for _, id := range installed {
		if !index.Has(id) {
			result.Blocks = append(result.Blocks, types.BlockInfo{ID: id, Installed: true, Missing: true})
		}
	}

	log.Info().Str("command", "ListBlocks").Int("blockCount", len(result.Blocks)).Msg("Command finished")
	return result, nil
}

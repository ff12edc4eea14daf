package add

import (
	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/types"
)

// AddBlocksOptions defines the options for the AddBlocks command.
type AddBlocksOptions struct {
	// ProjectRoot is the directory containing .dwf.
	ProjectRoot string
	// RegistryDir holds the block definitions.
	RegistryDir string
	// BlockIDs are the blocks to install, in order.
	BlockIDs []string
	// FS defaults to the OS filesystem.
	FS types.FS
}

// AddBlocks installs each requested block. Every id is resolved against the
// registry before anything is written, so an unknown id installs nothing.
func AddBlocks(opts AddBlocksOptions) (*types.AddBlocksResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "AddBlocks").Strs("blocks", opts.BlockIDs).Msg("Executing command")

	if len(opts.BlockIDs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no block ids given")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	index, err := blocks.NewRegistry(fs, opts.RegistryDir).Index()
	if err != nil {
		return nil, err
	}

	var defs []types.BlockDefinition
	seen := make(map[string]bool)
	for _, id := range opts.BlockIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		def, ok := index.Get(id)
		if !ok {
			return nil, errors.Newf(errors.ErrBlockNotFound, "block %q not found in %s", id, opts.RegistryDir).
				WithDetail("block", id).
				WithDetail("available", index.Names())
		}
		defs = append(defs, def)
	}

	installer := blocks.NewProjectInstaller(fs, opts.ProjectRoot)
	result := &types.AddBlocksResult{}
	for _, def := range defs {
		count, err := installer.Install(def)
		if err != nil {
			return result, err
		}
		result.Installed = append(result.Installed, types.BlockChange{BlockID: def.ID, Rules: count})
	}

	log.Info().Str("command", "AddBlocks").Int("blocks", len(result.Installed)).Msg("Command finished")
	return result, nil
}

package remove

import (
	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/types"
)

// RemoveBlocksOptions defines the options for the RemoveBlocks command.
type RemoveBlocksOptions struct {
	// ProjectRoot is the directory containing .dwf.
	ProjectRoot string
	// BlockIDs are the blocks to uninstall. They need not be in the
	// registry.
	BlockIDs []string
	// FS defaults to the OS filesystem.
	FS types.FS
}

// RemoveBlocks uninstalls each block. Removing a block that is not installed
// is a no-op reported with zero rules.
func RemoveBlocks(opts RemoveBlocksOptions) (*types.RemoveBlocksResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "RemoveBlocks").Strs("blocks", opts.BlockIDs).Msg("Executing command")

	if len(opts.BlockIDs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no block ids given")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	installer := blocks.NewProjectInstaller(fs, opts.ProjectRoot)
	result := &types.RemoveBlocksResult{}
	for _, id := range opts.BlockIDs {
		count, err := installer.Uninstall(id)
		if err != nil {
			return result, err
		}
		result.Removed = append(result.Removed, types.BlockChange{BlockID: id, Rules: count})
	}

	log.Info().Str("command", "RemoveBlocks").Int("blocks", len(result.Removed)).Msg("Command finished")
	return result, nil
}

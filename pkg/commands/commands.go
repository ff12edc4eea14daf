// Package commands provides the command implementations behind the devw
// CLI.
//
// Each command is implemented in its own subdirectory:
//   - add/        - AddBlocks command
//   - remove/     - RemoveBlocks command
//   - list/       - ListBlocks command
//   - status/     - Status command
//   - splice/     - Splice command
//   - initialize/ - InitProject command
//
// This file re-exports the command functions so callers need a single
// import.
package commands

import (
	"github.com/devw-tools/devw/pkg/commands/add"
	"github.com/devw-tools/devw/pkg/commands/initialize"
	"github.com/devw-tools/devw/pkg/commands/list"
	"github.com/devw-tools/devw/pkg/commands/remove"
	"github.com/devw-tools/devw/pkg/commands/splice"
	"github.com/devw-tools/devw/pkg/commands/status"
	"github.com/devw-tools/devw/pkg/types"
)

// AddBlocks installs registry blocks into a project.
type AddBlocksOptions = add.AddBlocksOptions

func AddBlocks(opts AddBlocksOptions) (*types.AddBlocksResult, error) {
	return add.AddBlocks(opts)
}

// RemoveBlocks uninstalls blocks from a project.
type RemoveBlocksOptions = remove.RemoveBlocksOptions

func RemoveBlocks(opts RemoveBlocksOptions) (*types.RemoveBlocksResult, error) {
	return remove.RemoveBlocks(opts)
}

// ListBlocks lists registry blocks with their install state.
type ListBlocksOptions = list.ListBlocksOptions

func ListBlocks(opts ListBlocksOptions) (*types.ListBlocksResult, error) {
	return list.ListBlocks(opts)
}

// Status compares the rule set with the cached hash.
type StatusOptions = status.StatusOptions

func Status(opts StatusOptions) (*types.StatusResult, error) {
	return status.Status(opts)
}

// Splice merges generated content into a target file's marked region.
type SpliceOptions = splice.SpliceOptions

func Splice(opts SpliceOptions) (*types.SpliceResult, error) {
	return splice.Splice(opts)
}

// InitProject creates the .dwf layout for a project.
type InitProjectOptions = initialize.InitProjectOptions

func InitProject(opts InitProjectOptions) (*types.InitResult, error) {
	return initialize.InitProject(opts)
}

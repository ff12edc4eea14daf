package status

import (
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/hashutil"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/rules"
	"github.com/devw-tools/devw/pkg/types"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	// ProjectRoot is the directory containing .dwf.
	ProjectRoot string
	// Write stores the current hash when it differs from the cached one.
	Write bool
	// FS defaults to the OS filesystem.
	FS types.FS
}

// Status hashes every rule in the project and compares it with the cached
// hash. A project without a cached hash is reported as changed.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Status").Bool("write", opts.Write).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	all, err := rules.LoadAll(rules.NewFileStore(fs, paths.RulesDir(opts.ProjectRoot)))
	if err != nil {
		return nil, err
	}

	hash := hashutil.ComputeRulesHash(all)
	stored, _ := hashutil.ReadStoredHash(fs, opts.ProjectRoot)
	result := &types.StatusResult{
		Rules:      len(all),
		Hash:       hash,
		StoredHash: stored,
		Changed:    hash != stored,
	}

	if opts.Write && result.Changed {
		if err := hashutil.WriteHash(fs, opts.ProjectRoot, hash); err != nil {
			return nil, err
		}
		result.Written = true
	}

	log.Info().
		Str("command", "Status").
		Int("rules", result.Rules).
		Bool("changed", result.Changed).
		Msg("Command finished")
	return result, nil
}

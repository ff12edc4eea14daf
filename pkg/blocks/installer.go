package blocks

import (
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/project"
	"github.com/devw-tools/devw/pkg/rules"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Installer applies blocks to a rule store and records them in the project
// config. Scope files are independent, so each scope is handled in its own
// goroutine; within a scope the load and save are sequential.
type Installer struct {
	rules  rules.Store
	config project.Store
	logger zerolog.Logger
}

// NewInstaller creates an installer over the given stores.
func NewInstaller(ruleStore rules.Store, configStore project.Store) *Installer {
	return &Installer{
		rules:  ruleStore,
		config: configStore,
		logger: logging.GetLogger("blocks.installer"),
	}
}

// NewProjectInstaller creates an installer over the .dwf directory of root.
func NewProjectInstaller(fs types.FS, root string) *Installer {
	return NewInstaller(
		rules.NewFileStore(fs, paths.RulesDir(root)),
		project.NewFileStore(fs, paths.ConfigFile(root)),
	)
}

// Install writes block's rules into their scope files, replacing any rules
// a previous install of the same block left there, and adds the block id to
// the config. It returns the number of rules written.
//
// Scope files are saved before the config is updated. If the config cannot
// be updated the scope files keep the new rules; installing again converges.
func (i *Installer) Install(block types.BlockDefinition) (int, error) {
	if block.ID == "" {
		return 0, errors.New(errors.ErrBlockInvalid, "block id cannot be empty")
	}
	for _, rule := range block.Rules {
		if err := paths.ValidateScope(rule.Scope); err != nil {
			return 0, errors.Wrapf(err, errors.ErrBlockInvalid, "block %s: rule %s", block.ID, rule.ID)
		}
	}

	done := logging.LogOperationStart(i.logger, "install "+block.ID)
	defer done()

	groups := groupByScope(block.Rules)
	written := make([]int, len(groups))

	var g errgroup.Group
	for n, group := range groups {
		g.Go(func() error {
			count, err := i.installScope(block.ID, group)
			written[n] = count
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, errors.Wrapf(err, errors.ErrBlockInstall, "failed to install block %s", block.ID)
	}

	total := 0
	for _, n := range written {
		total += n
	}

	added, err := i.config.AddBlock(block.ID)
	if err != nil {
		return total, err
	}

	i.logger.Info().
		Str("block", block.ID).
		Int("rules", total).
		Int("scopes", len(groups)).
		Bool("newBlock", added).
		Msg("Installed block")
	return total, nil
}

func (i *Installer) installScope(blockID string, group scopeGroup) (int, error) {
	file, err := i.rules.LoadScope(group.scope)
	if err != nil {
		return 0, err
	}

	kept, removed := withoutBlock(file.Rules, blockID)
	for _, rule := range group.rules {
		kept = append(kept, toEntry(blockID, rule))
	}
	file.Rules = kept

	if err := i.rules.SaveScope(file); err != nil {
		return 0, err
	}

	i.logger.Debug().
		Str("block", blockID).
		Str("scope", group.scope).
		Int("replaced", removed).
		Int("added", len(group.rules)).
		Msg("Updated scope")
	return len(group.rules), nil
}

// Uninstall removes every rule stamped with blockID from every scope
// document, .yml and .yaml alike, and drops the id from the config. It
// returns the number of rules removed. Files without rules of the block are
// left untouched.
func (i *Installer) Uninstall(blockID string) (int, error) {
	if blockID == "" {
		return 0, errors.New(errors.ErrInvalidInput, "block id cannot be empty")
	}

	done := logging.LogOperationStart(i.logger, "uninstall "+blockID)
	defer done()

	names, err := i.rules.ListDocuments()
	if err != nil {
		return 0, err
	}

	removed := make([]int, len(names))
	var g errgroup.Group
	for n, name := range names {
		g.Go(func() error {
			count, err := i.uninstallDocument(blockID, name)
			removed[n] = count
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range removed {
		total += n
	}

	dropped, err := i.config.RemoveBlock(blockID)
	if err != nil {
		return total, err
	}

	i.logger.Info().
		Str("block", blockID).
		Int("rules", total).
		Bool("wasRegistered", dropped).
		Msg("Uninstalled block")
	return total, nil
}

func (i *Installer) uninstallDocument(blockID, name string) (int, error) {
	file, err := i.rules.LoadDocument(name)
	if err != nil {
		return 0, err
	}

	kept, removed := withoutBlock(file.Rules, blockID)
	if removed == 0 {
		return 0, nil
	}

	file.Rules = kept
	if err := i.rules.SaveDocument(name, file); err != nil {
		return 0, err
	}
	i.logger.Debug().Str("block", blockID).Str("file", name).Int("removed", removed).Msg("Updated scope")
	return removed, nil
}

// withoutBlock returns a copy of entries minus those stamped with blockID,
// and how many were dropped.
func withoutBlock(entries []types.RuleEntry, blockID string) ([]types.RuleEntry, int) {
	kept := make([]types.RuleEntry, 0, len(entries))
	for _, e := range entries {
		if e.SourceBlock == blockID {
			continue
		}
		kept = append(kept, e)
	}
	return kept, len(entries) - len(kept)
}

// InstallBlock installs block into the project at root on the local
// filesystem.
func InstallBlock(root string, block types.BlockDefinition) (int, error) {
	return NewProjectInstaller(filesystem.NewOS(), root).Install(block)
}

// UninstallBlock removes the block with blockID from the project at root on
// the local filesystem.
func UninstallBlock(root, blockID string) (int, error) {
	return NewProjectInstaller(filesystem.NewOS(), root).Uninstall(blockID)
}

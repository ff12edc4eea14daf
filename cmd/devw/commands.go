package devw

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devw-tools/devw/internal/version"
	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/commands"
	"github.com/devw-tools/devw/pkg/config"
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := opts.project
			if root == "" {
				root = config.Get().Project.Root
			}
			if root == "" {
				root = "."
			}
			p, err := paths.New(root)
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}

			result, err := commands.InitProject(commands.InitProjectOptions{
				ProjectRoot: p.Root(),
				Name:        name,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInitProject, err)
			}
			renderInit(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	return cmd
}

func newAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "add <block>...",
		Short:             MsgAddShort,
		Long:              MsgAddLong,
		Example:           MsgAddExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: opts.blockIDCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projectPaths(cmd)
			if err != nil {
				return err
			}
			registry := opts.registryDir()
			log.Info().Str("root", p.Root()).Str("registry", registry).Msg("Adding blocks")

			result, err := commands.AddBlocks(commands.AddBlocksOptions{
				ProjectRoot: p.Root(),
				RegistryDir: registry,
				BlockIDs:    args,
			})
			if result != nil {
				renderInstalled(cmd.OutOrStdout(), result.Installed)
			}
			if err != nil {
				return fmt.Errorf(MsgErrAddBlocks, err)
			}
			return nil
		},
	}
}

func newRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <block>...",
		Aliases:           []string{"rm"},
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		Example:           MsgRemoveExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: opts.blockIDCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projectPaths(cmd)
			if err != nil {
				return err
			}

			result, err := commands.RemoveBlocks(commands.RemoveBlocksOptions{
				ProjectRoot: p.Root(),
				BlockIDs:    args,
			})
			if result != nil {
				renderRemoved(cmd.OutOrStdout(), result.Removed)
			}
			if err != nil {
				return fmt.Errorf(MsgErrRemoveBlocks, err)
			}
			return nil
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projectPaths(cmd)
			if err != nil {
				return err
			}
			registry := opts.registryDir()

			result, err := commands.ListBlocks(commands.ListBlocksOptions{
				ProjectRoot: p.Root(),
				RegistryDir: registry,
			})
			if err != nil {
				return fmt.Errorf(MsgErrListBlocks, err)
			}
			renderBlockList(cmd.OutOrStdout(), result, registry)
			return nil
		},
	}
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.projectPaths(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Status(commands.StatusOptions{
				ProjectRoot: p.Root(),
				Write:       write,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}
			renderStatus(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newSpliceCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:     "splice <file>",
		Short:   MsgSpliceShort,
		Long:    MsgSpliceLong,
		Example: MsgSpliceExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd.InOrStdin(), from)
			if err != nil {
				return fmt.Errorf(MsgErrReadContent, err)
			}

			result, err := commands.Splice(commands.SpliceOptions{
				Target:  args[0],
				Content: content,
			})
			if err != nil {
				return fmt.Errorf(MsgErrSplice, err)
			}
			renderSplice(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", MsgFlagFrom)
	return cmd
}

// readContent reads the splice payload from a file, or from in when path is
// empty.
func readContent(in io.Reader, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	return string(data), nil
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return fmt.Errorf(MsgHelpNotAvailable)
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgVersionBuilt, version.Date)
			}
		},
	}
}

// blockIDCompletion offers the registry's block ids not already on the
// command line.
func (g *globalOptions) blockIDCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	defs := blocks.LoadAllBlocks(g.registryDir())
	used := make(map[string]bool, len(args))
	for _, a := range args {
		used[a] = true
	}
	var ids []string
	for _, def := range defs {
		if !used[def.ID] && strings.HasPrefix(def.ID, toComplete) {
			ids = append(ids, def.ID)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

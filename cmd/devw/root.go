package devw

import (
	"embed"
	"fmt"
	"os"

	"github.com/devw-tools/devw/internal/version"
	"github.com/devw-tools/devw/pkg/cobrax/topics"
	"github.com/devw-tools/devw/pkg/config"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	project    string
	registry   string
	configFile string
	color      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "devw",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.project, "project", "C", "", MsgFlagProject)
	rootCmd.PersistentFlags().StringVar(&opts.registry, "registry", "", MsgFlagRegistry)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newSpliceCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	tm, err := topics.Load(topicFiles, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err == nil {
		tm.Install(rootCmd)
	}

	return rootCmd
}

// setup loads the configuration, then configures logging and styling from
// it. Flags win over config values.
func (g *globalOptions) setup(cmd *cobra.Command) error {
	configPath := g.configFile
	if configPath == "" {
		configPath = config.UserConfigPath()
	}
	cfg, err := config.LoadConfiguration(configPath)
	if err != nil {
		logging.SetupLogger(g.verbosity)
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	config.Initialize(cfg)

	if cfg.Log.File != "" {
		logging.SetLogFile(paths.ExpandHome(cfg.Log.File))
	}
	logging.SetupLogger(g.verbosity)

	color := cfg.Output.Color
	if g.color != "" {
		color = g.color
	}
	style.Configure(color, os.Stdout)

	log.Debug().Str("command", cmd.Name()).Str("config", configPath).Msg("Command started")
	return nil
}

// projectPaths resolves the project root from the flag, the config or
// discovery, warning when it fell back to the current directory.
func (g *globalOptions) projectPaths(cmd *cobra.Command) (*paths.Paths, error) {
	root := g.project
	if root == "" {
		root = config.Get().Project.Root
	}
	p, err := paths.New(root)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	if p.UsedFallback() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.WarningIndicator(), style.WarningStyle.Render(fmt.Sprintf(MsgFallbackWarning, p.Root())))
	}
	log.Debug().Str("root", p.Root()).Bool("fallback", p.UsedFallback()).Msg("Resolved project root")
	return p, nil
}

// registryDir returns the registry from the flag or the config.
func (g *globalOptions) registryDir() string {
	if g.registry != "" {
		return paths.ExpandHome(g.registry)
	}
	return config.Get().RegistryDir()
}

package devw

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install rule blocks and keep generated files in sync"
	MsgAddShort        = "Install blocks from the registry"
	MsgRemoveShort     = "Uninstall blocks from the project"
	MsgListShort       = "List registry blocks and their install state"
	MsgListLong        = "List shows every block in the registry, marking the ones installed in the project and any installed block the registry no longer has."
	MsgStatusShort     = "Compare the rule set with the cached hash"
	MsgSpliceShort     = "Write generated content into a file's marked region"
	MsgInitShort       = "Create the .dwf directory for a project"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgBlockInstalled   = "%s installed %s (%d rules)\n"
	MsgBlockRemoved     = "%s removed %s (%d rules)\n"
	MsgBlockNotPresent  = "%s %s was not installed\n"
	MsgNoBlocksFound    = "No blocks found in %s\n"
	MsgBlocksSummary    = "\n%d blocks, %d installed\n"
	MsgStatusRules      = "Rules:  %d\n"
	MsgStatusHash       = "Hash:   %s\n"
	MsgStatusStored     = "Stored: %s\n"
	MsgStatusState      = "State:  %s\n"
	MsgStatusWritten    = "%s hash written\n"
	MsgNoStoredHash     = "(none)"
	MsgSpliceChanged    = "%s updated %s\n"
	MsgSpliceAppended   = "%s added generated region to %s\n"
	MsgSpliceCreated    = "%s created %s\n"
	MsgSpliceUnchanged  = "%s %s already up to date\n"
	MsgInitCreated      = "%s created %s\n"
	MsgInitNothingToDo  = "%s project already initialized at %s\n"
	MsgVersionFormat    = "devw version %s\n"
	MsgVersionCommit    = "Commit: %s\n"
	MsgVersionBuilt     = "Built:  %s\n"
	MsgErrorPrefix      = "Error: %v"
	MsgErrorDetail      = "  %s: %v\n"
	MsgAvailableBlocks  = "Available blocks: %s\n"
	MsgNoCommandGiven   = "no command specified"
	MsgHelpNotAvailable = "help command not found"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrAddBlocks    = "failed to add blocks: %w"
	MsgErrRemoveBlocks = "failed to remove blocks: %w"
	MsgErrListBlocks   = "failed to list blocks: %w"
	MsgErrStatus       = "failed to get status: %w"
	MsgErrSplice       = "failed to splice content: %w"
	MsgErrReadContent  = "failed to read content: %w"
	MsgErrInitProject  = "failed to initialize project: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject  = "Project root (default: nearest directory containing .dwf)"
	MsgFlagRegistry = "Block registry directory"
	MsgFlagConfig   = "Config file (default: $XDG_CONFIG_HOME/devw/config.toml)"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagWrite    = "Store the current hash when it changed"
	MsgFlagFrom     = "Read content from this file instead of standard input"
	MsgFlagName     = "Project name recorded in the config"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/remove-example.txt
	msgRemoveExampleRaw string
	MsgRemoveExample    = strings.TrimRight(msgRemoveExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/splice-long.txt
	msgSpliceLongRaw string
	MsgSpliceLong    = strings.TrimSpace(msgSpliceLongRaw)

	//go:embed msgs/splice-example.txt
	msgSpliceExampleRaw string
	MsgSpliceExample    = strings.TrimRight(msgSpliceExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

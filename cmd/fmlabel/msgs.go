package fmlabel

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort            = "Frontmatter-derived labels for markdown notes"
	MsgLabelsShort          = "Print the label of every note in a directory"
	MsgWatchShort           = "Print labels and follow changes"
	MsgShowShort            = "Show one note with its label"
	MsgConfigShort          = "Show or edit the label settings"
	MsgConfigShowShort      = "Show the effective settings"
	MsgConfigPathShort      = "Print the settings file path"
	MsgConfigInitShort      = "Write a commented settings file"
	MsgConfigAddShort       = "Append an extractor"
	MsgConfigUpdateShort    = "Replace the extractor at an index"
	MsgConfigRemoveShort    = "Remove the extractor at an index"
	MsgConfigMoveShort      = "Move an extractor to another position"
	MsgConfigSeparatorShort = "Set the separator between label parts"
	MsgVersionShort         = "Print version information"
	MsgCompletionShort      = "Generate shell completion script"
	MsgManShort             = "Generate man pages"

	// Status messages
	MsgNoteRemoved     = "removed"
	MsgConfigWritten   = "Wrote settings to %s"
	MsgSessionStarted  = "Watching %s (session %s)"
	MsgVersionFormat   = "fmlabel version %s\n  commit: %s\n  built:  %s\n"
	MsgManPagesWritten = "Wrote man pages to %s"
	MsgFallbackWarning = "No directory given and %s not set, using the current directory"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrConfigExists = "settings file %s already exists (use --force to overwrite)"
	MsgErrBadIndex     = "invalid index %q"
	MsgErrOpenSettings = "failed to open settings"
	MsgErrStartSession = "failed to start session"
	MsgErrReadNote     = "failed to read note"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Settings file (default $XDG_CONFIG_HOME/fmlabel/settings.toml)"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagRetryDelay = "Delay between attempts to reach the file index"
	MsgFlagType       = "Extractor type: raw or date"
	MsgFlagDateFormat = "Date format for date extractors (e.g. \"MMM D, YYYY\")"
	MsgFlagForce      = "Overwrite an existing settings file"
	MsgFlagManDir     = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/labels-long.txt
	msgLabelsLongRaw string
	MsgLabelsLong    = strings.TrimSpace(msgLabelsLongRaw)

	//go:embed msgs/labels-example.txt
	msgLabelsExampleRaw string
	MsgLabelsExample    = strings.TrimRight(msgLabelsExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

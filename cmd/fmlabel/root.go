package fmlabel

import (
	"embed"
	"errors"
	"time"

	"github.com/arthur-debert/fmlabel/internal/version"
	"github.com/arthur-debert/fmlabel/pkg/cobrax/topics"
	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/arthur-debert/fmlabel/pkg/paths"
	"github.com/arthur-debert/fmlabel/pkg/synchronizer"
	"github.com/arthur-debert/fmlabel/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// rootOptions are the global flags shared by every command
type rootOptions struct {
	verbosity  int
	configPath string
	format     string
	retryDelay time.Duration
}

// settingsPath returns the --config value or the default location
func (o *rootOptions) settingsPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return paths.DefaultSettingsPath()
}

// renderer builds the renderer for the command's output
func (o *rootOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "fmlabel",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			_, err := ui.ParseFormat(opts.format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().DurationVar(&opts.retryDelay, "retry-delay", synchronizer.DefaultRetryDelay, MsgFlagRetryDelay)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Commands"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLabelsCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if _, err := topics.Initialize(rootCmd, afero.FromIOFS{FS: topicFiles}, "topics", topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

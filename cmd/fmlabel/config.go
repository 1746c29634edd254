package fmlabel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/fmlabel/pkg/config"
	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/arthur-debert/fmlabel/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.Open(opts.settingsPath())
			if err != nil {
				return err
			}
			return renderConfig(cmd, opts, store)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), opts.settingsPath())
			return err
		},
	})

	cmd.AddCommand(newConfigInitCmd(opts))

	var kind, format string
	addCmd := &cobra.Command{
		Use:   "add <key>",
		Short: MsgConfigAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := types.ExtractorSpec{Key: args[0], Kind: types.Kind(kind), Format: format}
			return editConfig(cmd, opts, func(e *config.Editor) error {
				return e.Add(spec)
			})
		},
	}
	addExtractorFlags(addCmd, &kind, &format)
	cmd.AddCommand(addCmd)

	var updKind, updFormat string
	updateCmd := &cobra.Command{
		Use:   "update <index> <key>",
		Short: MsgConfigUpdateShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			spec := types.ExtractorSpec{Key: args[1], Kind: types.Kind(updKind), Format: updFormat}
			return editConfig(cmd, opts, func(e *config.Editor) error {
				return e.Update(index, spec)
			})
		},
	}
	addExtractorFlags(updateCmd, &updKind, &updFormat)
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   MsgConfigRemoveShort,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return editConfig(cmd, opts, func(e *config.Editor) error {
				return e.Remove(index)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "move <from> <to>",
		Aliases: []string{"mv"},
		Short:   MsgConfigMoveShort,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return editConfig(cmd, opts, func(e *config.Editor) error {
				return e.Move(from, to)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "separator <sep>",
		Short: MsgConfigSeparatorShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfig(cmd, opts, func(e *config.Editor) error {
				e.SetSeparator(args[0])
				return nil
			})
		},
	})

	return cmd
}

func addExtractorFlags(cmd *cobra.Command, kind, format *string) {
	cmd.Flags().StringVarP(kind, "type", "t", string(types.KindRaw), MsgFlagType)
	cmd.Flags().StringVar(format, "format", "", MsgFlagDateFormat)
	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(types.KindRaw), string(types.KindDate)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func parseIndex(arg string) (int, error) {
	index, err := cast.ToIntE(arg)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrBadIndex, arg)
	}
	return index, nil
}

// editConfig applies edit to the settings and writes them back. Nothing is
// written when the edit is rejected.
func editConfig(cmd *cobra.Command, opts *rootOptions, edit func(e *config.Editor) error) error {
	store, err := config.Open(opts.settingsPath())
	if err != nil {
		return err
	}

	var saveErr error
	editor := config.NewEditor(store)
	editor.OnChange(func() { saveErr = store.Save() })

	if err := edit(editor); err != nil {
		return err
	}
	if saveErr != nil {
		return saveErr
	}
	log.Info().Str("path", store.Path()).Msg("Settings updated")
	return renderConfig(cmd, opts, store)
}

func renderConfig(cmd *cobra.Command, opts *rootOptions, store *config.Store) error {
	renderer, err := opts.renderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderResult(display.NewConfigView(store.Path(), store.Current()))
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.settingsPath()
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path)
			}

			content := []byte(config.GenerateConfigContent())
			if config.FormatFor(path) == config.FormatYAML {
				var err error
				if content, err = config.Marshal(types.DefaultConfig(), config.FormatYAML); err != nil {
					return err
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigSave, "failed to create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigSave, "failed to write %s", path)
			}

			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

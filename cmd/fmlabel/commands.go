package fmlabel

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/fmlabel/pkg/config"
	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/frontmatter"
	"github.com/arthur-debert/fmlabel/pkg/label"
	"github.com/arthur-debert/fmlabel/pkg/paths"
	"github.com/arthur-debert/fmlabel/pkg/session"
	"github.com/arthur-debert/fmlabel/pkg/ui/display"
	"github.com/arthur-debert/fmlabel/pkg/vault"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// vaultRoot resolves the notes directory from the optional argument
func vaultRoot(args []string) (string, error) {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	p, err := paths.New(dir)
	if err != nil {
		return "", err
	}
	if p.UsedFallback() {
		log.Warn().Str("dir", p.VaultRoot()).Msgf(MsgFallbackWarning, paths.EnvVaultRoot)
	}
	return p.VaultRoot(), nil
}

func dirCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// openSession loads the settings and scans the vault named by args
func (o *rootOptions) openSession(args []string, onLabel vault.LabelListener) (*session.Session, error) {
	dir, err := vaultRoot(args)
	if err != nil {
		return nil, err
	}
	store, err := config.Open(o.settingsPath())
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrOpenSettings)
	}
	s, err := session.New(session.Options{
		Root:       dir,
		Store:      store,
		RetryDelay: o.retryDelay,
		OnLabel:    onLabel,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrStartSession)
	}
	return s, nil
}

func newLabelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "labels [dir]",
		Short:             MsgLabelsShort,
		Long:              MsgLabelsLong,
		Example:           MsgLabelsExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			s, err := opts.openSession(args, nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			errc := s.Start(ctx)
			defer func() {
				cancel()
				<-errc
			}()

			if err := s.WaitReady(ctx); err != nil {
				return err
			}
			list := s.Labels()
			log.Info().Str("root", list.Root).Int("notes", len(list.Rows)).Int("labeled", list.Labeled()).Msg("Labels compiled")
			return renderer.RenderResult(list)
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "watch [dir]",
		Short:             MsgWatchShort,
		Long:              MsgWatchLong,
		Example:           MsgWatchExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			// Only touched on the session's loop goroutine.
			live := false
			last := make(map[string]string)
			emit := func(update *display.LabelUpdate) {
				if err := renderer.RenderResult(update); err != nil {
					log.Warn().Err(err).Msg("Failed to render label update")
				}
			}
			onLabel := func(path, label string) {
				prev, seen := last[path]
				last[path] = label
				if !live || (seen && prev == label) {
					return
				}
				emit(&display.LabelUpdate{Time: time.Now(), Path: path, Label: label})
			}
			onRemoved := func(path string) {
				delete(last, path)
				emit(&display.LabelUpdate{Time: time.Now(), Path: path, Removed: true})
			}

			s, err := opts.openSession(args, onLabel)
			if err != nil {
				return err
			}
			logger := s.Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			errc := s.Start(ctx)
			defer func() {
				stop()
				<-errc
			}()

			// Watch before the first render so no edit falls in between.
			w, err := s.NewWatcher(onRemoved)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			if err := s.WaitReady(ctx); err != nil {
				return err
			}
			if err := renderer.RenderResult(s.Labels()); err != nil {
				return err
			}
			if err := s.Do(ctx, func() { live = true }); err != nil {
				return err
			}

			logger.Info().Msgf(MsgSessionStarted, s.Vault().Root(), s.ID)
			err = s.RunWatcher(ctx, w)
			if stderrors.Is(err, context.Canceled) {
				logger.Info().Msg("Watch stopped")
				return nil
			}
			return err
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "show <file>",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			store, err := config.Open(opts.settingsPath())
			if err != nil {
				return err
			}

			path := args[0]
			content, err := afero.ReadFile(afero.NewOsFs(), path)
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, MsgErrReadNote).WithDetail("path", path)
			}

			snapshot, ok, err := frontmatter.Parse(content)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Ignoring invalid frontmatter")
			}
			if !ok || err != nil {
				snapshot = nil
			}

			cfg := store.Current()
			return renderer.RenderResult(&display.NotePreview{
				Path:     path,
				Label:    label.Compile(cfg.Extractors, cfg.Separator, snapshot),
				Metadata: snapshot,
				Body:     string(frontmatter.Body(content)),
			})
		},
	}
}

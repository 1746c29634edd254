// Package session wires the label core to the file-system host: it owns the
// event loop, the vault, the settings store, and the synchronizer, and runs
// every handler on the loop goroutine.
package session

import (
	"context"
	"time"

	"github.com/arthur-debert/fmlabel/pkg/config"
	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/eventloop"
	"github.com/arthur-debert/fmlabel/pkg/label"
	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/arthur-debert/fmlabel/pkg/synchronizer"
	"github.com/arthur-debert/fmlabel/pkg/ui/display"
	"github.com/arthur-debert/fmlabel/pkg/vault"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configure a Session
type Options struct {
	// Root is the vault directory
	Root string
	// Fs backs the vault; nil uses the OS file system
	Fs afero.Fs
	// Store holds the settings; it is only touched on the loop goroutine
	Store *config.Store
	// RetryDelay is the synchronizer's acquisition retry delay
	RetryDelay time.Duration
	// LayoutDelay postpones the explorer layout after Start
	LayoutDelay time.Duration
	// Location is the time zone dates are rendered in; nil uses time.Local
	Location *time.Location
	// OnLabel observes every label write, on the loop goroutine
	OnLabel vault.LabelListener
}

// Session is one run of the synchronizer over a vault
type Session struct {
	ID string

	vault  *vault.Vault
	loop   *eventloop.Loop
	sync   *synchronizer.Synchronizer
	store  *config.Store
	editor *config.Editor
	logger zerolog.Logger

	layoutDelay time.Duration
}

// New scans the vault and builds a stopped session
func New(opts Options) (*Session, error) {
	if opts.Store == nil {
		return nil, errors.New(errors.ErrInvalidInput, "session needs a settings store")
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	id := uuid.NewString()
	logger := logging.WithSession(logging.GetLogger("session"), id)

	v := vault.New(fs, opts.Root)
	if err := v.Scan(); err != nil {
		return nil, err
	}
	if opts.OnLabel != nil {
		v.Explorer().SetListener(opts.OnLabel)
	}

	loop := eventloop.New(0)
	syncLogger := logging.WithSession(logging.GetLogger("synchronizer"), id)
	s := &Session{
		ID:     id,
		vault:  v,
		loop:   loop,
		store:  opts.Store,
		editor: config.NewEditor(opts.Store),
		logger: logger,
		sync: synchronizer.New(v, opts.Store, loop, synchronizer.Options{
			RetryDelay: opts.RetryDelay,
			Compiler:   label.Compiler{Location: loc},
			Logger:     &syncLogger,
		}),
		layoutDelay: opts.LayoutDelay,
	}
	s.editor.OnChange(s.sync.OnSettingsChanged)

	logger.Debug().Str("root", v.Root()).Int("notes", len(v.Explorer().Paths())).Msg("Session created")
	return s, nil
}

// Vault returns the session's host
func (s *Session) Vault() *vault.Vault { return s.vault }

// Synchronizer returns the session's synchronizer
func (s *Session) Synchronizer() *synchronizer.Synchronizer { return s.sync }

// Logger returns the session-tagged logger
func (s *Session) Logger() zerolog.Logger { return s.logger }

// Start runs the event loop until ctx is done and signals layout readiness.
// The returned channel yields the loop's exit error.
func (s *Session) Start(ctx context.Context) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- s.loop.Run(ctx) }()

	if s.layoutDelay > 0 {
		s.loop.AfterFunc(s.layoutDelay, s.vault.Layout)
	} else {
		s.loop.Post(s.vault.Layout)
	}
	s.loop.Post(s.sync.OnLayoutReady)

	s.logger.Info().Str("root", s.vault.Root()).Msg("Session started")
	return errc
}

// WaitReady blocks until the synchronizer acquired the file index and the
// first full refresh completed
func (s *Session) WaitReady(ctx context.Context) error {
	select {
	case <-s.sync.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.Do(ctx, func() {})
}

// Do runs f on the loop goroutine and waits for it to finish
func (s *Session) Do(ctx context.Context, f func()) error {
	done := make(chan struct{})
	posted := s.loop.Post(func() {
		defer close(done)
		f()
	})
	if !posted {
		return errors.New(errors.ErrInternal, "session event loop has stopped")
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Edit applies fn to the settings editor on the loop goroutine. Successful
// edits persist the settings and refresh every label.
func (s *Session) Edit(ctx context.Context, fn func(e *config.Editor) error) error {
	var editErr error
	if err := s.Do(ctx, func() { editErr = fn(s.editor) }); err != nil {
		return err
	}
	return editErr
}

// Labels returns every tracked note and its current label
func (s *Session) Labels() *display.LabelList {
	labels := s.vault.Explorer().Labels()
	list := &display.LabelList{Root: s.vault.Root()}
	for _, path := range s.vault.Explorer().Paths() {
		list.Rows = append(list.Rows, display.LabelRow{Path: path, Label: labels[path]})
	}
	return list
}

// NewWatcher starts watching the vault and the settings file. Changes made
// from this point on are queued until the watcher runs. onRemoved runs on
// the loop after a note disappears.
func (s *Session) NewWatcher(onRemoved func(path string)) (*vault.Watcher, error) {
	w, err := vault.NewWatcher(s.vault, s.loop, vault.Events{
		MetadataChanged: s.sync.OnMetadataChanged,
		Removed:         onRemoved,
		SettingsChanged: s.reloadSettings,
	})
	if err != nil {
		return nil, err
	}
	if err := w.WatchSettings(s.store.Path()); err != nil {
		s.logger.Warn().Err(err).Str("path", s.store.Path()).Msg("Settings changes will not be picked up")
	}
	return w, nil
}

// Watch delivers file-system changes of the vault and of the settings file
// to the synchronizer until ctx is done.
func (s *Session) Watch(ctx context.Context, onRemoved func(path string)) error {
	w, err := s.NewWatcher(onRemoved)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	return s.RunWatcher(ctx, w)
}

// RunWatcher delivers the events of w until ctx is done
func (s *Session) RunWatcher(ctx context.Context, w *vault.Watcher) error {
	s.logger.Info().Str("root", s.vault.Root()).Msg("Watching for changes")
	return w.Run(ctx)
}

// reloadSettings re-reads the settings file after an outside edit. An
// unchanged file, such as one this session just saved, is ignored.
func (s *Session) reloadSettings() {
	changed, err := s.store.Reload()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Keeping previous settings")
		return
	}
	if !changed {
		s.logger.Trace().Msg("Settings file unchanged")
		return
	}
	s.logger.Info().Str("path", s.store.Path()).Msg("Settings reloaded")
	s.sync.RefreshAll()
}

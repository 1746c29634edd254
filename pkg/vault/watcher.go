package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Poster schedules work on the single thread that owns the synchronizer.
// eventloop.Loop satisfies it.
type Poster interface {
	Post(f func()) bool
}

// Events are the callbacks a Watcher delivers through its Poster. Nil
// callbacks are skipped.
type Events struct {
	// MetadataChanged runs after a note was created or written. New notes
	// are tracked before the callback runs.
	MetadataChanged func(path string)
	// Removed runs after a note was deleted or renamed away and untracked.
	Removed func(path string)
	// SettingsChanged runs when the watched settings file changes.
	SettingsChanged func()
}

// Watcher turns file-system notifications inside a vault into host events.
// It watches the real file system, so the vault must be backed by the OS.
type Watcher struct {
	vault    *Vault
	fsw      *fsnotify.Watcher
	poster   Poster
	events   Events
	settings string
	logger   zerolog.Logger
}

// NewWatcher watches every non-hidden directory of v
func NewWatcher(v *Vault, poster Poster, events Events) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatch, "cannot create file watcher")
	}
	w := &Watcher{
		vault:  v,
		fsw:    fsw,
		poster: poster,
		events: events,
		logger: logging.GetLogger("vault.watcher"),
	}
	if err := w.addTree(v.Root()); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// WatchSettings also reports changes to the settings file at path. The
// parent directory is watched because editors usually replace files.
func (w *Watcher) WatchSettings(path string) error {
	if path == "" {
		return nil
	}
	w.settings = filepath.Clean(path)
	dir := filepath.Dir(w.settings)
	if err := w.fsw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "cannot watch %s", dir)
	}
	return nil
}

// Run delivers events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Clean(event.Name)
	w.logger.Trace().Str("path", name).Str("op", event.Op.String()).Msg("File event")

	if w.settings != "" && name == w.settings {
		if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
			w.post(func() {
				if w.events.SettingsChanged != nil {
					w.events.SettingsChanged()
				}
			})
		}
		return
	}

	rel, ok := w.vault.Rel(name)
	if !ok {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			w.handleNewDir(name)
			return
		}
	}

	gone := event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
	if !IsNote(rel) {
		// A directory renamed or deleted is reported once, by its own path.
		if gone {
			w.unwatchTree(name)
			w.post(func() { w.removedDir(rel) })
		}
		return
	}

	switch {
	case gone:
		w.post(func() { w.removed(rel) })
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		w.post(func() { w.changed(rel) })
	}
}

func (w *Watcher) handleNewDir(dir string) {
	if IsHidden(filepath.Base(dir)) {
		return
	}
	if err := w.addTree(dir); err != nil {
		w.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot watch new directory")
		return
	}
	// Notes may land in the directory before the watch is in place.
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if rel, ok := w.vault.Rel(path); ok && IsNote(rel) {
			w.post(func() { w.changed(rel) })
		}
		return nil
	})
}

func (w *Watcher) changed(rel string) {
	if w.vault.Track(rel) {
		w.logger.Debug().Str("path", rel).Msg("Tracking new note")
	}
	if w.events.MetadataChanged != nil {
		w.events.MetadataChanged(rel)
	}
}

func (w *Watcher) removed(rel string) {
	if !w.vault.Untrack(rel) {
		return
	}
	w.logger.Debug().Str("path", rel).Msg("Untracked note")
	if w.events.Removed != nil {
		w.events.Removed(rel)
	}
}

func (w *Watcher) removedDir(dir string) {
	for _, rel := range w.vault.Explorer().PathsUnder(dir) {
		w.removed(rel)
	}
}

func (w *Watcher) post(f func()) {
	if !w.poster.Post(f) {
		w.logger.Debug().Msg("Event loop stopped, dropping file event")
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && IsHidden(info.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return errors.Wrapf(err, errors.ErrWatch, "cannot watch %s", path)
		}
		return nil
	})
}

// unwatchTree drops the watches at or below dir. inotify keeps reporting a
// moved directory under its old path until its watch is removed.
func (w *Watcher) unwatchTree(dir string) {
	prefix := dir + string(filepath.Separator)
	for _, p := range w.fsw.WatchList() {
		if p == dir || strings.HasPrefix(p, prefix) {
			_ = w.fsw.Remove(p)
		}
	}
}

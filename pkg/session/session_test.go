// pkg/session/session_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: afero in-memory file system, event loop
// PURPOSE: Test the synchronizer running against the vault host

package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/fmlabel/pkg/config"
	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/session"
	"github.com/arthur-debert/fmlabel/pkg/synchronizer"
	"github.com/arthur-debert/fmlabel/pkg/testutil"
	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	testutil.WriteTree(t, fs, "/vault", testutil.FileTree{
		"a.md":       testutil.Note("# A\n", "status: draft", "due: 2024-05-07"),
		"b.md":       testutil.Note("", "status: done"),
		"nometa.md":  "just text\n",
		".hidden.md": testutil.Note("", "status: hidden"),
		"sub": testutil.FileTree{
			"c.md": "+++\ndue = 2020-03-01\n+++\n",
		},
	})
	return fs
}

func testConfig() types.Config {
	return types.Config{
		Separator: "|",
		Extractors: []types.ExtractorSpec{
			{Key: "status", Kind: types.KindRaw},
			{Key: "due", Kind: types.KindDate, Format: "YYYY"},
		},
	}
}

func start(t *testing.T, opts session.Options) (*session.Session, context.Context) {
	t.Helper()
	s, err := session.New(opts)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	errc := s.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-errc
	})
	require.NoError(t, s.WaitReady(ctx))
	return s, ctx
}

func TestSessionLabels(t *testing.T) {
	s, _ := start(t, session.Options{
		Root:     "/vault",
		Fs:       notesFs(t),
		Store:    config.NewStore("", testConfig()),
		Location: time.UTC,
	})

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	list := s.Labels()
	assert.Equal(t, "/vault", list.Root)
	got := map[string]string{}
	for _, row := range list.Rows {
		got[row.Path] = row.Label
	}
	assert.Equal(t, map[string]string{
		"a.md":      "draft | 2024",
		"b.md":      "done",
		"sub/c.md":  "2020",
		"nometa.md": "",
	}, got)
	assert.Equal(t, synchronizer.Acquired, s.Synchronizer().State())
}

func TestSessionRetriesUntilLayout(t *testing.T) {
	s, _ := start(t, session.Options{
		Root:        "/vault",
		Fs:          notesFs(t),
		Store:       config.NewStore("", testConfig()),
		RetryDelay:  5 * time.Millisecond,
		LayoutDelay: 30 * time.Millisecond,
		Location:    time.UTC,
	})

	assert.Equal(t, synchronizer.Acquired, s.Synchronizer().State())
	assert.Equal(t, "done", s.Vault().Explorer().Label("b.md"))
}

func TestSessionEditPersistsAndRefreshes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	store := config.NewStore(path, testConfig())

	var writes []string
	s, ctx := start(t, session.Options{
		Root:     "/vault",
		Fs:       notesFs(t),
		Store:    store,
		Location: time.UTC,
		OnLabel: func(path, label string) {
			if path == "a.md" {
				writes = append(writes, label)
			}
		},
	})

	err := s.Edit(ctx, func(e *config.Editor) error {
		e.SetSeparator("/")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "draft / 2024", s.Vault().Explorer().Label("a.md"))

	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/", saved.Separator)

	err = s.Edit(ctx, func(e *config.Editor) error { return e.Remove(7) })
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutRange))

	require.NoError(t, s.Do(ctx, func() {}))
	assert.Equal(t, []string{"draft | 2024", "draft / 2024"}, writes)
}

func TestSessionMetadataChange(t *testing.T) {
	fs := notesFs(t)
	s, ctx := start(t, session.Options{
		Root:     "/vault",
		Fs:       fs,
		Store:    config.NewStore("", testConfig()),
		Location: time.UTC,
	})

	require.NoError(t, afero.WriteFile(fs, "/vault/b.md", []byte("---\nstatus: archived\n---\n"), 0644))
	require.NoError(t, s.Do(ctx, func() { s.Synchronizer().OnMetadataChanged("b.md") }))
	assert.Equal(t, "archived", s.Vault().Explorer().Label("b.md"))
}

func TestSessionWatcherQueuesEarlyChanges(t *testing.T) {
	root := t.TempDir()
	note := filepath.Join(root, "a.md")
	require.NoError(t, os.WriteFile(note, []byte(testutil.Note("", "status: draft")), 0644))

	s, ctx := start(t, session.Options{
		Root:  root,
		Fs:    afero.NewOsFs(),
		Store: config.NewStore("", testConfig()),
	})
	require.Equal(t, "draft", s.Vault().Explorer().Label("a.md"))

	w, err := s.NewWatcher(nil)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// Edited after the watcher exists but before it runs.
	require.NoError(t, os.WriteFile(note, []byte(testutil.Note("", "status: done")), 0644))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- s.RunWatcher(runCtx, w) }()
	defer func() {
		cancel()
		<-done
	}()

	assert.Eventually(t, func() bool {
		return s.Vault().Explorer().Label("a.md") == "done"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSessionRequiresStore(t *testing.T) {
	_, err := session.New(session.Options{Root: "/vault", Fs: afero.NewMemMapFs()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSessionMissingVault(t *testing.T) {
	_, err := session.New(session.Options{
		Root:  "/nowhere",
		Fs:    afero.NewMemMapFs(),
		Store: config.NewStore("", testConfig()),
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

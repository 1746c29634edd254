// pkg/vault/vault_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero in-memory file system
// PURPOSE: Test note discovery, pane layout, and metadata reads

package vault_test

import (
	"testing"

	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/arthur-debert/fmlabel/pkg/vault"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVault(t *testing.T, files map[string]string) (*vault.Vault, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/notes", 0755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "/notes/"+name, []byte(content), 0644))
	}
	return vault.New(fs, "/notes"), fs
}

func TestScan(t *testing.T) {
	v, _ := newVault(t, map[string]string{
		"a.md":            "---\nstatus: draft\n---\n",
		"sub/b.markdown":  "# no frontmatter\n",
		"sub/image.png":   "binary",
		".obsidian/c.md":  "hidden",
		"sub/.trash/d.md": "hidden",
		".draft.md":       "hidden file",
		"README.MD":       "upper case extension",
	})

	require.NoError(t, v.Scan())
	assert.Equal(t, []string{"README.MD", "a.md", "sub/b.markdown"}, v.Explorer().Paths())
}

func TestScanMissingRoot(t *testing.T) {
	v := vault.New(afero.NewMemMapFs(), "/missing")
	assert.Error(t, v.Scan())
}

func TestVisiblePanesBeforeAndAfterLayout(t *testing.T) {
	v, _ := newVault(t, map[string]string{"a.md": ""})
	require.NoError(t, v.Scan())

	panes := v.VisiblePanes()
	require.Len(t, panes, 1)
	_, ok := panes[0].FileIndex()
	assert.False(t, ok)

	v.Layout()
	panes = v.VisiblePanes()
	require.Len(t, panes, 2)
	index, ok := panes[1].FileIndex()
	require.True(t, ok)
	node, ok := index.Node("a.md")
	require.True(t, ok)
	assert.Equal(t, "a.md", node.Path())
}

func TestMetadataSnapshotIsFresh(t *testing.T) {
	v, fs := newVault(t, map[string]string{
		"a.md": "---\nstatus: draft\n---\nbody\n",
	})

	snap, ok := v.MetadataSnapshot("a.md")
	require.True(t, ok)
	assert.Equal(t, "draft", snap["status"])

	require.NoError(t, afero.WriteFile(fs, "/notes/a.md", []byte("---\nstatus: done\n---\n"), 0644))
	snap, ok = v.MetadataSnapshot("a.md")
	require.True(t, ok)
	assert.Equal(t, "done", snap["status"])
}

func TestMetadataSnapshotAbsent(t *testing.T) {
	v, _ := newVault(t, map[string]string{
		"plain.md":  "no frontmatter",
		"broken.md": "---\n: [unbalanced\n---\n",
	})

	tests := []string{"plain.md", "broken.md", "missing.md"}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			snap, ok := v.MetadataSnapshot(path)
			assert.False(t, ok)
			assert.Nil(t, snap)
		})
	}
}

func TestExplorerLabels(t *testing.T) {
	v, _ := newVault(t, map[string]string{"a.md": "", "b.md": ""})
	require.NoError(t, v.Scan())

	var seen []string
	v.Explorer().SetListener(func(path, label string) {
		seen = append(seen, path+"="+label)
	})

	nodes := v.Explorer().Nodes()
	require.Len(t, nodes, 2)
	nodes[0].SetDisplayAttribute("draft")
	nodes[1].SetDisplayAttribute("")

	assert.Equal(t, map[string]string{"a.md": "draft", "b.md": ""}, v.Explorer().Labels())
	assert.Equal(t, []string{"a.md=draft", "b.md="}, seen)
}

func TestTrackUntrack(t *testing.T) {
	v, _ := newVault(t, nil)

	assert.True(t, v.Track("new.md"))
	assert.False(t, v.Track("new.md"))

	node, ok := v.Explorer().Node("new.md")
	require.True(t, ok)
	node.SetDisplayAttribute("x")
	assert.Equal(t, "x", v.Explorer().Label("new.md"))

	assert.True(t, v.Untrack("new.md"))
	assert.False(t, v.Untrack("new.md"))
	_, ok = v.Explorer().Node("new.md")
	assert.False(t, ok)

	// Writes to a stale node are dropped.
	node.SetDisplayAttribute("y")
	assert.Empty(t, v.Explorer().Labels())
}

func TestExplorerPathsUnder(t *testing.T) {
	v, _ := newVault(t, nil)
	for _, p := range []string{"old/b.md", "old/a.md", "old/deep/c.md", "older.md", "oldx/d.md"} {
		v.Track(p)
	}

	assert.Equal(t, []string{"old/a.md", "old/b.md", "old/deep/c.md"}, v.Explorer().PathsUnder("old"))
	assert.Equal(t, []string{"old/deep/c.md"}, v.Explorer().PathsUnder("old/deep/"))
	assert.Empty(t, v.Explorer().PathsUnder("missing"))
}

func TestRel(t *testing.T) {
	v := vault.New(afero.NewMemMapFs(), "/notes")

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/notes/a.md", "a.md", true},
		{"/notes/sub/b.md", "sub/b.md", true},
		{"/notes", "", false},
		{"/other/a.md", "", false},
		{"/notes/.git/a.md", "", false},
		{"/notes/.a.md", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := v.Rel(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "/notes/sub/b.md", v.Abs("sub/b.md"))
}

func TestVaultIsHost(t *testing.T) {
	var _ types.Host = vault.New(afero.NewMemMapFs(), "/")
}

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExplicitRoot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVaultRoot, "/ignored")

	p, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, p.VaultRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewRootFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVaultRoot, dir)

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, dir, p.VaultRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewRelativeRootIsAbsolute(t *testing.T) {
	p, err := New("notes")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "notes"), p.VaultRoot())
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Equal(t, dir, ConfigDir())
	assert.Equal(t, filepath.Join(dir, SettingsFileName), DefaultSettingsPath())

	p, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "settings.toml"), p.SettingsPath())
}

func TestStateDir(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	p, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "fmlabel"), p.StateDir())
	assert.Equal(t, filepath.Join(state, "fmlabel", "fmlabel.log"), p.LogFilePath())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/notes", filepath.Join(home, "notes")},
		{"~other/notes", "~other/notes"},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/logging"
)

// Environment variable names
const (
	// EnvVaultRoot selects the notes directory when no argument is given
	EnvVaultRoot = "FMLABEL_VAULT"

	// EnvConfigDir overrides the XDG config directory for fmlabel
	EnvConfigDir = "FMLABEL_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name under the XDG base directories
	AppDirName = "fmlabel"

	// SettingsFileName is the default settings file name
	SettingsFileName = "settings.toml"

	// LogFileName is the name of the log file
	LogFileName = "fmlabel.log"
)

// Paths holds the resolved locations for one run
type Paths struct {
	vaultRoot    string
	usedFallback bool
	configDir    string
	stateDir     string
}

// New resolves the vault root and the XDG directories. An empty vaultRoot
// is discovered from the environment.
func New(vaultRoot string) (*Paths, error) {
	p := &Paths{}

	if vaultRoot == "" {
		root, usedFallback, err := findVaultRoot()
		if err != nil {
			return nil, err
		}
		p.vaultRoot = root
		p.usedFallback = usedFallback
	} else {
		p.vaultRoot = ExpandHome(vaultRoot)
	}

	absRoot, err := filepath.Abs(p.vaultRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", p.vaultRoot)
	}
	p.vaultRoot = absRoot

	p.configDir = ConfigDir()
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.stateDir = filepath.Join(stateDir, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
	return p, nil
}

// ConfigDir returns the directory holding the settings file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultSettingsPath returns the settings file used when none is given
func DefaultSettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// VaultRoot returns the absolute notes directory
func (p *Paths) VaultRoot() string { return p.vaultRoot }

// UsedFallback reports whether the working directory was used as vault root
func (p *Paths) UsedFallback() bool { return p.usedFallback }

// ConfigDir returns the settings directory
func (p *Paths) ConfigDir() string { return p.configDir }

// SettingsPath returns the default settings file
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.configDir, SettingsFileName)
}

// StateDir returns the state directory
func (p *Paths) StateDir() string { return p.stateDir }

// LogFilePath returns the log file location
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// findVaultRoot returns the vault root, and whether it fell back to the
// working directory
func findVaultRoot() (string, bool, error) {
	if root := os.Getenv(EnvVaultRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	logger := logging.GetLogger("paths")
	gitRoot, err := findGitRoot()
	if err == nil {
		logger.Debug().Str("root", gitRoot).Msg("Using git repository root as vault")
		return gitRoot, false, nil
	}
	logger.Trace().Err(err).Msg("Not inside a git repository")

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot returns the top level of the enclosing git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user is left alone
	return path
}

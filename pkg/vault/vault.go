package vault

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/frontmatter"
	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// NoteExtensions lists the file extensions treated as notes
var NoteExtensions = []string{".md", ".markdown"}

// Vault is a directory of notes exposed through the types.Host interface
type Vault struct {
	fs       afero.Fs
	root     string
	explorer *Explorer
	logger   zerolog.Logger

	mu      sync.RWMutex
	laidOut bool
}

// New creates a vault rooted at root on fs. Nothing is read until Scan.
func New(fs afero.Fs, root string) *Vault {
	return &Vault{
		fs:       fs,
		root:     filepath.Clean(root),
		explorer: newExplorer(),
		logger:   logging.GetLogger("vault"),
	}
}

// Root returns the vault directory
func (v *Vault) Root() string { return v.root }

// Explorer returns the vault's explorer pane
func (v *Vault) Explorer() *Explorer { return v.explorer }

// Scan walks the vault and tracks every note it finds. Hidden files and
// directories are skipped.
func (v *Vault) Scan() error {
	info, err := v.fs.Stat(v.root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open vault %s", v.root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "vault root %s is not a directory", v.root)
	}

	count := 0
	err = afero.Walk(v.fs, v.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			v.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if info.IsDir() {
			if path != v.root && IsHidden(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if rel, ok := v.Rel(path); ok && IsNote(rel) {
			if v.explorer.Track(rel) {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to scan vault %s", v.root)
	}

	v.logger.Info().Str("root", v.root).Int("notes", count).Msg("Vault scanned")
	return nil
}

// Layout makes the explorer pane visible
func (v *Vault) Layout() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.laidOut = true
}

// VisiblePanes implements types.Host.
func (v *Vault) VisiblePanes() []types.Pane {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.laidOut {
		return []types.Pane{outlinePane{}}
	}
	return []types.Pane{outlinePane{}, v.explorer}
}

// MetadataSnapshot implements types.Host. The note is read and parsed on
// every call; unreadable notes and invalid frontmatter report no metadata.
func (v *Vault) MetadataSnapshot(path string) (types.Snapshot, bool) {
	content, err := v.ReadNote(path)
	if err != nil {
		v.logger.Debug().Err(err).Str("path", path).Msg("Cannot read note")
		return nil, false
	}
	snapshot, ok, err := frontmatter.Parse(content)
	if err != nil {
		v.logger.Debug().Err(err).Str("path", path).Msg("Ignoring invalid frontmatter")
		return nil, false
	}
	return snapshot, ok
}

// ReadNote returns the content of the note at the vault-relative path
func (v *Vault) ReadNote(path string) ([]byte, error) {
	content, err := afero.ReadFile(v.fs, v.Abs(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).WithDetail("path", path)
	}
	return content, nil
}

// Track starts showing the note at path in the explorer
func (v *Vault) Track(path string) bool {
	return v.explorer.Track(path)
}

// Untrack removes the note at path from the explorer
func (v *Vault) Untrack(path string) bool {
	return v.explorer.Untrack(path)
}

// Abs converts a vault-relative slash path to a file-system path
func (v *Vault) Abs(path string) string {
	return filepath.Join(v.root, filepath.FromSlash(path))
}

// Rel converts a file-system path inside the vault to its vault-relative
// slash path. It reports false for paths outside the vault and for hidden
// files or anything inside hidden directories.
func (v *Vault) Rel(path string) (string, bool) {
	rel, err := filepath.Rel(v.root, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	parts := strings.Split(rel, "/")
	for _, part := range parts {
		if IsHidden(part) {
			return "", false
		}
	}
	return rel, true
}

// IsNote reports whether path has a note extension
func IsNote(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range NoteExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsHidden reports whether a file or directory name is hidden
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

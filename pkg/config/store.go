package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Store holds the effective configuration and persists it to one file.
// It is not safe for concurrent use; callers share it on one goroutine.
type Store struct {
	path string
	cfg  types.Config
}

// Open loads the configuration at path and returns a store bound to it
func Open(path string) (*Store, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, cfg: cfg}, nil
}

// NewStore creates a store for cfg without reading path
func NewStore(path string, cfg types.Config) *Store {
	return &Store{path: path, cfg: cfg.Clone()}
}

// Path returns the settings file the store persists to
func (s *Store) Path() string {
	return s.path
}

// Current returns a copy of the effective configuration
func (s *Store) Current() types.Config {
	return s.cfg.Clone()
}

// Set replaces the configuration in memory
func (s *Store) Set(cfg types.Config) {
	s.cfg = cfg.Clone()
}

// Save writes the configuration to the store's file, in the format its
// extension selects. A store without a path keeps settings in memory only.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	data, err := Marshal(s.cfg, FormatFor(s.path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to create settings directory for %s", s.path)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write settings to %s", s.path)
	}
	logger().Debug().Str("path", s.path).Int("extractors", len(s.cfg.Extractors)).Msg("Settings saved")
	return nil
}

// Reload re-reads the settings file and reports whether the configuration changed
func (s *Store) Reload() (bool, error) {
	cfg, err := Load(s.path)
	if err != nil {
		return false, err
	}
	if cfg.Equal(s.cfg) {
		return false, nil
	}
	s.cfg = cfg
	return true, nil
}

// Marshal encodes cfg in the persisted settings shape: {list, separator}
func Marshal(cfg types.Config, format Format) ([]byte, error) {
	doc := cfg.Clone()
	if doc.Extractors == nil {
		doc.Extractors = []types.ExtractorSpec{}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = toml.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigSave, "failed to encode settings as %s", format)
	}
	return data, nil
}

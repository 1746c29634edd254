package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix prefixes environment overrides, e.g. FMLABEL_SEPARATOR
const EnvPrefix = "FMLABEL_"

func logger() *zerolog.Logger {
	l := logging.GetLogger("config")
	return &l
}

// envKeys lists the settings that may be overridden from the environment
var envKeys = map[string]bool{"separator": true}

// Format is the on-disk encoding of a settings file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension; anything that is
// not .yaml or .yml is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parserFor(path string) koanf.Parser {
	if FormatFor(path) == FormatYAML {
		return yaml.Parser()
	}
	return toml.Parser()
}

// Load builds the effective configuration: the embedded defaults, overlaid
// by the settings file at path (if it exists), overlaid by the environment.
// An empty path skips the file layer.
func Load(path string) (types.Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return types.Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User settings
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return types.Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse settings from %s", path).
					WithDetail("path", path)
			}
			logger().Debug().Str("path", path).Msg("Loaded user settings")
		} else if !os.IsNotExist(err) {
			return types.Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat settings file %s", path)
		} else {
			logger().Debug().Str("path", path).Msg("No user settings, using defaults")
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !envKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return types.Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg types.Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return types.Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	warnUnknownKinds(cfg)
	return cfg, nil
}

func warnUnknownKinds(cfg types.Config) {
	for i, ex := range cfg.Extractors {
		if !ex.Kind.Known() {
			logger().Warn().
				Int("index", i).
				Str("key", ex.Key).
				Str("type", string(ex.Kind)).
				Msg("Unknown extractor type, it will render nothing")
		}
	}
}

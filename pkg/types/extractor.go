package types

import "fmt"

// Kind selects how an extractor interprets the metadata value it reads
type Kind string

const (
	// KindRaw renders the value in its natural string form
	KindRaw Kind = "raw"
	// KindDate parses the value as an instant and formats it
	KindDate Kind = "date"
)

// Known reports whether k is one of the supported kinds. Unknown kinds are
// kept as-is so a settings file written by a newer version still loads.
func (k Kind) Known() bool {
	return k == KindRaw || k == KindDate
}

// ExtractorSpec is one rule in the ordered label definition
type ExtractorSpec struct {
	// Key is the metadata field to read. Empty means the rule yields nothing.
	Key string `koanf:"key" toml:"key" yaml:"key"`

	// Kind is persisted as "type" to match the settings document shape.
	Kind Kind `koanf:"type" toml:"type" yaml:"type"`

	// Format is a date pattern, only used by KindDate. Empty selects the default.
	Format string `koanf:"format" toml:"format,omitempty" yaml:"format,omitempty"`
}

// String returns a compact description used in logs and listings
func (e ExtractorSpec) String() string {
	if e.Kind == KindDate && e.Format != "" {
		return fmt.Sprintf("%s:%s(%s)", e.Key, e.Kind, e.Format)
	}
	return fmt.Sprintf("%s:%s", e.Key, e.Kind)
}

// Config is the process-wide label configuration
type Config struct {
	Extractors []ExtractorSpec `koanf:"list" toml:"list" yaml:"list"`
	Separator  string          `koanf:"separator" toml:"separator" yaml:"separator"`
}

// DefaultSeparator is used when no separator has been configured
const DefaultSeparator = "|"

// DefaultConfig returns the built-in configuration: a single empty raw
// extractor and the default separator.
func DefaultConfig() Config {
	return Config{
		Extractors: []ExtractorSpec{{Key: "", Kind: KindRaw}},
		Separator:  DefaultSeparator,
	}
}

// Clone returns a deep copy so callers can mutate the extractor list safely
func (c Config) Clone() Config {
	out := Config{Separator: c.Separator}
	if c.Extractors != nil {
		out.Extractors = make([]ExtractorSpec, len(c.Extractors))
		copy(out.Extractors, c.Extractors)
	}
	return out
}

// Equal reports whether two configurations produce the same labels
func (c Config) Equal(other Config) bool {
	if c.Separator != other.Separator || len(c.Extractors) != len(other.Extractors) {
		return false
	}
	for i := range c.Extractors {
		if c.Extractors[i] != other.Extractors[i] {
			return false
		}
	}
	return true
}

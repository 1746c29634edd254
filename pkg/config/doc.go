// Package config loads, edits and persists the label settings.
//
// Settings are layered: the embedded defaults (one empty raw extractor,
// separator "|"), then the user's settings file (TOML, or YAML for .yaml
// and .yml files), then FMLABEL_SEPARATOR from the environment. The
// persisted document has the shape
//
//	separator = "|"
//
//	[[list]]
//	key = "due"
//	type = "date"
//	format = "YYYY-MM-DD"
//
// A Store owns the effective configuration and writes it back to disk; an
// Editor applies list edits to a Store and notifies listeners.
package config

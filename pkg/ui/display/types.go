// Package display holds the render-agnostic results produced by commands.
// Every renderer in pkg/ui understands these types.
package display

import (
	"time"

	"github.com/arthur-debert/fmlabel/pkg/types"
)

// LabelRow is one file and its rendered label
type LabelRow struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// LabelList is the result of compiling labels for a whole vault
type LabelList struct {
	Root string     `json:"root"`
	Rows []LabelRow `json:"labels"`
}

// Labeled returns how many rows carry a non-empty label
func (l *LabelList) Labeled() int {
	n := 0
	for _, r := range l.Rows {
		if r.Label != "" {
			n++
		}
	}
	return n
}

// LabelUpdate reports a label change while watching
type LabelUpdate struct {
	Time    time.Time `json:"time"`
	Path    string    `json:"path"`
	Label   string    `json:"label"`
	Removed bool      `json:"removed,omitempty"`
}

// NotePreview is a single note with its label and body
type NotePreview struct {
	Path     string         `json:"path"`
	Label    string         `json:"label"`
	Metadata types.Snapshot `json:"metadata,omitempty"`
	Body     string         `json:"body"`
}

// ExtractorRow is one configured extractor, with its position
type ExtractorRow struct {
	Index  int    `json:"index"`
	Key    string `json:"key"`
	Kind   string `json:"type"`
	Format string `json:"format,omitempty"`
}

// ConfigView describes the active settings
type ConfigView struct {
	Path       string         `json:"path,omitempty"`
	Separator  string         `json:"separator"`
	Extractors []ExtractorRow `json:"list"`
}

// NewConfigView builds a ConfigView from cfg
func NewConfigView(path string, cfg types.Config) *ConfigView {
	view := &ConfigView{
		Path:       path,
		Separator:  cfg.Separator,
		Extractors: make([]ExtractorRow, 0, len(cfg.Extractors)),
	}
	for i, e := range cfg.Extractors {
		view.Extractors = append(view.Extractors, ExtractorRow{
			Index:  i,
			Key:    e.Key,
			Kind:   string(e.Kind),
			Format: e.Format,
		})
	}
	return view
}

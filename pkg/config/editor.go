package config

import (
	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/types"
)

// Editor applies user edits to a Store and notifies listeners after each
// successful change. Listeners typically persist the settings and refresh
// every label.
type Editor struct {
	store     *Store
	listeners []func()
}

// NewEditor creates an editor over store
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// OnChange registers fn to run after every successful edit
func (e *Editor) OnChange(fn func()) {
	e.listeners = append(e.listeners, fn)
}

// Add appends an extractor to the end of the list
func (e *Editor) Add(spec types.ExtractorSpec) error {
	if err := validate(spec); err != nil {
		return err
	}
	cfg := e.store.Current()
	cfg.Extractors = append(cfg.Extractors, spec)
	e.commit(cfg)
	return nil
}

// Update replaces the extractor at index
func (e *Editor) Update(index int, spec types.ExtractorSpec) error {
	if err := validate(spec); err != nil {
		return err
	}
	cfg := e.store.Current()
	if err := checkIndex(index, len(cfg.Extractors)); err != nil {
		return err
	}
	cfg.Extractors[index] = spec
	e.commit(cfg)
	return nil
}

// Remove deletes the extractor at index
func (e *Editor) Remove(index int) error {
	cfg := e.store.Current()
	if err := checkIndex(index, len(cfg.Extractors)); err != nil {
		return err
	}
	cfg.Extractors = append(cfg.Extractors[:index], cfg.Extractors[index+1:]...)
	e.commit(cfg)
	return nil
}

// Move relocates the extractor at from so it ends up at index to
func (e *Editor) Move(from, to int) error {
	cfg := e.store.Current()
	n := len(cfg.Extractors)
	if err := checkIndex(from, n); err != nil {
		return err
	}
	if err := checkIndex(to, n); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	spec := cfg.Extractors[from]
	rest := append(cfg.Extractors[:from:from], cfg.Extractors[from+1:]...)
	moved := make([]types.ExtractorSpec, 0, n)
	moved = append(moved, rest[:to]...)
	moved = append(moved, spec)
	moved = append(moved, rest[to:]...)
	cfg.Extractors = moved
	e.commit(cfg)
	return nil
}

// SetSeparator changes the separator placed between label parts
func (e *Editor) SetSeparator(sep string) {
	cfg := e.store.Current()
	cfg.Separator = sep
	e.commit(cfg)
}

func (e *Editor) commit(cfg types.Config) {
	e.store.Set(cfg)
	for _, fn := range e.listeners {
		fn()
	}
}

func validate(spec types.ExtractorSpec) error {
	if !spec.Kind.Known() {
		return errors.Newf(errors.ErrInvalidInput, "unknown extractor type %q (want %q or %q)",
			spec.Kind, types.KindRaw, types.KindDate).WithDetail("type", string(spec.Kind))
	}
	return nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return errors.Newf(errors.ErrIndexOutRange, "no extractor at position %d (have %d)", index, n).
			WithDetail("index", index).
			WithDetail("len", n)
	}
	return nil
}

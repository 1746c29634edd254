package vault

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/fmlabel/pkg/types"
)

// LabelListener observes label writes on explorer entries
type LabelListener func(path, label string)

// Entry is one file shown in the explorer
type Entry struct {
	path     string
	explorer *Explorer
}

// Path implements types.FileNode.
func (e *Entry) Path() string { return e.path }

// SetDisplayAttribute implements types.FileNode.
func (e *Entry) SetDisplayAttribute(label string) {
	e.explorer.setLabel(e.path, label)
}

// Label returns the entry's current label
func (e *Entry) Label() string {
	return e.explorer.Label(e.path)
}

// Explorer is the pane listing the vault's notes. It is the only pane with
// a file index.
type Explorer struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	labels   map[string]string
	listener LabelListener
}

func newExplorer() *Explorer {
	return &Explorer{
		entries: make(map[string]*Entry),
		labels:  make(map[string]string),
	}
}

// FileIndex implements types.Pane.
func (x *Explorer) FileIndex() (types.FileIndex, bool) {
	return x, true
}

// SetListener installs fn to observe every label write
func (x *Explorer) SetListener(fn LabelListener) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.listener = fn
}

// Track adds path to the explorer. Tracking a known path is a no-op and
// reports false.
func (x *Explorer) Track(path string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.entries[path]; ok {
		return false
	}
	x.entries[path] = &Entry{path: path, explorer: x}
	return true
}

// Untrack removes path and its label. It reports whether path was tracked.
func (x *Explorer) Untrack(path string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.entries[path]; !ok {
		return false
	}
	delete(x.entries, path)
	delete(x.labels, path)
	return true
}

// Node implements types.FileIndex.
func (x *Explorer) Node(path string) (types.FileNode, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	e, ok := x.entries[path]
	if !ok {
		return nil, false
	}
	return e, true
}

// Nodes implements types.FileIndex. Nodes are sorted by path.
func (x *Explorer) Nodes() []types.FileNode {
	paths := x.Paths()
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]types.FileNode, 0, len(paths))
	for _, p := range paths {
		if e, ok := x.entries[p]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Paths returns the tracked paths in sorted order
func (x *Explorer) Paths() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	paths := make([]string, 0, len(x.entries))
	for p := range x.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// PathsUnder returns the sorted tracked paths inside directory dir
func (x *Explorer) PathsUnder(dir string) []string {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	x.mu.RLock()
	defer x.mu.RUnlock()
	var paths []string
	for p := range x.entries {
		if strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// Label returns the current label of path
func (x *Explorer) Label(path string) string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.labels[path]
}

// Labels returns a copy of every tracked path's label
func (x *Explorer) Labels() map[string]string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make(map[string]string, len(x.entries))
	for p := range x.entries {
		out[p] = x.labels[p]
	}
	return out
}

func (x *Explorer) setLabel(path, label string) {
	x.mu.Lock()
	if _, ok := x.entries[path]; !ok {
		x.mu.Unlock()
		return
	}
	x.labels[path] = label
	listener := x.listener
	x.mu.Unlock()

	if listener != nil {
		listener(path, label)
	}
}

// outlinePane stands for panes without a per-file index
type outlinePane struct{}

func (outlinePane) FileIndex() (types.FileIndex, bool) { return nil, false }

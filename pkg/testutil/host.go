package testutil

import (
	"sort"

	"github.com/arthur-debert/fmlabel/pkg/types"
)

// MockNode is a file node that records every label written to it
type MockNode struct {
	path    string
	Label   string
	History []string
}

// NewMockNode creates a node for path with an empty label
func NewMockNode(path string) *MockNode {
	return &MockNode{path: path}
}

// Path returns the node's identity.
func (n *MockNode) Path() string { return n.path }

// SetDisplayAttribute records label as the node's current label.
func (n *MockNode) SetDisplayAttribute(label string) {
	n.Label = label
	n.History = append(n.History, label)
}

// Writes returns how many times the label was written
func (n *MockNode) Writes() int { return len(n.History) }

// MockIndex is an in-memory file index
type MockIndex struct {
	nodes map[string]*MockNode
}

// NewMockIndex creates an index tracking the given paths
func NewMockIndex(paths ...string) *MockIndex {
	idx := &MockIndex{nodes: make(map[string]*MockNode)}
	for _, p := range paths {
		idx.Add(p)
	}
	return idx
}

// Add starts tracking path and returns its node
func (i *MockIndex) Add(path string) *MockNode {
	n := NewMockNode(path)
	i.nodes[path] = n
	return n
}

// Remove stops tracking path
func (i *MockIndex) Remove(path string) {
	delete(i.nodes, path)
}

// Get returns the concrete node for path, or nil
func (i *MockIndex) Get(path string) *MockNode {
	return i.nodes[path]
}

// Node implements types.FileIndex.
func (i *MockIndex) Node(path string) (types.FileNode, bool) {
	n, ok := i.nodes[path]
	if !ok {
		return nil, false
	}
	return n, true
}

// Nodes implements types.FileIndex, sorted by path.
func (i *MockIndex) Nodes() []types.FileNode {
	paths := make([]string, 0, len(i.nodes))
	for p := range i.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]types.FileNode, len(paths))
	for k, p := range paths {
		out[k] = i.nodes[p]
	}
	return out
}

// Labels returns the current label of every tracked path
func (i *MockIndex) Labels() map[string]string {
	out := make(map[string]string, len(i.nodes))
	for p, n := range i.nodes {
		out[p] = n.Label
	}
	return out
}

// MockPane is a pane that may or may not expose a file index
type MockPane struct {
	Index *MockIndex
}

// FileIndex implements types.Pane.
func (p *MockPane) FileIndex() (types.FileIndex, bool) {
	if p.Index == nil {
		return nil, false
	}
	return p.Index, true
}

// MockHost is a scriptable types.Host
type MockHost struct {
	Snapshots map[string]types.Snapshot
	Panes     []types.Pane

	// VisiblePanesFunc overrides Panes when set
	VisiblePanesFunc func() []types.Pane

	SnapshotCalls int
	PaneCalls     int
}

// NewMockHost creates a host with no panes and no metadata
func NewMockHost() *MockHost {
	return &MockHost{Snapshots: make(map[string]types.Snapshot)}
}

// SetSnapshot stores the metadata returned for path. A nil snapshot makes the
// file report no metadata.
func (h *MockHost) SetSnapshot(path string, s types.Snapshot) {
	if s == nil {
		delete(h.Snapshots, path)
		return
	}
	h.Snapshots[path] = s
}

// MetadataSnapshot implements types.Host.
func (h *MockHost) MetadataSnapshot(path string) (types.Snapshot, bool) {
	h.SnapshotCalls++
	s, ok := h.Snapshots[path]
	return s, ok
}

// VisiblePanes implements types.Host.
func (h *MockHost) VisiblePanes() []types.Pane {
	h.PaneCalls++
	if h.VisiblePanesFunc != nil {
		return h.VisiblePanesFunc()
	}
	return h.Panes
}

// FailAcquisitions makes the first n calls to VisiblePanes report no panes,
// then returns panes.
func (h *MockHost) FailAcquisitions(n int, panes ...types.Pane) {
	calls := 0
	h.VisiblePanesFunc = func() []types.Pane {
		calls++
		if calls <= n {
			return nil
		}
		return panes
	}
}

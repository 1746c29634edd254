package types

// Snapshot is the structured metadata of one file, keyed by field name.
// A nil Snapshot means the file has no metadata.
type Snapshot map[string]interface{}

// Lookup returns the value stored at key and whether the key is present
func (s Snapshot) Lookup(key string) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}

// FileNode is the host's visible representation of a single file
type FileNode interface {
	// Path is the node's stable file identity
	Path() string

	// SetDisplayAttribute replaces the node's label
	SetDisplayAttribute(label string)
}

// FileIndex is a live view of the file nodes a pane currently shows
type FileIndex interface {
	// Node looks up a tracked node by path
	Node(path string) (FileNode, bool)

	// Nodes returns every tracked node
	Nodes() []FileNode
}

// Pane is one active UI pane of the host
type Pane interface {
	// FileIndex returns the pane's per-file index, or false when the pane's
	// view does not expose one.
	FileIndex() (FileIndex, bool)
}

// Host is the boundary between the label core and the application that
// owns the metadata store and the file browser.
type Host interface {
	// MetadataSnapshot returns the current metadata of a file, read at call time.
	// The bool is false when the file has no metadata.
	MetadataSnapshot(path string) (Snapshot, bool)

	// VisiblePanes enumerates the active panes in display order
	VisiblePanes() []Pane
}

// SettingsStore exposes the current configuration and its persistence
type SettingsStore interface {
	Current() Config
	Save() error
}

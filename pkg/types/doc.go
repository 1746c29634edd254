// Package types holds the data shared between the label compiler, the
// synchronizer and the hosts that drive them.
//
// Config is the persisted label definition: an ordered list of
// ExtractorSpec values and the separator placed between their outputs.
// Host, Pane, FileIndex, FileNode and SettingsStore describe what the
// synchronizer needs from its environment without tying it to a
// particular file system or UI.
package types

// Package vault is a file-system host for the label core: a directory of
// markdown notes whose frontmatter provides the metadata, and an in-memory
// explorer pane whose entries carry the rendered labels.
//
// Like a desktop host, the vault only exposes its explorer pane once Layout
// has been called; before that VisiblePanes lists panes without a file
// index, and the synchronizer keeps retrying.
package vault

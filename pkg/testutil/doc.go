// Package testutil provides utilities for testing fmlabel components.
//
// Key components:
//   - MockHost, MockPane, MockIndex, MockNode: an in-memory host whose panes
//     can be made to appear after a number of acquisition attempts
//   - ManualScheduler: runs scheduled retries only when the test asks
//   - MockSettings: a settings store recording saves
//   - FileTree, WriteTree, CreateFile, Note: declarative note fixtures on an
//     afero file system or on disk
//
// All test data should be defined inline, not in external files.
package testutil

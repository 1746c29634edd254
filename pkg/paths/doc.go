// Package paths resolves the directories fmlabel works with.
//
// # Vault root
//
// The directory of notes is picked, in order, from:
//
//   - an explicit argument
//   - the FMLABEL_VAULT environment variable
//   - the root of the enclosing git repository
//   - the current working directory (UsedFallback reports true)
//
// # Settings and state
//
// Settings live in $XDG_CONFIG_HOME/fmlabel unless FMLABEL_CONFIG_DIR points
// elsewhere; the log file lives in $XDG_STATE_HOME/fmlabel.
//
// A leading ~ is expanded to the home directory everywhere.
package paths

// Package synchronizer keeps the labels shown in the host's file browser in
// step with file metadata and the label configuration.
//
// The synchronizer starts Unacquired. OnLayoutReady tries to acquire the
// file index of the first pane that exposes one; while none exists it keeps
// retrying after RetryDelay. Once Acquired it never goes back.
//
//	Unacquired --acquire ok--> Acquired   (one RefreshAll)
//	Unacquired --acquire fail--> Unacquired (retry after delay)
//
// All handlers must be called from a single goroutine, in delivery order;
// the eventloop package provides one. No locking is done here.
package synchronizer

// Package extendedstorage contains the core domain types and backend
// interfaces for the ExtendedStorage filesystem abstraction: portable
// attribute flags, split creation timestamps, collision policies and the
// narrow OS capability set the entity model is built on.
//
// The concrete entity model (File, Folder and the recursive tree operations)
// lives in the filesystem package; the local-OS backend lives in osfs.
package extendedstorage

import "time"

// StorageItem is the capability set shared by File and Folder snapshots.
// Implementations are immutable value snapshots of a single filesystem node;
// they never hold an open OS handle, so every operation re-resolves the path
// at call time and staleness surfaces as a lookup failure.
type StorageItem interface {
	// Name returns the leaf component of the path
	Name() string

	// Path returns the fully-qualified, normalized path
	Path() string

	// Attributes returns the portable attribute flag set
	Attributes() ItemAttributes

	// DateCreated returns the node's timezone-aware creation time
	DateCreated() time.Time
}

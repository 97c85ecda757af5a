// Package sweeptree provides an indexed, order-preserving red-black tree
// driven entirely through cursors. The tree performs no key comparisons:
// callers descend left or right themselves, which lets the structure serve as
// a generic ordered index for domains where order is dynamic and externally
// defined (such as the active-edge list of a sweep-line algorithm).
package sweeptree

import "errors"

// Lookup and swap errors
var (
	// ErrKeyNotIndexed indicates that a key handle is not currently indexed
	// by the tree.
	ErrKeyNotIndexed = errors.New("key handle not indexed")
)

// Cursor protocol errors. These mark programmer errors in the calling
// protocol and are used as panic values rather than returned.
var (
	// ErrCursorHeld indicates that a cursor is already checked out and a
	// second one was requested, or the tree was read around a live cursor.
	ErrCursorHeld = errors.New("a cursor is already checked out")

	// ErrStaleCursor indicates use of a cursor that was already consumed by
	// navigation, insertion, deletion, or release.
	ErrStaleCursor = errors.New("cursor was already consumed")

	// ErrNilKey indicates an attempt to insert a nil key handle.
	ErrNilKey = errors.New("nil key handle")

	// ErrKeyIndexed indicates an attempt to insert a key handle that is
	// already held by another node.
	ErrKeyIndexed = errors.New("key handle already indexed")
)

// Integrity errors
var (
	// ErrCorrupt indicates that Check found a violated structural invariant
	// (should not happen).
	ErrCorrupt = errors.New("tree invariant violated")
)

// Package store abstracts the hierarchical key/value configuration store the
// context menu entries live in. On Windows this is HKEY_CLASSES_ROOT; tests
// use the in-memory implementation.
package store

import "errors"

// ErrUnavailable means a path could not be opened: it is missing or access
// to it was refused.
var ErrUnavailable = errors.New("store path unavailable")

// Store opens keys by backslash-separated path relative to its root.
type Store interface {
	// Open returns a handle on path. The handle must be closed by the caller.
	// Fails with ErrUnavailable when the path cannot be opened.
	Open(path string, writable bool) (Key, error)
}

// Key is an open handle on one node of the store.
// Handles are scoped resources: every handle returned, including those from
// CreateSubKey, must be closed on every exit path.
type Key interface {
	// SubKeyNames lists the names of the direct children.
	SubKeyNames() ([]string, error)

	// CreateSubKey creates (or opens, if present) a direct child.
	// Fails with model.ErrWriteDenied when the store refuses the write.
	CreateSubKey(name string) (Key, error)

	// DeleteSubKeyTree deletes a direct child and everything below it.
	// Deleting a missing child is not an error.
	DeleteSubKeyTree(name string) error

	// SetDefaultValue sets the unnamed string value of the key.
	SetDefaultValue(value string) error

	// DefaultValue reads the unnamed string value, "" when unset.
	DefaultValue() (string, error)

	Close() error
}

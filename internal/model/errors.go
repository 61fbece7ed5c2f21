package model

import "errors"

// Error kinds shared by the store, menu, installer and dispatcher layers.
// Callers branch on them with errors.Is.
var (
	// ErrPrivilegeRequired is returned before any mutation when the process
	// is not elevated.
	ErrPrivilegeRequired = errors.New("administrator rights required")

	// ErrScopeUnavailable means the scope's shell subtree could not be opened.
	ErrScopeUnavailable = errors.New("shell scope unavailable")

	// ErrWriteDenied means the store refused a create, delete or set-value.
	ErrWriteDenied = errors.New("write denied")

	// ErrInvalidExecutable means no usable executable path was given to
	// embed in the command template.
	ErrInvalidExecutable = errors.New("invalid executable path")

	// ErrInvalidCommand is an unrecognized dash-prefixed command option.
	ErrInvalidCommand = errors.New("invalid command option")
)

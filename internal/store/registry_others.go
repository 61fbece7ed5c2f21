//go:build !windows

package store

import (
	"fmt"
	"runtime"
)

// Registry has no backing store outside Windows; every Open fails.
type Registry struct{}

// NewRegistry returns the placeholder registry for this platform.
func NewRegistry() *Registry {
	return &Registry{}
}

// Open implements Store.
func (r *Registry) Open(path string, writable bool) (Key, error) {
	return nil, fmt.Errorf("open HKCR\\%s: no registry on %s: %w", path, runtime.GOOS, ErrUnavailable)
}

//go:build !windows

package notify

import "os"

// NewDialog falls back to the console outside Windows; there is no native
// modal dialog to block on.
func NewDialog() Notifier {
	return NewConsole(os.Stderr)
}

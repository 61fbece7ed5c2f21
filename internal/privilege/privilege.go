// Package privilege reports whether the process may write the machine-wide
// shell registration keys.
package privilege

// Checker reports elevation. It never fails: lacking rights is a plain false.
type Checker interface {
	IsElevated() bool
}

// Fixed is a Checker with a constant answer.
type Fixed bool

// IsElevated implements Checker.
func (f Fixed) IsElevated() bool { return bool(f) }

// System checks the current process token.
type System struct{}

// IsElevated implements Checker.
func (System) IsElevated() bool { return isElevated() }

package model

// Centralized icons for the report and TUI
// Using simple single-width characters for consistent terminal rendering
const (
	IconPresent = "✓" // Entry installed and pointing at this executable
	IconAbsent  = "✗" // Entry missing
	IconStale   = "≈" // Entry installed but pointing elsewhere
)

// StatusIcon picks the icon for a scope status.
func StatusIcon(st ScopeStatus) string {
	switch {
	case st.State == Absent:
		return IconAbsent
	case st.Stale:
		return IconStale
	default:
		return IconPresent
	}
}

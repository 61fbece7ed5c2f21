package tui

import (
	"fmt"
	"strings"

	"copypath/internal/model"
)

// GenerateReport renders the per-scope status as plain text for --status.
func GenerateReport(statuses []model.ScopeStatus, executable string) string {
	var b strings.Builder

	b.WriteString("Copy full path: context menu registration\n")
	b.WriteString(strings.Repeat("=", 42))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Executable: %s\n\n", executable)

	stale := 0
	for _, st := range statuses {
		fmt.Fprintf(&b, "%s %-8s %s\n", model.StatusIcon(st), st.Scope, st.State)
		fmt.Fprintf(&b, "    key:     HKCR\\%s\n", st.Scope.Root())
		if st.State == model.Present {
			fmt.Fprintf(&b, "    command: %s\n", st.Command)
		}
		if st.Stale {
			stale++
			b.WriteString("    note:    points to a different or missing executable\n")
		}
	}

	if stale > 0 {
		b.WriteString("\nRun with -reinstall from an elevated prompt to refresh stale entries.\n")
	}
	return b.String()
}

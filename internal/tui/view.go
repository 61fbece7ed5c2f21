package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"copypath/internal/model"
	"copypath/internal/notify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	pathHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
				Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

func (m AppModel) View() string {
	if m.Loading && m.Statuses == nil {
		return fmt.Sprintf("\n  %s Reading context menu registration...\n", m.spinner.View())
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit, g to retry.\n", m.Err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Copy full path"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.executable))
	b.WriteString("\n\n")

	for i, st := range m.Statuses {
		line := fmt.Sprintf("%s %-8s %s", model.StatusIcon(st), st.Scope, st.State)
		if i == m.SelectedIdx {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(unselectedItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.SelectedIdx < len(m.Statuses) {
		b.WriteString("\n")
		b.WriteString(m.renderDetails(m.Statuses[m.SelectedIdx]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m AppModel) renderDetails(st model.ScopeStatus) string {
	var d strings.Builder
	fmt.Fprintf(&d, "Scope:   %s (HKCR\\%s)\n", st.Scope, st.Scope.Root())
	fmt.Fprintf(&d, "State:   %s", st.State)

	if st.State == model.Present {
		fmt.Fprintf(&d, "\nCommand: %s", pathHighlightStyle.Render(st.Command))
		if st.Stale {
			d.WriteString("\n\n")
			d.WriteString(adviceStyle.Render("Points to a different or missing executable. Press r to reinstall."))
		}
	}

	width := m.WindowSize.Width - 4
	if width < 40 {
		width = 40
	}
	return detailStyle.Width(width).Render(d.String())
}

func (m AppModel) renderStatusLine() string {
	if m.Busy {
		return m.spinner.View() + " Working..."
	}
	last, ok := m.Outcome.Last()
	if !ok {
		return dimStyle.Render("Changes need an elevated (administrator) terminal.")
	}
	switch last.Kind {
	case notify.KindSuccess:
		return successStyle.Render(last.Message)
	case notify.KindWarning:
		return adviceStyle.Render(last.Message)
	default:
		return errorStyle.Render(last.Message)
	}
}

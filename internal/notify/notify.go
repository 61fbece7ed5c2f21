// Package notify reports the outcome of an operation to the user.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier is the only channel outcomes are reported on.
type Notifier interface {
	ReportSuccess(message string)
	ReportError(message string)
	ReportWarning(message string)
}

// Message titles, shared by the console and dialog notifiers.
const (
	TitleSuccess = "Success!"
	TitleError   = "Error"
	TitleWarning = "Warning"
)

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")) // Green

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")) // Orange
)

// Console prints outcomes as styled lines on a terminal.
type Console struct {
	Out io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) print(style lipgloss.Style, title, message string) {
	fmt.Fprintf(c.Out, "%s %s\n", style.Render(title), message)
}

// ReportSuccess implements Notifier.
func (c *Console) ReportSuccess(message string) { c.print(successStyle, TitleSuccess, message) }

// ReportError implements Notifier.
func (c *Console) ReportError(message string) { c.print(errorStyle, TitleError, message) }

// ReportWarning implements Notifier.
func (c *Console) ReportWarning(message string) { c.print(warningStyle, TitleWarning, message) }

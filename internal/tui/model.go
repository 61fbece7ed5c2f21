package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"copypath/internal/model"
	"copypath/internal/notify"
)

// Service is what the screen drives. *installer.Installer implements it.
type Service interface {
	Install(executablePath string) error
	Remove() error
	Reinstall(executablePath string) error
	Status(currentExecutable string) ([]model.ScopeStatus, error)
}

// keyMap lists the bindings shown by the help bar.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Install   key.Binding
	Remove    key.Binding
	Reinstall key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Install, k.Remove, k.Reinstall, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Install, k.Remove, k.Reinstall},
		{k.Help, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Install:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
		Remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Reinstall: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reinstall")),
		Refresh:   key.NewBinding(key.WithKeys("g", "f5"), key.WithHelp("g", "refresh")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Statuses []model.ScopeStatus
	Loading  bool
	Busy     bool // An install/remove is in flight; keys are ignored
	Err      error

	// Outcome of the last operation, as the dispatcher would report it
	Outcome *notify.Recorder

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Wiring
	service    Service
	executable string

	// Components
	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// InitialModel returns the initial state.
func InitialModel(svc Service, executable string) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return AppModel{
		Loading:    true,
		Outcome:    &notify.Recorder{},
		service:    svc,
		executable: executable,
		keys:       defaultKeys(),
		help:       help.New(),
		spinner:    sp,
	}
}

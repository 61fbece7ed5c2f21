package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"copypath/internal/dispatch"
	"copypath/internal/log"
	"copypath/internal/model"
)

// MsgStatusReady carries a fresh read of every scope.
type MsgStatusReady []model.ScopeStatus

// MsgError indicates the status could not be read.
type MsgError error

// MsgOpDone reports a finished install/remove/reinstall.
type MsgOpDone struct {
	Action dispatch.Action
	Err    error
}

// Init starts the first status read.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.statusCmd())
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgStatusReady:
		m.Loading = false
		m.Err = nil
		m.Statuses = []model.ScopeStatus(msg)
		if m.SelectedIdx >= len(m.Statuses) {
			m.SelectedIdx = 0
		}
		return m, nil

	case MsgError:
		m.Loading = false
		m.Err = msg
		return m, nil

	case MsgOpDone:
		m.Busy = false
		m.record(msg)
		return m, m.statusCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.Busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.SelectedIdx < len(m.Statuses)-1 {
			m.SelectedIdx++
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Refresh):
		m.Loading = true
		return m, m.statusCmd()
	case key.Matches(msg, m.keys.Install):
		return m.start(dispatch.ActionInstall)
	case key.Matches(msg, m.keys.Remove):
		return m.start(dispatch.ActionRemove)
	case key.Matches(msg, m.keys.Reinstall):
		return m.start(dispatch.ActionReinstall)
	}
	return m, nil
}

// start runs one operation in the background; only one runs at a time.
func (m AppModel) start(action dispatch.Action) (tea.Model, tea.Cmd) {
	m.Busy = true
	log.Info(log.CatUI, "operation started", "action", action)
	return m, tea.Batch(m.spinner.Tick, m.opCmd(action))
}

// record stores the outcome using the same wording as the command line.
func (m *AppModel) record(msg MsgOpDone) {
	m.Outcome.Reset()
	if !dispatch.Report(m.Outcome, msg.Err) {
		return
	}
	if msg.Action == dispatch.ActionRemove {
		m.Outcome.ReportSuccess(dispatch.MsgRemoved)
	} else {
		m.Outcome.ReportSuccess(dispatch.MsgInstalled)
	}
}

func (m AppModel) statusCmd() tea.Cmd {
	svc, exe := m.service, m.executable
	return func() tea.Msg {
		statuses, err := svc.Status(exe)
		if err != nil {
			return MsgError(err)
		}
		return MsgStatusReady(statuses)
	}
}

func (m AppModel) opCmd(action dispatch.Action) tea.Cmd {
	svc, exe := m.service, m.executable
	return func() tea.Msg {
		var err error
		switch action {
		case dispatch.ActionInstall:
			err = svc.Install(exe)
		case dispatch.ActionRemove:
			err = svc.Remove()
		case dispatch.ActionReinstall:
			err = svc.Reinstall(exe)
		}
		return MsgOpDone{Action: action, Err: err}
	}
}

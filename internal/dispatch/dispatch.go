// Package dispatch turns the single positional argument into an action and
// reports its outcome.
package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"copypath/internal/clipboard"
	"copypath/internal/log"
	"copypath/internal/model"
	"copypath/internal/notify"
)

// Action is what one invocation does.
type Action int

const (
	ActionInstall Action = iota
	ActionReinstall
	ActionRemove
	ActionInvalid
	ActionCopy
)

func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionReinstall:
		return "reinstall"
	case ActionRemove:
		return "remove"
	case ActionInvalid:
		return "invalid"
	case ActionCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Option names, given on the command line with a single leading dash.
const (
	OptionReinstall = "reinstall"
	OptionRemove    = "remove"
)

// User-facing messages.
const (
	MsgInstalled      = "The copy path link has now been installed!"
	MsgRemoved        = "The copy path link has now been removed!"
	MsgUnknownError   = "An unknown error occurred"
	MsgAdminRequired  = "To install the application correctly, you must give admin rights to the application"
	MsgInvalidCommand = "Invalid command option, please see the github page"
)

// Command is a parsed invocation.
type Command struct {
	Action Action
	Option string // Text after the dash, for dash-prefixed arguments
	Path   string // Clipboard text, for ActionCopy
}

// Parse maps the positional arguments to a Command. Only the first argument
// counts.
func Parse(args []string) Command {
	if len(args) == 0 {
		return Command{Action: ActionInstall}
	}

	first := args[0]
	if !strings.HasPrefix(first, "-") {
		return Command{Action: ActionCopy, Path: first}
	}

	option := first[1:]
	switch option {
	case OptionReinstall:
		return Command{Action: ActionReinstall, Option: option}
	case OptionRemove:
		return Command{Action: ActionRemove, Option: option}
	default:
		return Command{Action: ActionInvalid, Option: option}
	}
}

// Installer is the subset of *installer.Installer the dispatcher uses.
type Installer interface {
	Install(executablePath string) error
	Remove() error
}

// Dispatcher routes a parsed command and reports the outcome on Notifier.
type Dispatcher struct {
	Installer  Installer
	Clipboard  clipboard.Writer
	Notifier   notify.Notifier
	Executable func() (string, error) // Resolves the path embedded in the command template
}

// Run parses args, performs the action and reports it. The returned Command
// tells which branch was taken; outcomes are only reported, never returned.
func (d *Dispatcher) Run(args []string) Command {
	cmd := Parse(args)
	if len(args) > 1 {
		log.Debug(log.CatDispatch, "ignoring extra arguments", "count", len(args)-1)
	}
	log.Info(log.CatDispatch, "dispatch", "action", cmd.Action, "option", cmd.Option)

	switch cmd.Action {
	case ActionInstall:
		if d.report(d.install()) {
			d.Notifier.ReportSuccess(MsgInstalled)
		}
	case ActionReinstall:
		if !d.report(d.Installer.Remove()) {
			return cmd
		}
		if d.report(d.install()) {
			d.Notifier.ReportSuccess(MsgInstalled)
		}
	case ActionRemove:
		if d.report(d.Installer.Remove()) {
			d.Notifier.ReportSuccess(MsgRemoved)
		}
	case ActionInvalid:
		log.Warn(log.CatDispatch, "invalid command", "error", fmt.Errorf("-%s: %w", cmd.Option, model.ErrInvalidCommand))
		d.Notifier.ReportWarning(MsgInvalidCommand)
	case ActionCopy:
		if err := d.Clipboard.WriteText(cmd.Path); err != nil {
			log.ErrorErr(log.CatDispatch, "clipboard write failed", err)
			d.Notifier.ReportError(MsgUnknownError)
		}
	}
	return cmd
}

func (d *Dispatcher) install() error {
	exe, err := d.Executable()
	if err != nil {
		return err
	}
	return d.Installer.Install(exe)
}

func (d *Dispatcher) report(err error) bool {
	return Report(d.Notifier, err)
}

// Report turns a failure into a notification on n and says whether err was
// nil. Missing elevation gets its own warning; everything else is a generic
// error.
func Report(n notify.Notifier, err error) bool {
	if err == nil {
		return true
	}
	log.ErrorErr(log.CatDispatch, "operation failed", err)
	if errors.Is(err, model.ErrPrivilegeRequired) {
		n.ReportWarning(MsgAdminRequired)
	} else {
		n.ReportError(MsgUnknownError)
	}
	return false
}

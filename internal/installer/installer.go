// Package installer registers and unregisters the context menu entry across
// every supported shell scope.
package installer

import (
	"errors"
	"fmt"
	"strings"

	"copypath/internal/log"
	"copypath/internal/model"
	"copypath/internal/privilege"
)

// Entries is the per-scope entry manager the installer drives.
// *menu.Manager implements it.
type Entries interface {
	Exists(scope model.ShellScope) (bool, error)
	Create(scope model.ShellScope, executablePath string) error
	Delete(scope model.ShellScope) error
	Command(scope model.ShellScope) (string, error)
}

// Installer orchestrates Entries across scopes behind an elevation gate.
type Installer struct {
	entries Entries
	checker privilege.Checker
	scopes  []model.ShellScope
}

// New returns an Installer covering model.AllScopes.
func New(entries Entries, checker privilege.Checker) *Installer {
	return &Installer{
		entries: entries,
		checker: checker,
		scopes:  model.AllScopes,
	}
}

// Scopes returns the scopes handled, in install order.
func (in *Installer) Scopes() []model.ShellScope {
	return in.scopes
}

func (in *Installer) requireElevation(op string) error {
	if !in.checker.IsElevated() {
		log.Warn(log.CatInstall, "not elevated", "op", op)
		return fmt.Errorf("%s: %w", op, model.ErrPrivilegeRequired)
	}
	return nil
}

// Install creates the entry in every scope, files first. A scope failure
// stops the sequence and removes whatever this call created, so the store
// ends up either fully installed or as it was. Entries that already existed
// are never removed. If the rollback itself fails the error says so and the
// caller must assume a partial install.
func (in *Installer) Install(executablePath string) error {
	if err := in.requireElevation("install"); err != nil {
		return err
	}
	if err := requireExecutable("install", executablePath); err != nil {
		return err
	}

	var created []model.ShellScope
	for _, scope := range in.scopes {
		existed, err := in.entries.Exists(scope)
		if err != nil {
			return in.rollback(created, fmt.Errorf("install: %w", err))
		}
		if err := in.entries.Create(scope, executablePath); err != nil {
			return in.rollback(created, fmt.Errorf("install: %w", err))
		}
		if !existed {
			created = append(created, scope)
		}
	}

	log.Info(log.CatInstall, "installed", "executable", executablePath, "scopes", len(in.scopes))
	return nil
}

func requireExecutable(op, executablePath string) error {
	if strings.TrimSpace(executablePath) == "" {
		return fmt.Errorf("%s: %w", op, model.ErrInvalidExecutable)
	}
	return nil
}

func (in *Installer) rollback(created []model.ShellScope, cause error) error {
	log.ErrorErr(log.CatInstall, "install failed, rolling back", cause, "created", len(created))
	for i := len(created) - 1; i >= 0; i-- {
		if err := in.entries.Delete(created[i]); err != nil {
			log.ErrorErr(log.CatInstall, "rollback failed", err, "scope", created[i])
			cause = errors.Join(cause, fmt.Errorf("rollback %s: %w", created[i], err))
		}
	}
	return cause
}

// Remove deletes the entry from every scope, files first, stopping at the
// first failure. Removing when nothing is installed succeeds.
func (in *Installer) Remove() error {
	if err := in.requireElevation("remove"); err != nil {
		return err
	}

	for _, scope := range in.scopes {
		if err := in.entries.Delete(scope); err != nil {
			log.ErrorErr(log.CatInstall, "remove failed", err, "scope", scope)
			return fmt.Errorf("remove: %w", err)
		}
	}

	log.Info(log.CatInstall, "removed", "scopes", len(in.scopes))
	return nil
}

// Reinstall removes then installs, refreshing the embedded executable path.
// A failed removal stops before anything is installed, and an unusable
// executable path is rejected before anything is removed.
func (in *Installer) Reinstall(executablePath string) error {
	if err := requireExecutable("reinstall", executablePath); err != nil {
		return err
	}
	if err := in.Remove(); err != nil {
		return err
	}
	return in.Install(executablePath)
}

// Status reads the entry of every scope. It needs no elevation.
// currentExecutable is used to flag entries pointing elsewhere.
func (in *Installer) Status(currentExecutable string) ([]model.ScopeStatus, error) {
	statuses := make([]model.ScopeStatus, 0, len(in.scopes))
	for _, scope := range in.scopes {
		st := model.ScopeStatus{Scope: scope, State: model.Absent}

		present, err := in.entries.Exists(scope)
		if err != nil {
			return nil, fmt.Errorf("status: %w", err)
		}
		if present {
			st.State = model.Present
			cmd, err := in.entries.Command(scope)
			if err != nil {
				return nil, fmt.Errorf("status: %w", err)
			}
			st.Command = cmd
			st.Executable = model.ExecutableFromCommand(cmd)
			st.Stale = st.Executable == "" ||
				(currentExecutable != "" && !model.SameExecutable(st.Executable, currentExecutable)) ||
				!model.FileExists(st.Executable)
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

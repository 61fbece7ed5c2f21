// Package menu manages the single named context menu entry under each shell
// scope of the store.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"copypath/internal/log"
	"copypath/internal/model"
	"copypath/internal/store"
)

// Config names the entry and where it lives. Nothing in the manager reads
// globals, so tests can point it at any namespace.
type Config struct {
	EntryName  string                      // Display name of the menu entry
	CommandKey string                      // Child key holding the command template
	Roots      map[model.ShellScope]string // Shell subtree per scope
}

// DefaultConfig is the layout Explorer reads.
func DefaultConfig() Config {
	roots := make(map[model.ShellScope]string, len(model.AllScopes))
	for _, s := range model.AllScopes {
		roots[s] = s.Root()
	}
	return Config{
		EntryName:  "Copy full path",
		CommandKey: "Command",
		Roots:      roots,
	}
}

// Manager creates, detects and deletes the menu entry. It caches nothing:
// every call re-reads the store.
type Manager struct {
	store store.Store
	cfg   Config
}

// NewManager returns a Manager over s.
func NewManager(s store.Store, cfg Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

func (m *Manager) root(scope model.ShellScope) (string, error) {
	root, ok := m.cfg.Roots[scope]
	if !ok || root == "" {
		return "", fmt.Errorf("%s: no root configured: %w", scope, model.ErrScopeUnavailable)
	}
	return root, nil
}

func (m *Manager) open(scope model.ShellScope, writable bool) (store.Key, error) {
	root, err := m.root(scope)
	if err != nil {
		return nil, err
	}
	k, err := m.store.Open(root, writable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", scope, model.ErrScopeUnavailable, err)
	}
	return k, nil
}

func (m *Manager) hasEntry(shell store.Key) (bool, error) {
	names, err := shell.SubKeyNames()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if strings.EqualFold(n, m.cfg.EntryName) {
			return true, nil
		}
	}
	return false, nil
}

// Exists reports whether the entry is registered under scope.
func (m *Manager) Exists(scope model.ShellScope) (bool, error) {
	shell, err := m.open(scope, false)
	if err != nil {
		return false, err
	}
	defer shell.Close()

	return m.hasEntry(shell)
}

// Create registers the entry under scope with a command invoking
// executablePath. An existing entry is left untouched, even if it points at
// another executable.
//
// If a step after the entry key was created fails, the half-built entry is
// removed again before returning the error.
func (m *Manager) Create(scope model.ShellScope, executablePath string) error {
	if strings.TrimSpace(executablePath) == "" {
		return fmt.Errorf("%s: %w", scope, model.ErrInvalidExecutable)
	}
	shell, err := m.open(scope, true)
	if err != nil {
		return err
	}
	defer shell.Close()

	present, err := m.hasEntry(shell)
	if err != nil {
		return fmt.Errorf("%s: %w", scope, err)
	}
	if present {
		log.Debug(log.CatMenu, "entry already present", "scope", scope)
		return nil
	}

	if err := m.build(shell, executablePath); err != nil {
		log.ErrorErr(log.CatMenu, "create failed", err, "scope", scope)
		if cleanupErr := shell.DeleteSubKeyTree(m.cfg.EntryName); cleanupErr != nil {
			log.ErrorErr(log.CatMenu, "partial entry left behind", cleanupErr, "scope", scope)
			err = errors.Join(err, fmt.Errorf("remove partial entry: %w", cleanupErr))
		}
		return fmt.Errorf("%s: %w", scope, err)
	}

	log.Info(log.CatMenu, "entry created", "scope", scope, "executable", executablePath)
	return nil
}

// build creates entry -> Command -> default value, closing each handle.
func (m *Manager) build(shell store.Key, executablePath string) error {
	entry, err := shell.CreateSubKey(m.cfg.EntryName)
	if err != nil {
		return err
	}
	defer entry.Close()

	cmd, err := entry.CreateSubKey(m.cfg.CommandKey)
	if err != nil {
		return err
	}
	defer cmd.Close()

	return cmd.SetDefaultValue(model.CommandTemplate(executablePath))
}

// Delete removes the entry and everything below it. Absent entries are a
// no-op success.
func (m *Manager) Delete(scope model.ShellScope) error {
	shell, err := m.open(scope, true)
	if err != nil {
		return err
	}
	defer shell.Close()

	present, err := m.hasEntry(shell)
	if err != nil {
		return fmt.Errorf("%s: %w", scope, err)
	}
	if !present {
		log.Debug(log.CatMenu, "entry already absent", "scope", scope)
		return nil
	}

	if err := shell.DeleteSubKeyTree(m.cfg.EntryName); err != nil {
		return fmt.Errorf("%s: %w", scope, err)
	}

	log.Info(log.CatMenu, "entry deleted", "scope", scope)
	return nil
}

// Command returns the stored command template, or "" if the entry or its
// Command key is missing.
func (m *Manager) Command(scope model.ShellScope) (string, error) {
	root, err := m.root(scope)
	if err != nil {
		return "", err
	}
	present, err := m.Exists(scope)
	if err != nil || !present {
		return "", err
	}

	k, err := m.store.Open(root+`\`+m.cfg.EntryName+`\`+m.cfg.CommandKey, false)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", scope, err)
	}
	defer k.Close()

	return k.DefaultValue()
}

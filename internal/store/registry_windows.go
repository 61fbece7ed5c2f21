//go:build windows

package store

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"copypath/internal/log"
	"copypath/internal/model"
)

// Registry is the Store backed by HKEY_CLASSES_ROOT.
type Registry struct {
	root registry.Key
}

// NewRegistry returns a Store rooted at HKEY_CLASSES_ROOT.
func NewRegistry() *Registry {
	return &Registry{root: registry.CLASSES_ROOT}
}

const (
	readAccess  = registry.QUERY_VALUE | registry.ENUMERATE_SUB_KEYS
	writeAccess = registry.READ | registry.WRITE
)

func access(writable bool) uint32 {
	if writable {
		return writeAccess
	}
	return readAccess
}

// Open implements Store.
func (r *Registry) Open(path string, writable bool) (Key, error) {
	k, err := registry.OpenKey(r.root, path, access(writable))
	if err != nil {
		log.Debug(log.CatStore, "open failed", "path", path, "writable", writable, "error", err)
		return nil, fmt.Errorf("open HKCR\\%s: %v: %w", path, err, ErrUnavailable)
	}
	return &regKey{key: k, path: path}, nil
}

type regKey struct {
	key  registry.Key
	path string
}

// writeErr maps access-denied failures to model.ErrWriteDenied.
func writeErr(op, path string, err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("%s HKCR\\%s: %v: %w", op, path, err, model.ErrWriteDenied)
	}
	return fmt.Errorf("%s HKCR\\%s: %w", op, path, err)
}

func (k *regKey) SubKeyNames() ([]string, error) {
	names, err := k.key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("list HKCR\\%s: %w", k.path, err)
	}
	return names, nil
}

func (k *regKey) CreateSubKey(name string) (Key, error) {
	target := joinPath(k.path, name)
	child, _, err := registry.CreateKey(k.key, name, writeAccess)
	if err != nil {
		return nil, writeErr("create", target, err)
	}
	log.Debug(log.CatStore, "key created", "path", target)
	return &regKey{key: child, path: target}, nil
}

func (k *regKey) DeleteSubKeyTree(name string) error {
	target := joinPath(k.path, name)
	if err := deleteTree(k.key, name); err != nil {
		return writeErr("delete", target, err)
	}
	log.Debug(log.CatStore, "key tree deleted", "path", target)
	return nil
}

// deleteTree removes name below parent leaves first; RegDeleteKey refuses
// keys that still have children.
func deleteTree(parent registry.Key, name string) error {
	k, err := registry.OpenKey(parent, name, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return err
	}

	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		k.Close()
		return err
	}
	for _, sub := range subkeys {
		if err := deleteTree(k, sub); err != nil {
			k.Close()
			return err
		}
	}
	k.Close()

	return registry.DeleteKey(parent, name)
}

func (k *regKey) SetDefaultValue(value string) error {
	if err := k.key.SetStringValue("", value); err != nil {
		return writeErr("set value", k.path, err)
	}
	return nil
}

func (k *regKey) DefaultValue() (string, error) {
	v, _, err := k.key.GetStringValue("")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read HKCR\\%s: %w", k.path, err)
	}
	return v, nil
}

func (k *regKey) Close() error {
	return k.key.Close()
}

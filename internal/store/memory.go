package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"copypath/internal/model"
)

// Op names a store primitive for fault injection.
type Op string

const (
	OpOpen      Op = "open"       // Any open of the path
	OpOpenWrite Op = "open-write" // Writable open of the path
	OpCreate    Op = "create"     // Creating the path as a child key
	OpDelete    Op = "delete"     // Deleting the path as a child tree
	OpSetValue  Op = "set-value"  // Setting the default value of the path
)

type memNode struct {
	name     string
	value    string
	hasValue bool
	children map[string]*memNode // keyed by lower-cased name
}

func newMemNode(name string) *memNode {
	return &memNode{name: name, children: make(map[string]*memNode)}
}

// Memory is an in-memory Store. Names are matched case-insensitively, as
// the registry does. It counts operations and open handles and can be told
// to refuse specific operations.
type Memory struct {
	mu      sync.Mutex
	root    *memNode
	denied  map[Op]map[string]bool
	ops     int
	handles int
}

// NewMemory returns a store containing the given key paths.
func NewMemory(paths ...string) *Memory {
	m := &Memory{
		root:   newMemNode(""),
		denied: make(map[Op]map[string]bool),
	}
	for _, p := range paths {
		m.ensure(p)
	}
	return m
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, `\`) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func normPath(path string) string {
	return strings.ToLower(strings.Join(splitPath(path), `\`))
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + `\` + name
}

func (m *Memory) ensure(path string) *memNode {
	n := m.root
	for _, part := range splitPath(path) {
		child, ok := n.children[strings.ToLower(part)]
		if !ok {
			child = newMemNode(part)
			n.children[strings.ToLower(part)] = child
		}
		n = child
	}
	return n
}

func (m *Memory) lookup(path string) *memNode {
	n := m.root
	for _, part := range splitPath(path) {
		child, ok := n.children[strings.ToLower(part)]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Deny makes every later op on path fail. Create and delete denials match
// the full path of the child being created or deleted.
func (m *Memory) Deny(op Op, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.denied[op] == nil {
		m.denied[op] = make(map[string]bool)
	}
	m.denied[op][normPath(path)] = true
}

// Allow lifts all denials.
func (m *Memory) Allow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied = make(map[Op]map[string]bool)
}

func (m *Memory) isDenied(op Op, path string) bool {
	return m.denied[op][normPath(path)]
}

// Ops returns how many store primitives have been called.
func (m *Memory) Ops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops
}

// OpenHandles returns how many handles are currently not closed.
func (m *Memory) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handles
}

// Exists reports whether path is present. It is not counted as an op.
func (m *Memory) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(path) != nil
}

// Value returns the default value of path. It is not counted as an op.
func (m *Memory) Value(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.lookup(path)
	if n == nil || !n.hasValue {
		return "", false
	}
	return n.value, true
}

// Children returns the sorted child names of path. It is not counted as an op.
func (m *Memory) Children(path string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.lookup(path)
	if n == nil {
		return nil
	}
	return sortedNames(n)
}

func sortedNames(n *memNode) []string {
	names := make([]string, 0, len(n.children))
	for _, c := range n.children {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}

// Open implements Store.
func (m *Memory) Open(path string, writable bool) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops++

	if m.isDenied(OpOpen, path) || (writable && m.isDenied(OpOpenWrite, path)) {
		return nil, fmt.Errorf("open %s: access denied: %w", path, ErrUnavailable)
	}
	n := m.lookup(path)
	if n == nil {
		return nil, fmt.Errorf("open %s: not found: %w", path, ErrUnavailable)
	}
	return m.newKey(path, n, writable), nil
}

func (m *Memory) newKey(path string, n *memNode, writable bool) *memKey {
	m.handles++
	return &memKey{store: m, path: path, node: n, writable: writable}
}

type memKey struct {
	store    *Memory
	path     string
	node     *memNode
	writable bool
	closed   bool
}

func (k *memKey) check(op Op, target string) error {
	if k.closed {
		return fmt.Errorf("%s %s: handle closed", op, target)
	}
	if !k.writable || k.store.isDenied(op, target) {
		return fmt.Errorf("%s %s: %w", op, target, model.ErrWriteDenied)
	}
	return nil
}

func (k *memKey) SubKeyNames() ([]string, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.ops++
	if k.closed {
		return nil, fmt.Errorf("list %s: handle closed", k.path)
	}
	return sortedNames(k.node), nil
}

func (k *memKey) CreateSubKey(name string) (Key, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.ops++

	target := joinPath(k.path, name)
	if err := k.check(OpCreate, target); err != nil {
		return nil, err
	}
	child, ok := k.node.children[strings.ToLower(name)]
	if !ok {
		child = newMemNode(name)
		k.node.children[strings.ToLower(name)] = child
	}
	return k.store.newKey(target, child, true), nil
}

func (k *memKey) DeleteSubKeyTree(name string) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.ops++

	target := joinPath(k.path, name)
	if err := k.check(OpDelete, target); err != nil {
		return err
	}
	delete(k.node.children, strings.ToLower(name))
	return nil
}

func (k *memKey) SetDefaultValue(value string) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.ops++

	if err := k.check(OpSetValue, k.path); err != nil {
		return err
	}
	k.node.value = value
	k.node.hasValue = true
	return nil
}

func (k *memKey) DefaultValue() (string, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.ops++
	if k.closed {
		return "", fmt.Errorf("read %s: handle closed", k.path)
	}
	return k.node.value, nil
}

func (k *memKey) Close() error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	if !k.closed {
		k.closed = true
		k.store.handles--
	}
	return nil
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"copypath/internal/model"
	"copypath/internal/store"
)

const exe = `C:\Tools\copypath.exe`

func newTestManager(t *testing.T) (*Manager, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(`*\shell`, `Directory\shell`)
	t.Cleanup(func() {
		require.Equal(t, 0, mem.OpenHandles(), "handles leaked")
	})
	return NewManager(mem, DefaultConfig()), mem
}

func TestExists_EmptyStore(t *testing.T) {
	m, _ := newTestManager(t)
	for _, s := range model.AllScopes {
		ok, err := m.Exists(s)
		require.NoError(t, err)
		require.False(t, ok, s.String())
	}
}

func TestExists_MissingRootIsScopeUnavailable(t *testing.T) {
	mem := store.NewMemory(`*\shell`)
	m := NewManager(mem, DefaultConfig())

	_, err := m.Exists(model.FolderScope)
	require.ErrorIs(t, err, model.ErrScopeUnavailable)
	require.ErrorIs(t, err, store.ErrUnavailable)
}

func TestExists_IgnoresCase(t *testing.T) {
	mem := store.NewMemory(`*\shell\COPY FULL PATH\command`, `Directory\shell`)
	m := NewManager(mem, DefaultConfig())

	ok, err := m.Exists(model.FileScope)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCreate_WritesEntryAndCommand(t *testing.T) {
	m, mem := newTestManager(t)

	require.NoError(t, m.Create(model.FileScope, exe))

	ok, err := m.Exists(model.FileScope)
	require.NoError(t, err)
	require.True(t, ok)

	v, found := mem.Value(`*\shell\Copy full path\Command`)
	require.True(t, found)
	require.Equal(t, `"C:\Tools\copypath.exe" "%1"`, v)

	ok, err = m.Exists(model.FolderScope)
	require.NoError(t, err)
	require.False(t, ok, "other scopes are untouched")
}

func TestCreate_IsIdempotentAndNeverOverwrites(t *testing.T) {
	m, mem := newTestManager(t)

	require.NoError(t, m.Create(model.FolderScope, exe))
	require.NoError(t, m.Create(model.FolderScope, `D:\elsewhere\copypath.exe`))

	require.Equal(t, []string{"Copy full path"}, mem.Children(`Directory\shell`))
	v, _ := mem.Value(`Directory\shell\Copy full path\Command`)
	require.Equal(t, model.CommandTemplate(exe), v)
}

func TestCreate_RootNotWritable(t *testing.T) {
	m, mem := newTestManager(t)
	mem.Deny(store.OpOpenWrite, `*\shell`)

	err := m.Create(model.FileScope, exe)
	require.ErrorIs(t, err, model.ErrScopeUnavailable)
}

func TestCreate_EmptyExecutable(t *testing.T) {
	m, mem := newTestManager(t)

	err := m.Create(model.FileScope, "")
	require.ErrorIs(t, err, model.ErrInvalidExecutable)
	require.Equal(t, 0, mem.Ops())
	require.False(t, mem.Exists(`*\shell\Copy full path`))
}

func TestCreate_EntryDenied(t *testing.T) {
	m, mem := newTestManager(t)
	mem.Deny(store.OpCreate, `*\shell\Copy full path`)

	err := m.Create(model.FileScope, exe)
	require.ErrorIs(t, err, model.ErrWriteDenied)
	require.False(t, mem.Exists(`*\shell\Copy full path`))
}

func TestCreate_CommandDeniedRemovesPartialEntry(t *testing.T) {
	m, mem := newTestManager(t)
	mem.Deny(store.OpCreate, `*\shell\Copy full path\Command`)

	err := m.Create(model.FileScope, exe)
	require.ErrorIs(t, err, model.ErrWriteDenied)
	require.False(t, mem.Exists(`*\shell\Copy full path`), "partial entry must not survive")
}

func TestCreate_ValueDeniedRemovesPartialEntry(t *testing.T) {
	m, mem := newTestManager(t)
	mem.Deny(store.OpSetValue, `*\shell\Copy full path\Command`)

	err := m.Create(model.FileScope, exe)
	require.ErrorIs(t, err, model.ErrWriteDenied)
	require.False(t, mem.Exists(`*\shell\Copy full path`))
}

func TestCreate_CleanupFailureIsReported(t *testing.T) {
	m, mem := newTestManager(t)
	mem.Deny(store.OpSetValue, `*\shell\Copy full path\Command`)
	mem.Deny(store.OpDelete, `*\shell\Copy full path`)

	err := m.Create(model.FileScope, exe)
	require.ErrorIs(t, err, model.ErrWriteDenied)
	require.Contains(t, err.Error(), "remove partial entry")
	require.True(t, mem.Exists(`*\shell\Copy full path`), "entry is left partially formed")

	cmd, err := m.Command(model.FileScope)
	require.NoError(t, err)
	require.Empty(t, cmd)
}

func TestDelete_AbsentIsNoop(t *testing.T) {
	m, mem := newTestManager(t)
	before := mem.Children(`*\shell`)

	require.NoError(t, m.Delete(model.FileScope))

	ok, err := m.Exists(model.FileScope)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, before, mem.Children(`*\shell`))
}

func TestDelete_RemovesWholeTree(t *testing.T) {
	m, mem := newTestManager(t)
	require.NoError(t, m.Create(model.FileScope, exe))

	require.NoError(t, m.Delete(model.FileScope))
	require.False(t, mem.Exists(`*\shell\Copy full path\Command`))
	require.False(t, mem.Exists(`*\shell\Copy full path`))
	require.True(t, mem.Exists(`*\shell`), "the scope root stays")
}

func TestDelete_KeepsSiblingEntries(t *testing.T) {
	mem := store.NewMemory(`*\shell\Open with Notepad\command`, `Directory\shell`)
	m := NewManager(mem, DefaultConfig())
	require.NoError(t, m.Create(model.FileScope, exe))

	require.NoError(t, m.Delete(model.FileScope))
	require.Equal(t, []string{"Open with Notepad"}, mem.Children(`*\shell`))
}

func TestDelete_RootNotWritable(t *testing.T) {
	m, mem := newTestManager(t)
	mem.Deny(store.OpOpenWrite, `Directory\shell`)

	require.ErrorIs(t, m.Delete(model.FolderScope), model.ErrScopeUnavailable)
}

func TestCommand(t *testing.T) {
	m, _ := newTestManager(t)

	cmd, err := m.Command(model.FileScope)
	require.NoError(t, err)
	require.Empty(t, cmd)

	require.NoError(t, m.Create(model.FileScope, exe))
	cmd, err = m.Command(model.FileScope)
	require.NoError(t, err)
	require.Equal(t, model.CommandTemplate(exe), cmd)
}

func TestAlternateNamespace(t *testing.T) {
	mem := store.NewMemory(`Test\files`, `Test\dirs`)
	cfg := Config{
		EntryName:  "Copy path (test)",
		CommandKey: "Command",
		Roots: map[model.ShellScope]string{
			model.FileScope:   `Test\files`,
			model.FolderScope: `Test\dirs`,
		},
	}
	m := NewManager(mem, cfg)

	require.NoError(t, m.Create(model.FolderScope, exe))
	require.True(t, mem.Exists(`Test\dirs\Copy path (test)\Command`))
	require.False(t, mem.Exists(`Directory\shell`))
}

func TestUnconfiguredScope(t *testing.T) {
	mem := store.NewMemory(`*\shell`)
	m := NewManager(mem, Config{EntryName: "x", CommandKey: "Command"})

	_, err := m.Exists(model.FileScope)
	require.ErrorIs(t, err, model.ErrScopeUnavailable)
	require.Equal(t, 0, mem.Ops(), "no store calls without a root")
}

// TestManager_Properties drives random create/delete sequences and checks
// that Exists always reflects the last mutation and that at most one entry
// ever exists per scope.
func TestManager_Properties(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		mem := store.NewMemory(`*\shell`, `Directory\shell`)
		m := NewManager(mem, DefaultConfig())
		want := map[model.ShellScope]bool{}
		firstExe := map[model.ShellScope]string{}

		steps := rapid.IntRange(1, 30).Draw(r, "steps")
		for i := 0; i < steps; i++ {
			scope := rapid.SampledFrom(model.AllScopes).Draw(r, "scope")
			if rapid.Bool().Draw(r, "create") {
				path := rapid.SampledFrom([]string{`C:\a.exe`, `C:\b.exe`}).Draw(r, "exe")
				require.NoError(r, m.Create(scope, path))
				if !want[scope] {
					firstExe[scope] = path
				}
				want[scope] = true
			} else {
				require.NoError(r, m.Delete(scope))
				want[scope] = false
			}

			for _, s := range model.AllScopes {
				ok, err := m.Exists(s)
				require.NoError(r, err)
				require.Equal(r, want[s], ok)
				require.LessOrEqual(r, len(mem.Children(s.Root())), 1)
				if want[s] {
					cmd, err := m.Command(s)
					require.NoError(r, err)
					require.Equal(r, model.CommandTemplate(firstExe[s]), cmd)
				}
			}
		}
		require.Equal(r, 0, mem.OpenHandles())
	})
}

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"copypath/internal/model"
)

func TestMemory_OpenMissingPathIsUnavailable(t *testing.T) {
	m := NewMemory(`*\shell`)

	_, err := m.Open(`Directory\shell`, false)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, 0, m.OpenHandles())
}

func TestMemory_CreateListDelete(t *testing.T) {
	m := NewMemory(`*\shell`)

	shell, err := m.Open(`*\shell`, true)
	require.NoError(t, err)

	entry, err := shell.CreateSubKey("Copy full path")
	require.NoError(t, err)
	cmd, err := entry.CreateSubKey("Command")
	require.NoError(t, err)
	require.NoError(t, cmd.SetDefaultValue(`"C:\copypath.exe" "%1"`))
	require.NoError(t, cmd.Close())
	require.NoError(t, entry.Close())

	names, err := shell.SubKeyNames()
	require.NoError(t, err)
	require.Equal(t, []string{"Copy full path"}, names)

	v, ok := m.Value(`*\shell\Copy full path\Command`)
	require.True(t, ok)
	require.Equal(t, `"C:\copypath.exe" "%1"`, v)

	require.NoError(t, shell.DeleteSubKeyTree("Copy full path"))
	require.False(t, m.Exists(`*\shell\Copy full path\Command`))
	require.False(t, m.Exists(`*\shell\Copy full path`))
	require.NoError(t, shell.Close())

	require.Equal(t, 0, m.OpenHandles(), "all handles must be released")
}

func TestMemory_NamesAreCaseInsensitive(t *testing.T) {
	m := NewMemory(`Directory\Shell\Copy Full Path`)

	require.True(t, m.Exists(`directory\shell\copy full path`))
	k, err := m.Open(`DIRECTORY\SHELL`, false)
	require.NoError(t, err)
	defer k.Close()

	names, err := k.SubKeyNames()
	require.NoError(t, err)
	require.Equal(t, []string{"Copy Full Path"}, names, "original casing is preserved")
}

func TestMemory_ReadOnlyHandleDeniesWrites(t *testing.T) {
	m := NewMemory(`*\shell`)

	k, err := m.Open(`*\shell`, false)
	require.NoError(t, err)
	defer k.Close()

	_, err = k.CreateSubKey("x")
	require.ErrorIs(t, err, model.ErrWriteDenied)
	require.ErrorIs(t, k.DeleteSubKeyTree("x"), model.ErrWriteDenied)
	require.ErrorIs(t, k.SetDefaultValue("v"), model.ErrWriteDenied)
}

func TestMemory_Deny(t *testing.T) {
	m := NewMemory(`*\shell`)
	m.Deny(OpOpenWrite, `*\shell`)

	_, err := m.Open(`*\shell`, true)
	require.ErrorIs(t, err, ErrUnavailable)

	k, err := m.Open(`*\shell`, false)
	require.NoError(t, err, "read access is unaffected")
	require.NoError(t, k.Close())

	m.Allow()
	m.Deny(OpCreate, `*\shell\Copy full path`)
	k, err = m.Open(`*\shell`, true)
	require.NoError(t, err)
	defer k.Close()

	_, err = k.CreateSubKey("copy full path")
	require.ErrorIs(t, err, model.ErrWriteDenied)
	require.False(t, m.Exists(`*\shell\Copy full path`))
}

func TestMemory_DeleteMissingChildIsNoop(t *testing.T) {
	m := NewMemory(`*\shell`)
	k, err := m.Open(`*\shell`, true)
	require.NoError(t, err)
	defer k.Close()

	require.NoError(t, k.DeleteSubKeyTree("nothing here"))
	require.Empty(t, m.Children(`*\shell`))
}

func TestMemory_DefaultValueUnset(t *testing.T) {
	m := NewMemory(`a\b`)
	k, err := m.Open(`a\b`, false)
	require.NoError(t, err)
	defer k.Close()

	v, err := k.DefaultValue()
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestMemory_CountsOps(t *testing.T) {
	m := NewMemory(`a`)
	require.Equal(t, 0, m.Ops())

	k, err := m.Open(`a`, false)
	require.NoError(t, err)
	_, _ = k.SubKeyNames()
	require.NoError(t, k.Close())

	require.Equal(t, 2, m.Ops())
}

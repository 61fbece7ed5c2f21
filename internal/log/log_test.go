package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_FormatsLevelCategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Info(CatMenu, "entry created", "scope", "files", "orphan")

	line := buf.String()
	require.Contains(t, line, "[INFO] [menu] entry created")
	require.Contains(t, line, "scope=files")
	require.Contains(t, line, "orphan=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetMinLevel(LevelWarn)
	Debug(CatStore, "hidden")
	Warn(CatStore, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [store] shown")
}

func TestLog_ErrorErrAppendsError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	ErrorErr(CatInstall, "install failed", errors.New("write denied"))
	ErrorErr(CatInstall, "no error", nil)

	require.Contains(t, buf.String(), "error=write denied")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_DisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetEnabled(false)
	Error(CatUI, "dropped")
	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsSafe(t *testing.T) {
	SetOutput(nil)
	require.NotPanics(t, func() { Info(CatDispatch, "nobody listening") })
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copypath.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatDispatch, "hello")
	cleanup()
	SetOutput(nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [dispatch] hello")
}

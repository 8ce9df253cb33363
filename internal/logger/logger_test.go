package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	resetLogger(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("pending %s", "cv-1")
	Info("loaded %d cvs", 3)
	Warn("delete failed: %v", "boom")

	assert.Equal(t, "[DEBUG] pending cv-1\n[INFO] loaded 3 cvs\n[WARN] delete failed: boom\n", buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Delete")

	assert.Equal(t, "\n=== Delete ===\n", buf.String())
}

func TestToFile(t *testing.T) {
	resetLogger(t)
	SetVerbose(true)

	path := filepath.Join(t.TempDir(), "logs", "cvdash.log")
	restore, err := ToFile(path)
	require.NoError(t, err)

	Info("written to file")
	require.NoError(t, restore())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] written to file\n", string(data))
}

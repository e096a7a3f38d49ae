package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextToStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Options{Stderr: &buf})
	defer closeFn()

	logger.Info("entry recorded", "id", "e1")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=\"entry recorded\"")
	assert.Contains(t, out, "id=e1")
	assert.NotContains(t, out, "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Options{Stderr: &buf, Verbose: true})

	logger.Debug("store opened")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Options{Stderr: &buf, Format: "json"})

	logger.Warn("collection corrupt, using default", "key", "stock_entries")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "stock_entries", rec["key"])
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smartstock.log")
	var stderr bytes.Buffer

	logger, closeFn := New(Options{File: path, Stderr: &stderr})
	logger.Info("backup imported")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backup imported")
	assert.Empty(t, stderr.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Info("nothing") })
}

func TestNew_QuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Options{Stderr: &buf, Quiet: true})

	logger.Info("entry recorded")
	logger.Warn("collection corrupt, using default")

	assert.NotContains(t, buf.String(), "entry recorded")
	assert.Contains(t, buf.String(), "using default")
}

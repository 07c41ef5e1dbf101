package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_Disabled(t *testing.T) {
	logFile := setupLogging(false)
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_Enabled(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	log.Printf("hello from the test")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(logDir)
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestRotateLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, rotateLog(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "rotated file must leave the active name free")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRotateLog_FailureIsReported(t *testing.T) {
	// Neither rename nor truncate can succeed on a missing file
	missing := filepath.Join(t.TempDir(), "gone", logFileName)
	err := rotateLog(missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())
}

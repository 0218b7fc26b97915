package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/config"
)

// execute runs the root command with args on fresh flag values and an
// empty home directory, returning the command error.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	flagConfig = ""
	flagDifficulty = ""
	flagSeed = 0
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	flagLogLevel = "info"
	flagLogFile = ""
	flagPlain = false
	flagDefaults = false
	flagScoresLimit = 10
	flagScoresClear = false
	flagHostKey = ""

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// notADir returns a path whose parent is a regular file.
func notADir(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	return filepath.Join(file, "child")
}

func TestConfigRejectsUnknownDifficulty(t *testing.T) {
	err := execute(t, "config", "--difficulty", "insane")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPlayRejectsBadLogLevel(t *testing.T) {
	err := execute(t, "play", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestScoresReportsOpenError(t *testing.T) {
	err := execute(t, "scores", "--db", notADir(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening scores database")
}

func TestScoresOnEmptyDatabase(t *testing.T) {
	require.NoError(t, execute(t, "scores"))
	require.NoError(t, execute(t, "scores", "--clear"))
}

func TestServeFailureReachesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "serve.log")

	err := execute(t, "serve",
		"--log-file", logFile,
		"--host-key", notADir(t),
		"--db", filepath.Join(t.TempDir(), "scores.db"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating server")

	data, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "creating server")
}

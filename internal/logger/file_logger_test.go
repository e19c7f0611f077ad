package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileName(t *testing.T) {
	day := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "coinchange_binary-cubic_2024-03-09.log", LogFileName("binary-cubic", day))
	assert.Equal(t, "coinchange_default_2024-03-09.log", LogFileName("  ", day))
}

func TestLoggerSession(t *testing.T) {
	dir := t.TempDir()

	l, err := NewLogger(dir, "count-weighted")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(l.GetLogPath()))

	l.Info("starting %d targets", 3)
	l.Warning("target %d unreachable", 200)
	l.LogError("report", errors.New("disk full"))
	l.LogGeneration(37, 5, 23, 41.5, 37)
	l.LogRunCompletion(37, []int{2, 0, 1, 1}, 37, 23, 199, "exact", 1500*time.Millisecond)
	require.NoError(t, l.Close())

	// closing twice is a no-op and late writes are dropped
	require.NoError(t, l.Close())
	l.Info("after close")

	data, err := os.ReadFile(l.GetLogPath())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "COIN CHANGE OPTIMIZATION SESSION STARTED")
	assert.Contains(t, content, "Variant: count-weighted")
	assert.Contains(t, content, "[INFO] starting 3 targets")
	assert.Contains(t, content, "[WARN] target 200 unreachable")
	assert.Contains(t, content, "[ERROR] report: disk full")
	assert.Contains(t, content, "[GEN] target=37 gen=5 best=23.0000 mean=41.5000 total=37")
	assert.Contains(t, content, "TARGET 37 COMPLETED")
	assert.Contains(t, content, "Genes: [2 0 1 1]")
	assert.Contains(t, content, "Elapsed: 1.5s")
	assert.Contains(t, content, "SESSION ENDED")
	assert.NotContains(t, content, "after close")
}

func TestLoggerAppendsToExistingFile(t *testing.T) {
	dir := t.TempDir()

	first, err := NewLogger(dir, "binary-linear")
	require.NoError(t, err)
	first.Info("first session")
	require.NoError(t, first.Close())

	second, err := NewLogger(dir, "binary-linear")
	require.NoError(t, err)
	second.Info("second session")
	require.NoError(t, second.Close())

	require.Equal(t, first.GetLogPath(), second.GetLogPath())
	data, err := os.ReadFile(second.GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "first session")
	assert.Contains(t, string(data), "second session")
}

package common

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagValidator(t *testing.T) {
	v := NewFlagValidator().
		ValidateInt("population", 10, 2, 100).
		ValidateFloat("mutation-rate", 0.05, 0, 1).
		ValidateChoice("variant", "binary-cubic", []string{"binary-cubic", "count-weighted"})
	assert.False(t, v.HasErrors())

	v.ValidateInt("generations", 0, 1, 10).
		ValidateChoice("variant", "bogus", []string{"binary-cubic"}).
		ValidateFile("config", filepath.Join(t.TempDir(), "missing.json"), false)
	require.True(t, v.HasErrors())

	var buf bytes.Buffer
	v.PrintErrors(&buf)
	assert.Equal(t, 3, strings.Count(buf.String(), "•"))
	assert.Contains(t, buf.String(), "generations must be between 1 and 10, got: 0")
	assert.Contains(t, buf.String(), "variant must be one of [binary-cubic], got: bogus")
	assert.Contains(t, buf.String(), "config file does not exist")
}

func TestFlagValidatorRequiredFile(t *testing.T) {
	v := NewFlagValidator().ValidateFile("config", "", true)
	require.True(t, v.HasErrors())

	var buf bytes.Buffer
	v.PrintErrors(&buf)
	assert.Contains(t, buf.String(), "Flag validation errors")
	assert.Contains(t, buf.String(), "• config is required")

	buf.Reset()
	NewFlagValidator().PrintErrors(&buf)
	assert.Empty(t, buf.String())
}

func TestCheckHelpAndVersion(t *testing.T) {
	var buf bytes.Buffer
	fs := flag.NewFlagSet("coinchange", flag.ContinueOnError)
	fs.SetOutput(&buf)
	cf := RegisterCommonFlags(fs)
	formatter := NewUsageFormatter("Coin Change GA", "test").
		AddExample("coinchange -targets 37", "Single target")

	require.NoError(t, fs.Parse([]string{}))
	assert.False(t, CheckHelpAndVersion(fs, cf, formatter))

	require.NoError(t, fs.Parse([]string{"-help"}))
	assert.True(t, CheckHelpAndVersion(fs, cf, formatter))
	assert.Contains(t, buf.String(), "USAGE:")
	assert.Contains(t, buf.String(), "coinchange -targets 37")
	assert.Contains(t, buf.String(), "-no-emojis")

	buf.Reset()
	require.NoError(t, fs.Parse([]string{"-version"}))
	assert.True(t, CheckHelpAndVersion(fs, cf, formatter))
	assert.Contains(t, buf.String(), "Coin Change GA v"+ProjectVersion)
}

func TestLoggerModes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Info("run %d", 1)
	logger.Debug("hidden")
	assert.Contains(t, buf.String(), "ℹ️  run 1")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	cf := RegisterCommonFlags(fs)
	require.NoError(t, fs.Parse([]string{"-no-emojis", "-silent", "-verbose"}))
	SetupLogger(logger, cf)

	logger.Info("quiet")
	logger.Error("boom")
	logger.Debug("dbg")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "[ERROR] boom")
	assert.Contains(t, buf.String(), "[DEBUG] dbg")
}

func TestEnvLoaderLeavesProcessEnvironmentAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COINGA_TEST_SEED=42\nCOINGA_TEST_VARIANT=count-weighted\nCOINGA_TEST_BLANK=\n"), 0o644))

	loader := NewEnvLoader(NewLoggerWithWriter(&bytes.Buffer{}))

	values, err := loader.ReadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, "42", values["COINGA_TEST_SEED"])

	t.Setenv("COINGA_TEST_VARIANT", "binary-linear")
	require.NoError(t, loader.Load(path))

	seed, ok := loader.Lookup("COINGA_TEST_SEED")
	assert.True(t, ok)
	assert.Equal(t, "42", seed)
	_, inProcess := os.LookupEnv("COINGA_TEST_SEED")
	assert.False(t, inProcess)

	variant, _ := loader.Lookup("COINGA_TEST_VARIANT")
	assert.Equal(t, "binary-linear", variant)

	_, ok = loader.Lookup("COINGA_TEST_MISSING")
	assert.False(t, ok)

	assert.Equal(t, "42", loader.GetEnvWithDefault("COINGA_TEST_SEED", "0"))
	assert.Equal(t, "fallback", loader.GetEnvWithDefault("COINGA_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", loader.GetEnvWithDefault("COINGA_TEST_MISSING", "fallback"))
}

func TestEnvLoaderMissingFile(t *testing.T) {
	loader := NewEnvLoader(NewLoggerWithWriter(&bytes.Buffer{}))
	assert.NoError(t, loader.Load(filepath.Join(t.TempDir(), "nope.env")))

	_, ok := loader.Lookup("COINGA_TEST_SEED")
	assert.False(t, ok)
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "coinchange")
	assert.Contains(t, buf.String(), "coinchange v"+ProjectVersion)
	assert.Contains(t, buf.String(), "Build: "+GetFullVersion())
}

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/coinchange-ga/cmd/common"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
)

func parseFlags(t *testing.T, args ...string) (*flag.FlagSet, *CLIFlags) {
	t.Helper()
	fs := flag.NewFlagSet("coinchange", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	flags := NewCLIFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs, flags
}

func TestBuildOverridesOnlyExplicitFlags(t *testing.T) {
	fs, flags := parseFlags(t)

	overrides, err := BuildOverrides(fs, flags)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestBuildOverrides(t *testing.T) {
	fs, flags := parseFlags(t,
		"-denominations", "1,5,10,25",
		"-targets", "37, 42",
		"-population", "50",
		"-mutation-rate", "0.1",
		"-variant", "count-weighted",
		"-seed", "7",
		"-formats", "CSV, json",
		"-no-history",
	)

	overrides, err := BuildOverrides(fs, flags)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 5, 10, 25}, overrides["denominations"])
	assert.Equal(t, []int{37, 42}, overrides["targets"])
	assert.Equal(t, 50, overrides["population_size"])
	assert.Equal(t, 0.1, overrides["mutation_rate"])
	assert.Equal(t, "count-weighted", overrides["variant"])
	assert.Equal(t, int64(7), overrides["seed"])
	assert.Equal(t, []string{"csv", "json"}, overrides["formats"])
	assert.Equal(t, false, overrides["keep_history"])

	cfg, err := config.NewRunConfigManager().LoadConfig("", func(string) (string, bool) { return "", false }, overrides)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.PopulationSize)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.False(t, cfg.KeepHistory)
}

func TestBuildOverridesConsoleOnly(t *testing.T) {
	fs, flags := parseFlags(t, "-formats", "csv,xlsx", "-console-only")

	overrides, err := BuildOverrides(fs, flags)
	require.NoError(t, err)
	assert.Equal(t, []string{config.FormatConsole}, overrides["formats"])
}

func TestBuildOverridesBadList(t *testing.T) {
	fs, flags := parseFlags(t, "-targets", "37,abc")

	_, err := BuildOverrides(fs, flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets")
}

func validationOutput(fs *flag.FlagSet, flags *CLIFlags) (bool, string) {
	v := ValidateCLIFlags(fs, flags)
	var buf bytes.Buffer
	v.PrintErrors(&buf)
	return v.HasErrors(), buf.String()
}

func TestValidateCLIFlags(t *testing.T) {
	fs, flags := parseFlags(t, "-variant", "count-weighted", "-workers", "4")
	failed, _ := validationOutput(fs, flags)
	assert.False(t, failed)

	fs, flags = parseFlags(t, "-variant", "c")
	failed, _ = validationOutput(fs, flags)
	assert.False(t, failed)

	fs, flags = parseFlags(t, "-variant", "greedy", "-mutation-rate", "1.5", "-tolerance", "-1", "-silent", "-verbose")
	failed, out := validationOutput(fs, flags)
	require.True(t, failed)
	assert.Contains(t, out, "variant must be one of")
	assert.Contains(t, out, "mutation-rate must be between")
	assert.Contains(t, out, "tolerance must not be negative")
	assert.Contains(t, out, "silent and verbose cannot be combined")
}

func TestResolveMetricsAddr(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COINGA_METRICS_ADDR=:9191\n"), 0o644))

	env := common.NewEnvLoader(common.NewLoggerWithWriter(&bytes.Buffer{}))
	require.NoError(t, env.Load(path))

	fs, flags := parseFlags(t)
	assert.Equal(t, ":9191", ResolveMetricsAddr(fs, flags, env))

	fs, flags = parseFlags(t, "-metrics-addr", ":9090")
	assert.Equal(t, ":9090", ResolveMetricsAddr(fs, flags, env))

	empty := common.NewEnvLoader(common.NewLoggerWithWriter(&bytes.Buffer{}))
	fs, flags = parseFlags(t)
	assert.Equal(t, "", ResolveMetricsAddr(fs, flags, empty))
}

func TestBuildOverridesTargetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte("target\n37\n42\n10000\n"), 0o644))

	fs, flags := parseFlags(t, "-targets-file", path)
	failed, _ := validationOutput(fs, flags)
	require.False(t, failed)

	overrides, err := BuildOverrides(fs, flags)
	require.NoError(t, err)
	assert.Equal(t, []int{37, 42, 10000}, overrides["targets"])

	fs, flags = parseFlags(t, "-targets-file", path, "-targets", "1")
	failed, out := validationOutput(fs, flags)
	assert.True(t, failed)
	assert.Contains(t, out, "cannot be combined")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

func envMap(values map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestNewDefaultRunConfig(t *testing.T) {
	cfg := NewDefaultRunConfig()

	assert.Equal(t, []int{1, 5, 10, 25, 50, 100}, cfg.Denominations)
	assert.Equal(t, optimization.DefaultTargets, cfg.Targets)
	assert.Equal(t, 200, cfg.PopulationSize)
	assert.Equal(t, 3000, cfg.Generations)
	assert.Equal(t, 0.1, cfg.MutationRate)
	assert.Equal(t, 2, cfg.EliteSize)
	assert.Equal(t, 3, cfg.TournamentSize)
	assert.Equal(t, "binary-cubic", cfg.Variant)
	assert.Equal(t, 1, cfg.Tolerance)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.True(t, cfg.HasFormat(FormatConsole))
	assert.False(t, cfg.HasFormat(FormatExcel))
	require.NoError(t, cfg.Validate())

	// defaults must not alias the package-level slices
	cfg.Denominations[0] = 99
	assert.Equal(t, 1, optimization.DefaultDenominations[0])
}

func TestRunConfigOptionsAndStrategy(t *testing.T) {
	cfg := NewDefaultRunConfig()
	cfg.Variant = "weighted"

	opts := cfg.Options()
	assert.Equal(t, optimization.GetDefaultOptions(), opts)

	strategy, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, optimization.VariantCountWeighted, strategy.Variant)
	assert.True(t, strategy.Elitism)

	cfg.Variant = "nope"
	_, err = cfg.Strategy()
	assert.Error(t, err)
}

func TestRunValidatorCollectsProblems(t *testing.T) {
	cfg := NewDefaultRunConfig()
	cfg.Denominations = []int{1, 0}
	cfg.Targets = []int{-3}
	cfg.MutationRate = 1.5
	cfg.Formats = []string{"pdf"}

	err := NewRunValidator().Validate(cfg)
	require.Error(t, err)
	assert.True(t, opterrors.IsCategory(err, opterrors.ErrorCategoryValidation))
	assert.Contains(t, err.Error(), "denomination 1 must be positive")
	assert.Contains(t, err.Error(), "target 0 must be non-negative")
	assert.Contains(t, err.Error(), "mutation rate")
	assert.Contains(t, err.Error(), `"pdf"`)

	var optErr *opterrors.OptimizerError
	require.ErrorAs(t, err, &optErr)
	assert.Len(t, optErr.Context["problems"], 4)
}

func TestRunValidatorLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunConfig)
	}{
		{"empty denominations", func(c *RunConfig) { c.Denominations = nil }},
		{"no targets", func(c *RunConfig) { c.Targets = nil }},
		{"population too small", func(c *RunConfig) { c.PopulationSize = 1 }},
		{"zero generations", func(c *RunConfig) { c.Generations = 0 }},
		{"elite equals population", func(c *RunConfig) { c.EliteSize = c.PopulationSize }},
		{"tournament larger than population", func(c *RunConfig) { c.TournamentSize = c.PopulationSize + 1 }},
		{"unknown variant", func(c *RunConfig) { c.Variant = "d" }},
		{"negative exponent", func(c *RunConfig) { c.DistanceExponent = -1 }},
		{"negative shaping", func(c *RunConfig) { c.ShapingFactor = -1 }},
		{"zero workers", func(c *RunConfig) { c.Workers = 0 }},
		{"negative tolerance", func(c *RunConfig) { c.Tolerance = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultRunConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.Error(t, NewRunValidator().Validate(nil))
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"targets": [7, 8],
		"population_size": 50,
		"generations": 40,
		"variant": "binary-linear"
	}`), 0644))

	env := envMap(map[string]string{
		"COINGA_GENERATIONS": "60",
		"COINGA_FORMATS":     "CSV, json",
		"COINGA_SEED":        "42",
		"COINGA_LOG_TO_FILE": "true",
	})
	overrides := map[string]interface{}{
		"variant": "count-weighted",
	}

	cfg, err := NewRunConfigManager().LoadConfig(path, env, overrides)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 5, 10, 25, 50, 100}, cfg.Denominations) // default
	assert.Equal(t, []int{7, 8}, cfg.Targets)                        // file
	assert.Equal(t, 50, cfg.PopulationSize)                          // file
	assert.Equal(t, 60, cfg.Generations)                             // env over file
	assert.Equal(t, "count-weighted", cfg.Variant)                   // override over file
	assert.Equal(t, []string{"csv", "json"}, cfg.Formats)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.LogToFile)
}

func TestLoadConfigErrors(t *testing.T) {
	m := NewRunConfigManager()

	_, err := m.LoadConfig(filepath.Join(t.TempDir(), "missing.json"), nil, nil)
	require.Error(t, err)
	assert.True(t, opterrors.IsCategory(err, opterrors.ErrorCategoryConfiguration))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"population_size": "many"}`), 0644))
	_, err = m.LoadConfig(bad, nil, nil)
	assert.Error(t, err)

	unknown := filepath.Join(t.TempDir(), "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"populaton_size": 10}`), 0644))
	_, err = m.LoadConfig(unknown, nil, nil)
	assert.Error(t, err)

	_, err = m.LoadConfig("", envMap(map[string]string{"COINGA_TARGETS": "1,x"}), nil)
	assert.Error(t, err)

	_, err = m.LoadConfig("", envMap(map[string]string{"COINGA_MUTATION_RATE": "high"}), nil)
	assert.Error(t, err)

	_, err = m.LoadConfig("", nil, map[string]interface{}{"generations": "ten"})
	assert.Error(t, err)

	_, err = m.LoadConfig("", nil, map[string]interface{}{"colour": "red"})
	assert.Error(t, err)

	_, err = m.LoadConfig("", nil, map[string]interface{}{"generations": 0})
	require.Error(t, err)
	assert.True(t, opterrors.IsCategory(err, opterrors.ErrorCategoryValidation))
}

func TestLoadConfigIgnoresBlankEnv(t *testing.T) {
	cfg, err := NewRunConfigManager().LoadConfig("", envMap(map[string]string{
		"COINGA_VARIANT": "  ",
	}), nil)
	require.NoError(t, err)
	assert.Equal(t, "binary-cubic", cfg.Variant)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	m := NewRunConfigManager()
	cfg := NewDefaultRunConfig()
	cfg.Targets = []int{11, 16}
	cfg.Seed = 7

	path := filepath.Join(t.TempDir(), "nested", ConfigEchoFile)
	require.NoError(t, m.SaveConfig(cfg, path))

	loaded, err := m.LoadConfig(path, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseLists(t *testing.T) {
	values, err := ParseIntList(" 1, 5 ,10,,25 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 10, 25}, values)

	_, err = ParseIntList(" , ")
	assert.Error(t, err)

	_, err = ParseIntList("1,2.5")
	assert.Error(t, err)

	assert.Equal(t, []string{"console", "xlsx"}, ParseStringList("Console, XLSX,"))
	assert.Nil(t, ParseStringList(""))
}

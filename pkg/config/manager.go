package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
)

// RunConfigManager implements ConfigManager for run configurations
type RunConfigManager struct {
	validator Validator
}

// NewRunConfigManager creates a new run configuration manager
func NewRunConfigManager() *RunConfigManager {
	return &RunConfigManager{
		validator: NewRunValidator(),
	}
}

// LoadConfig layers defaults, the JSON config file, COINGA_* environment
// variables and explicit overrides, in that order, then validates the result.
// Override keys are the JSON field names.
func (m *RunConfigManager) LoadConfig(configFile string, env EnvLookup, overrides map[string]interface{}) (*RunConfig, error) {
	cfg := NewDefaultRunConfig()

	if configFile != "" {
		if err := m.loadFromFile(configFile, cfg); err != nil {
			return nil, opterrors.NewConfigurationError("config", "LoadConfig", err).
				WithContext("file", configFile)
		}
	}

	if env != nil {
		if err := applyEnv(cfg, env); err != nil {
			return nil, opterrors.NewConfigurationError("config", "LoadConfig", err)
		}
	}

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, opterrors.NewConfigurationError("config", "LoadConfig", err)
	}

	if err := m.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateConfig validates a configuration
func (m *RunConfigManager) ValidateConfig(cfg *RunConfig) error {
	return m.validator.Validate(cfg)
}

// SaveConfig saves configuration to a JSON file
func (m *RunConfigManager) SaveConfig(cfg *RunConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return opterrors.NewOutputError("config", "SaveConfig", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return opterrors.NewOutputError("config", "SaveConfig", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return opterrors.NewOutputError("config", "SaveConfig", err)
	}
	return nil
}

// loadFromFile loads configuration from a JSON file on top of cfg
func (m *RunConfigManager) loadFromFile(configFile string, cfg *RunConfig) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	return nil
}

// applyEnv reads COINGA_* variables
func applyEnv(cfg *RunConfig, env EnvLookup) error {
	get := func(name string) (string, bool) {
		v, ok := env(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	var err error
	if v, ok := get("DENOMINATIONS"); ok {
		if cfg.Denominations, err = ParseIntList(v); err != nil {
			return fmt.Errorf("%sDENOMINATIONS: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("TARGETS"); ok {
		if cfg.Targets, err = ParseIntList(v); err != nil {
			return fmt.Errorf("%sTARGETS: %w", EnvPrefix, err)
		}
	}

	ints := map[string]*int{
		"POPULATION_SIZE": &cfg.PopulationSize,
		"GENERATIONS":     &cfg.Generations,
		"ELITE_SIZE":      &cfg.EliteSize,
		"TOURNAMENT_SIZE": &cfg.TournamentSize,
		"WORKERS":         &cfg.Workers,
		"TOLERANCE":       &cfg.Tolerance,
	}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: invalid integer %q", EnvPrefix, name, v)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"MUTATION_RATE":     &cfg.MutationRate,
		"DISTANCE_EXPONENT": &cfg.DistanceExponent,
		"SHAPING_FACTOR":    &cfg.ShapingFactor,
	}
	for name, dst := range floats {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: invalid number %q", EnvPrefix, name, v)
			}
			*dst = f
		}
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: invalid integer %q", EnvPrefix, v)
		}
		cfg.Seed = seed
	}
	if v, ok := get("VARIANT"); ok {
		cfg.Variant = v
	}
	if v, ok := get("OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := get("FORMATS"); ok {
		cfg.Formats = ParseStringList(v)
	}
	if v, ok := get("LOG_TO_FILE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sLOG_TO_FILE: invalid boolean %q", EnvPrefix, v)
		}
		cfg.LogToFile = b
	}
	return nil
}

// applyOverrides sets fields from a map keyed by JSON field name
func applyOverrides(cfg *RunConfig, overrides map[string]interface{}) error {
	for key, value := range overrides {
		ok := true
		switch key {
		case "denominations":
			cfg.Denominations, ok = value.([]int)
		case "targets":
			cfg.Targets, ok = value.([]int)
		case "population_size":
			cfg.PopulationSize, ok = value.(int)
		case "generations":
			cfg.Generations, ok = value.(int)
		case "mutation_rate":
			cfg.MutationRate, ok = value.(float64)
		case "elite_size":
			cfg.EliteSize, ok = value.(int)
		case "tournament_size":
			cfg.TournamentSize, ok = value.(int)
		case "variant":
			cfg.Variant, ok = value.(string)
		case "distance_exponent":
			cfg.DistanceExponent, ok = value.(float64)
		case "shaping_factor":
			cfg.ShapingFactor, ok = value.(float64)
		case "seed":
			cfg.Seed, ok = value.(int64)
		case "workers":
			cfg.Workers, ok = value.(int)
		case "tolerance":
			cfg.Tolerance, ok = value.(int)
		case "output_dir":
			cfg.OutputDir, ok = value.(string)
		case "formats":
			cfg.Formats, ok = value.([]string)
		case "log_to_file":
			cfg.LogToFile, ok = value.(bool)
		case "keep_history":
			cfg.KeepHistory, ok = value.(bool)
		default:
			return fmt.Errorf("unknown override %q", key)
		}
		if !ok {
			return fmt.Errorf("override %q has unexpected type %T", key, value)
		}
	}
	return nil
}

// ParseIntList parses a comma-separated list of integers such as "1,5,10,25"
func ParseIntList(s string) ([]int, error) {
	parts := ParseStringList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty list")
	}

	values := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		values = append(values, n)
	}
	return values, nil
}

// ParseStringList splits a comma-separated list, trimming and lowercasing entries
func ParseStringList(s string) []string {
	var values []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}

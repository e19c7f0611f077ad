package config

// Package config provides configuration management for coin-change optimization runs

// ConfigManager handles loading, validation, and saving of run configurations
type ConfigManager interface {
	// LoadConfig loads configuration from file, environment and explicit overrides
	LoadConfig(configFile string, env EnvLookup, overrides map[string]interface{}) (*RunConfig, error)

	// ValidateConfig validates a configuration
	ValidateConfig(cfg *RunConfig) error

	// SaveConfig saves configuration to file
	SaveConfig(cfg *RunConfig, path string) error
}

// Validator interface for configuration validation
type Validator interface {
	Validate(cfg *RunConfig) error
}

// EnvLookup reads an environment variable; os.LookupEnv satisfies it
type EnvLookup func(key string) (string, bool)

// Common configuration constants
const (
	// Environment variable prefix for overrides
	EnvPrefix = "COINGA_"

	// Output formats
	FormatConsole = "console"
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatExcel   = "xlsx"

	// Validation limits
	MaxPopulationSize = 100_000
	MaxGenerations    = 1_000_000
	MaxWorkers        = 256

	// File and directory constants
	DefaultResultsDir = "results"
	ResultsCSVFile    = "results.csv"
	ResultsJSONFile   = "results.json"
	ResultsExcelFile  = "results.xlsx"
	ConfigEchoFile    = "config.json"
)

// SupportedFormats lists every report format
var SupportedFormats = []string{FormatConsole, FormatCSV, FormatJSON, FormatExcel}

package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/ducminhle1904/coinchange-ga/cmd/common"
	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/data"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

// CLIFlags holds all command line flags for the coinchange command
type CLIFlags struct {
	Common *common.CommonFlags

	// Configuration
	ConfigFile *string

	// Problem
	Denominations *string
	Targets       *string
	TargetsFile   *string

	// Genetic algorithm parameters
	Population   *int
	Generations  *int
	MutationRate *float64
	Elites       *int
	Tournament   *int

	// Fitness strategy
	Variant          *string
	DistanceExponent *float64
	ShapingFactor    *float64
	Compare          *bool

	// Execution
	Seed    *int64
	Workers *int

	// Verification and output
	Tolerance   *int
	OutputDir   *string
	Formats     *string
	LogToFile   *bool
	NoHistory   *bool
	MetricsAddr *string
}

// NewCLIFlags registers every flag on fs
func NewCLIFlags(fs *flag.FlagSet) *CLIFlags {
	return &CLIFlags{
		Common: common.RegisterCommonFlags(fs),

		ConfigFile: fs.String("config", "", "JSON run configuration file"),

		Denominations: fs.String("denominations", "", "Comma-separated coin denominations (e.g. 1,5,10,25)"),
		Targets:       fs.String("targets", "", "Comma-separated target totals (e.g. 37,42,10000)"),
		TargetsFile:   fs.String("targets-file", "", "CSV file of target totals (\"target\" column or first column)"),

		Population:   fs.Int("population", optimization.DefaultPopulationSize, "Population size"),
		Generations:  fs.Int("generations", optimization.DefaultGenerations, "Generation limit per target"),
		MutationRate: fs.Float64("mutation-rate", optimization.DefaultMutationRate, "Per-gene mutation probability"),
		Elites:       fs.Int("elites", optimization.DefaultEliteSize, "Elite individuals carried per generation"),
		Tournament:   fs.Int("tournament", optimization.DefaultTournamentSize, "Tournament size for selection"),

		Variant:          fs.String("variant", string(optimization.VariantBinaryCubic), "Fitness variant"),
		DistanceExponent: fs.Float64("distance-exponent", 0, "Override the distance penalty exponent (0 keeps the variant default)"),
		ShapingFactor:    fs.Float64("shaping-factor", 0, "Override the coin-count shaping factor (0 keeps the variant default)"),
		Compare:          fs.Bool("compare", false, "Run every variant on the same targets and compare"),

		Seed:    fs.Int64("seed", 0, "Base random seed (0 = derive from clock)"),
		Workers: fs.Int("workers", runtime.NumCPU(), "Targets optimized concurrently"),

		Tolerance:   fs.Int("tolerance", optimization.DefaultTolerance, "Allowed coin-count gap for a within-tolerance verdict"),
		OutputDir:   fs.String("output", "", "Output directory (default results/<variant>)"),
		Formats:     fs.String("formats", config.FormatConsole, "Comma-separated report formats: console,csv,json,xlsx"),
		LogToFile:   fs.Bool("log-file", false, "Write a session log under logs/"),
		NoHistory:   fs.Bool("no-history", false, "Drop per-generation convergence history"),
		MetricsAddr: fs.String("metrics-addr", "", "Serve Prometheus metrics and health on this address (e.g. :9090)"),
	}
}

// ValidateCLIFlags checks flag values before any work starts
func ValidateCLIFlags(fs *flag.FlagSet, flags *CLIFlags) *common.FlagValidator {
	v := common.NewFlagValidator()
	set := explicitFlags(fs)

	v.ValidateFile("config", *flags.ConfigFile, false)
	v.ValidateFile("targets-file", *flags.TargetsFile, false)
	if set["targets"] && set["targets-file"] {
		v.AddError("targets and targets-file cannot be combined")
	}
	if set["population"] {
		v.ValidateInt("population", *flags.Population, 2, config.MaxPopulationSize)
	}
	if set["generations"] {
		v.ValidateInt("generations", *flags.Generations, 1, config.MaxGenerations)
	}
	if set["mutation-rate"] {
		v.ValidateFloat("mutation-rate", *flags.MutationRate, 0, 1)
	}
	if set["workers"] {
		v.ValidateInt("workers", *flags.Workers, 1, config.MaxWorkers)
	}
	if set["variant"] {
		if _, err := optimization.ParseVariant(*flags.Variant); err != nil {
			v.ValidateChoice("variant", *flags.Variant, optimization.VariantNames())
		}
	}
	if set["tolerance"] && *flags.Tolerance < 0 {
		v.AddError(fmt.Sprintf("tolerance must not be negative, got: %d", *flags.Tolerance))
	}
	if *flags.Common.Silent && *flags.Common.Verbose {
		v.AddError("silent and verbose cannot be combined")
	}

	return v
}

// BuildOverrides converts explicitly set flags into configuration overrides.
// Flags left at their default never mask file or environment values.
func BuildOverrides(fs *flag.FlagSet, flags *CLIFlags) (map[string]interface{}, error) {
	overrides := make(map[string]interface{})
	var parseErr error

	fs.Visit(func(f *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch f.Name {
		case "denominations":
			denoms, err := config.ParseIntList(*flags.Denominations)
			if err != nil {
				parseErr = fmt.Errorf("denominations: %w", err)
				return
			}
			overrides["denominations"] = denoms
		case "targets":
			targets, err := config.ParseIntList(*flags.Targets)
			if err != nil {
				parseErr = fmt.Errorf("targets: %w", err)
				return
			}
			overrides["targets"] = targets
		case "targets-file":
			targets, err := data.NewCSVProvider().LoadTargets(*flags.TargetsFile)
			if err != nil {
				parseErr = opterrors.NewInputError("cli", "LoadTargets", err).WithContext("path", *flags.TargetsFile)
				return
			}
			overrides["targets"] = targets
		case "population":
			overrides["population_size"] = *flags.Population
		case "generations":
			overrides["generations"] = *flags.Generations
		case "mutation-rate":
			overrides["mutation_rate"] = *flags.MutationRate
		case "elites":
			overrides["elite_size"] = *flags.Elites
		case "tournament":
			overrides["tournament_size"] = *flags.Tournament
		case "variant":
			overrides["variant"] = *flags.Variant
		case "distance-exponent":
			overrides["distance_exponent"] = *flags.DistanceExponent
		case "shaping-factor":
			overrides["shaping_factor"] = *flags.ShapingFactor
		case "seed":
			overrides["seed"] = *flags.Seed
		case "workers":
			overrides["workers"] = *flags.Workers
		case "tolerance":
			overrides["tolerance"] = *flags.Tolerance
		case "output":
			overrides["output_dir"] = *flags.OutputDir
		case "formats":
			overrides["formats"] = config.ParseStringList(*flags.Formats)
		case "log-file":
			overrides["log_to_file"] = *flags.LogToFile
		case "no-history":
			overrides["keep_history"] = !*flags.NoHistory
		}
	})

	if parseErr != nil {
		return nil, parseErr
	}

	if *flags.Common.ConsoleOnly {
		overrides["formats"] = []string{config.FormatConsole}
	}
	return overrides, nil
}

// ResolveMetricsAddr returns the -metrics-addr flag when given, otherwise
// COINGA_METRICS_ADDR from the process or .env file
func ResolveMetricsAddr(fs *flag.FlagSet, flags *CLIFlags, env *common.EnvLoader) string {
	if explicitFlags(fs)["metrics-addr"] {
		return *flags.MetricsAddr
	}
	return env.GetEnvWithDefault(config.EnvPrefix+"METRICS_ADDR", *flags.MetricsAddr)
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// NewUsage builds the help text for the coinchange command
func NewUsage() *common.UsageFormatter {
	return common.NewUsageFormatter(common.ProjectName, "Genetic algorithm search for minimal coin combinations").
		AddExample("coinchange", "Default run: coins 1,5,10,25,50,100 over the default targets").
		AddExample("coinchange -variant count-weighted -targets 37,42,10000 -seed 7", "Count-weighted variant, reproducible").
		AddExample("coinchange -compare -formats console,xlsx -output results/compare", "Compare every variant and write a heat map workbook").
		AddExample("coinchange -targets-file targets.csv -formats csv,json", "Targets read from a CSV file").
		AddExample("coinchange -config run.json -metrics-addr :9090 -log-file", "File configuration with metrics and a session log")
}

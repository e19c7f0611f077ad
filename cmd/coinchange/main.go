package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ducminhle1904/coinchange-ga/cmd/common"
	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/internal/logger"
	"github.com/ducminhle1904/coinchange-ga/internal/monitoring"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
	"github.com/ducminhle1904/coinchange-ga/pkg/reporting"
)

const (
	shutdownTimeout = 5 * time.Second

	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	fs := flag.NewFlagSet("coinchange", flag.ExitOnError)
	flags := NewCLIFlags(fs)
	usage := NewUsage()
	fs.Usage = func() { usage.PrintUsage(fs) }
	_ = fs.Parse(os.Args[1:])

	if common.CheckHelpAndVersion(fs, flags.Common, usage) {
		return
	}

	cli := common.NewLogger()
	common.SetupLogger(cli, flags.Common)

	if v := ValidateCLIFlags(fs, flags); v.HasErrors() {
		v.PrintErrors(os.Stderr)
		os.Exit(exitUsage)
	}

	env := common.NewEnvLoader(cli)
	if err := env.Load(*flags.Common.EnvFile); err != nil {
		fail(cli, opterrors.NewConfigurationError("main", "LoadEnv", err))
	}

	overrides, err := BuildOverrides(fs, flags)
	if err != nil {
		fail(cli, err)
	}

	manager := config.NewRunConfigManager()
	cfg, err := manager.LoadConfig(*flags.ConfigFile, env.Lookup, overrides)
	if err != nil {
		fail(cli, err)
	}

	if *flags.Common.Silent {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cli, manager, cfg, *flags.Compare, ResolveMetricsAddr(fs, flags, env)); err != nil {
		stop()
		fail(cli, err)
	}
}

// fail reports err and exits with the code matching its category
func fail(cli *common.Logger, err error) {
	code := exitCode(err)
	if code == exitInterrupted {
		cli.Warn("Run interrupted: %v", err)
	} else {
		cli.Error("%v", err)
	}
	os.Exit(code)
}

// exitCode maps an error to a process exit status: interrupted runs exit 130,
// configuration and validation errors exit 2, everything else exits 1
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if opterrors.IsCategory(err, opterrors.ErrorCategoryCancelled) {
		return exitInterrupted
	}
	if opterrors.CategorizeError(err, "main", "run").IsFatal() {
		return exitUsage
	}
	return exitFailure
}

// run wires the session log, metrics, the workflow and reporting together
func run(ctx context.Context, cli *common.Logger, manager *config.RunConfigManager, cfg *config.RunConfig, compare bool, metricsAddr string) error {
	cli.Header(common.ProjectName)

	reporter := reporting.NewDefaultReporter()
	reports := reporting.NewReportingManagerWithReporter(reporting.ReportingConfig{
		OutputDirectory: cfg.OutputDir,
		Formats:         cfg.Formats,
	}, reporter)

	if !cli.SilentMode {
		reporter.PrintConfig(cfg)
	}

	var fileLog *logger.Logger
	if cfg.LogToFile {
		label := cfg.Variant
		if compare {
			label = "comparison"
		}
		var err error
		fileLog, err = logger.NewLogger(logger.DefaultLogDir, label)
		if err != nil {
			return opterrors.NewOutputError("main", "NewLogger", err)
		}
		defer fileLog.Close()
		cli.Info("Session log: %s", fileLog.GetLogPath())
	}

	orch := orchestrator.NewOrchestrator(fileLog)
	health := monitoring.NewHealthChecker()
	orch.SetHealthChecker(health)

	if metricsAddr != "" {
		server := monitoring.StartServer(metricsAddr, health)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				cli.Warn("Metrics server shutdown: %v", err)
			}
		}()
	}

	var workflow orchestrator.Workflow
	if compare {
		workflow = orchestrator.NewComparisonWorkflow(orch, cfg)
	} else {
		workflow = orchestrator.NewBatchWorkflow(orch, cfg)
	}

	cli.Progress("Running %s workflow", workflow.GetWorkflowType())
	out, runErr := workflow.Execute(ctx)
	cli.Section("Results")

	var (
		written   []string
		reportErr error
		outDir    string
	)
	switch res := out.(type) {
	case *orchestrator.BatchResult:
		if res == nil {
			return runErr
		}
		outDir = reports.OutputDir(res.Variant)
		written, reportErr = reports.ReportBatch(res)
	case *orchestrator.ComparisonResult:
		if res == nil {
			return runErr
		}
		outDir = cfg.OutputDir
		if outDir == "" {
			outDir = config.DefaultResultsDir
		}
		written, reportErr = reports.ReportComparison(res)
	default:
		return runErr
	}

	if reportErr != nil {
		if fileLog != nil {
			fileLog.LogError("reporting", reportErr)
		}
		return errors.Join(runErr, reportErr)
	}

	if len(written) > 0 {
		echo := filepath.Join(outDir, config.ConfigEchoFile)
		if err := manager.SaveConfig(cfg, echo); err != nil {
			return errors.Join(runErr, err)
		}
		written = append(written, echo)
	}

	for _, path := range written {
		cli.Success("Saved %s", path)
	}

	if runErr != nil && fileLog != nil {
		fileLog.LogError("workflow", runErr)
	}
	return runErr
}

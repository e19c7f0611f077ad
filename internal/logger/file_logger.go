package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultLogDir is where session logs are written unless a directory is given
const DefaultLogDir = "logs"

// Logger represents a file logger for optimization sessions
type Logger struct {
	variant string
	logPath string
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	closed  bool
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo       LogLevel = "INFO"
	LogLevelWarning    LogLevel = "WARN"
	LogLevelError      LogLevel = "ERROR"
	LogLevelRun        LogLevel = "RUN"
	LogLevelGeneration LogLevel = "GEN"
)

// NewLogger creates a session log file logs/coinchange_<variant>_<date>.log
// under logDir. An empty logDir uses DefaultLogDir.
func NewLogger(logDir, variant string) (*Logger, error) {
	if logDir == "" {
		logDir = DefaultLogDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, LogFileName(variant, time.Now()))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		variant: variant,
		logPath: logPath,
		logFile: file,
		logger:  log.New(file, "", 0),
	}

	l.writeSessionHeader()

	return l, nil
}

// LogFileName returns the session log name for a variant on a given day
func LogFileName(variant string, day time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(variant), string(os.PathSeparator), "_")
	if name == "" {
		name = "default"
	}
	return fmt.Sprintf("coinchange_%s_%s.log", name, day.Format("2006-01-02"))
}

func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🧬 COIN CHANGE OPTIMIZATION SESSION STARTED
================================================================================
Variant: %s
Started: %s
Log File: %s
================================================================================
`, l.variant, time.Now().Format("2006-01-02 15:04:05"), filepath.Base(l.logPath))

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Println(fmt.Sprintf("[%s] [%s] %s", timestamp, level, message))
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// LogGeneration logs per-generation progress of one target
func (l *Logger) LogGeneration(target, generation int, bestFitness, meanFitness float64, bestTotal int) {
	l.Log(LogLevelGeneration, "target=%d gen=%d best=%.4f mean=%.4f total=%d",
		target, generation, bestFitness, meanFitness, bestTotal)
}

// LogRunCompletion logs the outcome of one target
func (l *Logger) LogRunCompletion(target int, genes []int, total int, fitness float64, lastGeneration int, verdict string, elapsed time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	runLog := fmt.Sprintf(`
[%s] [RUN] ==================== TARGET %d COMPLETED ====================
🧬 Genes: %v
💰 Total: %d
📊 Fitness: %.4f
🔄 Generations: %d
✅ Verdict: %s
⏱️ Elapsed: %s
=================================================================`,
		timestamp, target, genes, total, fitness, lastGeneration, verdict, elapsed.Round(time.Millisecond))

	l.logger.Println(runLog)
}

// LogError logs error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// Close writes the session footer and closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.logFile == nil {
		return nil
	}
	l.closed = true

	footer := fmt.Sprintf(`
================================================================================
🛑 COIN CHANGE OPTIMIZATION SESSION ENDED
================================================================================
Ended: %s
================================================================================

`, time.Now().Format("2006-01-02 15:04:05"))
	l.logger.Print(footer)

	return l.logFile.Close()
}

// GetLogPath returns the current log file path
func (l *Logger) GetLogPath() string {
	return l.logPath
}

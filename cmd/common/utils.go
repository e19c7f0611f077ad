package common

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger provides structured logging for CLI applications
type Logger struct {
	Level      LogLevel
	ShowEmojis bool
	SilentMode bool

	out io.Writer
}

// NewLogger creates a new logger with default settings
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

// NewLoggerWithWriter creates a logger writing to w
func NewLoggerWithWriter(w io.Writer) *Logger {
	return &Logger{
		Level:      LogLevelInfo,
		ShowEmojis: true,
		SilentMode: false,
		out:        w,
	}
}

// SetSilentMode enables or disables silent mode
func (l *Logger) SetSilentMode(silent bool) {
	l.SilentMode = silent
}

func (l *Logger) prefix(emoji, plain string) string {
	if l.ShowEmojis {
		return emoji
	}
	return plain
}

// Header prints a formatted header
func (l *Logger) Header(title string) {
	if l.SilentMode {
		return
	}

	fmt.Fprintf(l.out, "\n%s %s\n", l.prefix("🎯", "***"), strings.ToUpper(title))
	fmt.Fprintf(l.out, "%s\n", strings.Repeat("=", len(title)+5))
}

// Section prints a formatted section header
func (l *Logger) Section(title string) {
	if l.SilentMode {
		return
	}

	fmt.Fprintf(l.out, "\n%s %s\n", l.prefix("📋", "---"), title)
	fmt.Fprintf(l.out, "%s\n", strings.Repeat("-", len(title)+5))
}

// Info prints an info message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.SilentMode || l.Level < LogLevelInfo {
		return
	}
	fmt.Fprintf(l.out, "%s  %s\n", l.prefix("ℹ️", "[INFO]"), fmt.Sprintf(format, args...))
}

// Error prints an error message, even in silent mode
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "%s %s\n", l.prefix("❌", "[ERROR]"), fmt.Sprintf(format, args...))
}

// Success prints a success message
func (l *Logger) Success(format string, args ...interface{}) {
	if l.SilentMode {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", l.prefix("✅", "[SUCCESS]"), fmt.Sprintf(format, args...))
}

// Warn prints a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.Level < LogLevelWarn {
		return
	}
	fmt.Fprintf(l.out, "%s  %s\n", l.prefix("⚠️", "[WARN]"), fmt.Sprintf(format, args...))
}

// Debug prints a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.Level < LogLevelDebug {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", l.prefix("🔍", "[DEBUG]"), fmt.Sprintf(format, args...))
}

// Progress prints a progress message
func (l *Logger) Progress(format string, args ...interface{}) {
	if l.SilentMode {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", l.prefix("🔄", "[PROGRESS]"), fmt.Sprintf(format, args...))
}

// EnvLoader reads an environment file without touching the process
// environment. Process variables win over file values.
type EnvLoader struct {
	logger *Logger
	values map[string]string
}

// NewEnvLoader creates a new environment loader
func NewEnvLoader(logger *Logger) *EnvLoader {
	return &EnvLoader{
		logger: logger,
		values: make(map[string]string),
	}
}

// Load reads the environment file at path. A missing file is not an error.
func (e *EnvLoader) Load(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		e.logger.Debug("Environment file %s not found, using system environment", path)
		return nil
	}

	values, err := e.ReadEnvFile(path)
	if err != nil {
		e.logger.Warn("Could not load environment file %s: %v", path, err)
		return err
	}

	e.values = values
	e.logger.Debug("Environment loaded from %s (%d keys)", path, len(values))
	return nil
}

// ReadEnvFile parses an environment file
func (e *EnvLoader) ReadEnvFile(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

// Lookup returns the process value of key, falling back to the loaded file
func (e *EnvLoader) Lookup(key string) (string, bool) {
	if value, ok := os.LookupEnv(key); ok {
		return value, true
	}
	value, ok := e.values[key]
	return value, ok
}

// GetEnvWithDefault returns a non-blank value for key or defaultValue
func (e *EnvLoader) GetEnvWithDefault(key, defaultValue string) string {
	if value, ok := e.Lookup(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

// Package output provides the process-wide colored logger.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// EnvLogLevel selects the logger verbosity: "debug", "info" (default) or "error".
const EnvLogLevel = "BINGS_WALLPAPER_LOG"

// Level is the minimum severity a Logger prints.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel maps a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "trace":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides colored output functions for CLI feedback.
type Logger struct {
	out    io.Writer
	errOut io.Writer
	level  Level
}

// NewLogger creates a new Logger writing to stdout and stderr.
func NewLogger() *Logger {
	return &Logger{
		out:    os.Stdout,
		errOut: os.Stderr,
		level:  LevelInfo,
	}
}

// NewLoggerTo creates a Logger writing to the given writers.
func NewLoggerTo(out, errOut io.Writer, level Level) *Logger {
	return &Logger{out: out, errOut: errOut, level: level}
}

// SetLevel changes the minimum severity printed.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Info prints an informational message in default color.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warn prints a warning message in yellow.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(l.errOut, "Warning: "+format+"\n", args...)
}

// Error prints an error message in red.
func (l *Logger) Error(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(l.errOut, "Error: "+format+"\n", args...)
}

// Success prints a success message in green with checkmark.
func (l *Logger) Success(format string, args ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	green := color.New(color.FgGreen)
	green.Fprintf(l.out, "✓ "+format+"\n", args...)
}

// Debug prints a debug message if debug level is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level > LevelDebug {
		return
	}
	gray := color.New(color.FgHiBlack)
	gray.Fprintf(l.errOut, "[DEBUG] "+format+"\n", args...)
}

// DefaultLogger is the package-level default logger instance.
var DefaultLogger = NewLogger()

var initOnce sync.Once

// Init configures DefaultLogger from the environment. Calls after the first are no-ops.
func Init() {
	initOnce.Do(func() {
		DefaultLogger.SetLevel(ParseLevel(os.Getenv(EnvLogLevel)))
	})
}

// Info prints an informational message using the default logger.
func Info(format string, args ...interface{}) {
	DefaultLogger.Info(format, args...)
}

// Warn prints a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	DefaultLogger.Warn(format, args...)
}

// Error prints an error message using the default logger.
func Error(format string, args ...interface{}) {
	DefaultLogger.Error(format, args...)
}

// Success prints a success message using the default logger.
func Success(format string, args ...interface{}) {
	DefaultLogger.Success(format, args...)
}

// Debug prints a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	DefaultLogger.Debug(format, args...)
}

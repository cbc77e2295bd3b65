// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	plain        = false
	logger       Logger
	loggerMu     sync.RWMutex

	// stdout and stderr are resolved lazily so tests can swap os.Stdout/os.Stderr.
	stdout = func() io.Writer { return os.Stdout }
	stderr = func() io.Writer { return os.Stderr }
)

func init() {
	if val := os.Getenv("ANIMATEDPAGER_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		plain = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetPlain disables the ANSI escape codes around messages.
func SetPlain(enabled bool) {
	plain = enabled
}

func paint(code string) string {
	if plain {
		return ""
	}
	return code
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func currentLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// emit writes one formatted line and falls back to a plain stderr write when it fails.
func emit(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Error(msg)
	}
	emit(stderr(), "%sError:%s %s%s\n", paint(Red), paint(Reset), msg, paint(Reset))
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Info(msg, "type", "success")
	}
	emit(stdout(), "%s%s%s %s%s\n", paint(Green), checkmark, paint(Reset), msg, paint(Reset))
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Warn(msg)
	}
	emit(stderr(), "%sWarning:%s %s%s\n", paint(Yellow), paint(Reset), msg, paint(Reset))
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Info(msg)
	}
	emit(stdout(), "%s%s%s\n", paint(Blue), msg, paint(Reset))
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	if !debugEnabled {
		return
	}
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Debug(msg)
	}
	emit(stderr(), "%sDebug:%s %s%s\n", paint(Cyan), paint(Reset), msg, paint(Reset))
}

// Package logging provides structured file logging for animatedpager.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"

	"github.com/cristianoliveira/animatedpager/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger adding the key-value pairs to every entry.
	With(args ...any) Logger
	// Shutdown closes the log file, if any.
	Shutdown() error
}

// charmLogger writes through charmbracelet/log.
type charmLogger struct {
	base *clog.Logger
	file *logFile
}

// logFile is shared by a logger and every child made by With.
type logFile struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

func (lf *logFile) close() error {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.f == nil {
		return nil
	}
	err := lf.f.Close()
	lf.f = nil
	return err
}

// Init opens a new log file under LogDir and returns a logger writing to it.
// A disabled config yields a no-op logger.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("logging: log directory: %w", err)
	}
	if err := prune(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}
	path := filepath.Join(dir, logFileName(cfg, time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	l := newCharmLogger(f, cfg)
	l.file = &logFile{path: path, f: f}
	return l, nil
}

// New builds a logger writing to w. The caller owns w.
func New(w io.Writer, cfg Config) Logger {
	return newCharmLogger(w, cfg)
}

func newCharmLogger(w io.Writer, cfg Config) *charmLogger {
	base := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       parseFormat(cfg.Format),
	})
	return &charmLogger{base: base.With("pid", cfg.PID, "command", cfg.Command)}
}

func parseLevel(level string) clog.Level {
	l, err := clog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return clog.InfoLevel
	}
	return l
}

func parseFormat(format string) clog.Formatter {
	switch strings.ToLower(format) {
	case "logfmt":
		return clog.LogfmtFormatter
	case "text":
		return clog.TextFormatter
	default:
		return clog.JSONFormatter
	}
}

func (l *charmLogger) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }
func (l *charmLogger) Info(msg string, args ...any)  { l.base.Info(msg, args...) }
func (l *charmLogger) Warn(msg string, args ...any)  { l.base.Warn(msg, args...) }
func (l *charmLogger) Error(msg string, args ...any) { l.base.Error(msg, args...) }

func (l *charmLogger) With(args ...any) Logger {
	return &charmLogger{base: l.base.With(args...), file: l.file}
}

func (l *charmLogger) Shutdown() error {
	if l.file == nil {
		return nil
	}
	return l.file.close()
}

func (l *charmLogger) filePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.path
}

type noopLogger struct{}

func (n noopLogger) Debug(msg string, args ...any) {}
func (n noopLogger) Info(msg string, args ...any)  {}
func (n noopLogger) Warn(msg string, args ...any)  {}
func (n noopLogger) Error(msg string, args ...any) {}
func (n noopLogger) With(args ...any) Logger       { return n }
func (n noopLogger) Shutdown() error               { return nil }

// Noop returns a logger that discards everything.
func Noop() Logger {
	return noopLogger{}
}

var (
	globalLogger     Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

// InitGlobal sets up the process logger from the global config and mirrors
// console messages into it. Only the first call has an effect.
func InitGlobal() error {
	var err error
	globalLoggerOnce.Do(func() {
		var l Logger
		l, err = Init(FromGlobalConfig())
		if err != nil {
			return
		}
		globalLoggerMu.Lock()
		globalLogger = l
		globalLoggerMu.Unlock()
		colors.SetLogger(l)
		if path := CurrentLogFile(); path != "" {
			colors.Debug("Logging to file:", path)
		}
	})
	return err
}

// GetGlobal returns the global logger, or a no-op logger if not initialized.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	GetGlobal().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	GetGlobal().Info(msg, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) {
	GetGlobal().Warn(msg, args...)
}

// Error logs an error message using the global logger.
func Error(msg string, args ...any) {
	GetGlobal().Error(msg, args...)
}

// ShutdownGlobal closes the global logger.
func ShutdownGlobal() error {
	return GetGlobal().Shutdown()
}

// CurrentLogFile returns the global log file path, or "" when nothing is written to disk.
func CurrentLogFile() string {
	if l, ok := GetGlobal().(*charmLogger); ok {
		return l.filePath()
	}
	return ""
}

package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/animatedpager/internal/config"
)

// Config holds logging configuration.
type Config struct {
	Enabled bool
	// Level is the minimum level recorded: debug, info, warn or error.
	Level string
	// Format is json, logfmt or text.
	Format   string
	MaxFiles int
	// Command and PID are attached to every entry.
	Command string
	PID     int
}

// DefaultConfig returns a disabled JSON configuration for the running process.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		Format:   "json",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. debug forces the debug level;
// quiet forces error unless debug is also set.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", cfg.Level)
	cfg.Format = config.Get("logging_format", cfg.Format)
	cfg.MaxFiles = config.GetInt("logging_max_files", cfg.MaxFiles)
	switch {
	case config.GetBool("debug", false):
		cfg.Level = "debug"
	case config.GetBool("quiet", false):
		cfg.Level = "error"
	}
	return cfg
}

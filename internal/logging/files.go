package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/config"
)

const (
	logFilePrefix = "animatedpager-"
	logFileExt    = ".log"
	// stampLayout sorts lexically in time order.
	stampLayout = "20060102T150405"
)

// LogDir returns {state_dir}/logs, or a directory under os.TempDir when the
// state dir cannot be written.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "animatedpager", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// logFileName names the file of one process run.
func logFileName(cfg Config, now time.Time) string {
	command := strings.ReplaceAll(cfg.Command, " ", "_")
	return fmt.Sprintf("%s%s-%s-%d%s", logFilePrefix, now.Format(stampLayout), command, cfg.PID, logFileExt)
}

// prune deletes the oldest log files so that keep-1 remain, leaving room for a new one.
func prune(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), logFilePrefix) && strings.HasSuffix(e.Name(), logFileExt) {
			names = append(names, e.Name())
		}
	}
	if len(names) < keep {
		return nil
	}
	sort.Strings(names)
	var firstErr error
	for _, name := range names[:len(names)-keep+1] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Package config loads animatedpager settings into a flat key/value store.
//
// Values come from built-in defaults, then the TOML file at
// $ANIMATEDPAGER_CONFIG_PATH (or {config_dir}/config.toml), then
// ANIMATEDPAGER_<KEY> environment variables. The file groups keys in tables:
//
//	[slider]
//	page_count = 6
//
//	[logging]
//	level = "debug"
//
// Flat top level keys such as page_count are accepted too.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/cristianoliveira/animatedpager/internal/colors"
)

const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	envPrefix = "ANIMATEDPAGER_"
)

var (
	values map[string]string
	mu     sync.RWMutex
)

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	values = defaults()
	env := environment()
	// config_dir from the environment decides which file is read.
	for _, key := range []string{"config_dir", "state_dir"} {
		if v, ok := env[key]; ok {
			values[key] = v
		}
	}
	path := filePath(os.Getenv(envPrefix+"CONFIG_PATH"), values["config_dir"])
	for k, v := range readFile(path) {
		values[k] = v
	}
	for k, v := range env {
		values[k] = v
	}
	normalize(values)
	if values["journal_path"] == "" {
		values["journal_path"] = filepath.Join(values["state_dir"], "journal.db")
	}
	writeSample(values["config_dir"])
}

func defaults() map[string]string {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	m := make(map[string]string, len(settings))
	for _, s := range settings {
		m[s.key] = s.value
	}
	m["config_dir"] = filepath.Join(xdgConfigHome, "animatedpager")
	m["state_dir"] = filepath.Join(xdgStateHome, "animatedpager")
	return m
}

// environment collects ANIMATEDPAGER_<KEY> overrides.
func environment() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key == "config_path" {
			continue
		}
		env[key] = value
	}
	return env
}

func filePath(explicit, configDir string) string {
	if explicit != "" {
		return explicit
	}
	if configDir == "" {
		return ""
	}
	path := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// readFile returns the flattened keys of the TOML file at path.
func readFile(path string) map[string]string {
	if path == "" || !strings.EqualFold(filepath.Ext(path), FileExtTOML) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return nil
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return nil
	}

	out := make(map[string]string)
	for k, v := range raw {
		if table, ok := v.(map[string]any); ok {
			for name, tv := range table {
				flatten(out, fileKey(strings.ToLower(k), strings.ToLower(name)), tv)
			}
			continue
		}
		flatten(out, fileKey("", strings.ToLower(k)), v)
	}
	return out
}

func flatten(out map[string]string, key string, value any) {
	switch typed := value.(type) {
	case string:
		out[key] = typed
	case int64:
		out[key] = strconv.FormatInt(typed, 10)
	case float64:
		out[key] = strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		out[key] = strconv.FormatBool(typed)
	default:
		colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, value))
	}
}

// normalize replaces every value its setting rejects with the default.
func normalize(m map[string]string) {
	for key, value := range m {
		s, ok := lookupSetting(key)
		if !ok || s.check == nil {
			continue
		}
		if value == "" {
			m[key] = s.value
			continue
		}
		normalized, err := s.check(value)
		if err != nil {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': %v, using default: %s", key, value, err, s.value))
			m[key] = s.value
			continue
		}
		m[key] = normalized
	}
}

// writeSample creates {configDir}/config.toml with every default when it does not exist.
func writeSample(configDir string) {
	if configDir == "" {
		return
	}
	path := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}
	data, err := sample()
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	if err := os.WriteFile(path, data, FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

func sample() ([]byte, error) {
	tables := make(map[string]map[string]any)
	for _, s := range settings {
		if s.section == "" || s.value == "" {
			continue
		}
		if tables[s.section] == nil {
			tables[s.section] = make(map[string]any)
		}
		tables[s.section][s.name] = typedValue(s.value)
	}

	var buf bytes.Buffer
	buf.WriteString("# animatedpager configuration\n# This file is in TOML format.\n# Uncomment and edit values as needed.\n")
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := toml.Marshal(tables[name])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "\n[%s]\n%s", name, data)
	}
	return buf.Bytes(), nil
}

func typedValue(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := values[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	switch normalizeBool(Get(key, "")) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// GetDuration returns a millisecond configuration value as a time.Duration, or default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	ms := GetInt(key, -1)
	if ms < 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}

// Set overrides a configuration value for the rest of the process.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if values == nil {
		values = make(map[string]string)
	}
	values[strings.ToLower(key)] = value
}

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// check normalizes a raw value or reports why it cannot be used.
type check func(value string) (string, error)

// setting is one known configuration key.
type setting struct {
	key string
	// section and name locate the key in the TOML file, e.g. [slider] page_count.
	section string
	name    string
	value   string
	check   check
}

var settings = []setting{
	{key: "page_count", section: "slider", name: "page_count", value: "4", check: intAtLeast(1)},
	{key: "image_count", section: "slider", name: "image_count", value: "3", check: intAtLeast(1)},
	{key: "first_page", section: "slider", name: "first_page", value: "0", check: intAtLeast(0)},
	{key: "first_image", section: "slider", name: "first_image", value: "0", check: intAtLeast(0)},
	{key: "enter_delay_ms", section: "slider", name: "enter_delay_ms", value: "100", check: intAtLeast(0)},

	{key: "exit_duration_ms", section: "animation", name: "exit_duration_ms", value: "300", check: intAtLeast(0)},
	{key: "enter_duration_ms", section: "animation", name: "enter_duration_ms", value: "300", check: intAtLeast(0)},
	{key: "background_duration_ms", section: "animation", name: "background_duration_ms", value: "450", check: intAtLeast(0)},

	{key: "journal_enabled", section: "journal", name: "enabled", value: "false", check: boolean},
	{key: "journal_path", section: "journal", name: "path"},

	{key: "logging_enabled", section: "logging", name: "enabled", value: "false", check: boolean},
	{key: "logging_level", section: "logging", name: "level", value: "info", check: oneOf("debug", "info", "warn", "error")},
	{key: "logging_format", section: "logging", name: "format", value: "json", check: oneOf("json", "logfmt", "text")},
	{key: "logging_max_files", section: "logging", name: "max_files", value: "10", check: intAtLeast(1)},

	{key: "debug", name: "debug", value: "false", check: boolean},
	{key: "quiet", name: "quiet", value: "false", check: boolean},
	{key: "config_dir", name: "config_dir"},
	{key: "state_dir", name: "state_dir"},
}

// lookupSetting returns the setting stored under key.
func lookupSetting(key string) (setting, bool) {
	for _, s := range settings {
		if s.key == key {
			return s, true
		}
	}
	return setting{}, false
}

// fileKey maps a TOML table and entry to a configuration key.
// Entries of unknown tables are flattened as table_name.
func fileKey(section, name string) string {
	for _, s := range settings {
		if s.section == section && s.name == name {
			return s.key
		}
	}
	if section == "" {
		return name
	}
	return section + "_" + name
}

func intAtLeast(min int) check {
	return func(value string) (string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("not an integer")
		}
		if n < min {
			return "", fmt.Errorf("must be at least %d", min)
		}
		return strconv.Itoa(n), nil
	}
}

func boolean(value string) (string, error) {
	switch normalized := normalizeBool(value); normalized {
	case "true", "false":
		return normalized, nil
	default:
		return "", fmt.Errorf("must be one of 1, true, yes, on, 0, false, no, off")
	}
}

func oneOf(allowed ...string) check {
	return func(value string) (string, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return "", fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	}
}

func normalizeBool(val string) string {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirs(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	return tmp
}

func TestLoadAndGet(t *testing.T) {
	setupDirs(t)
	Load()

	require.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, 4, GetInt("page_count", 0))
	assert.Equal(t, 3, GetInt("image_count", 0))
	assert.Equal(t, 100*time.Millisecond, GetDuration("enter_delay_ms", 0))
	assert.False(t, GetBool("journal_enabled", true))
}

func TestLoadComputesJournalPath(t *testing.T) {
	tmp := setupDirs(t)
	Load()

	assert.Equal(t, filepath.Join(tmp, "state", "animatedpager", "journal.db"), Get("journal_path", ""))
}

func TestLoadCreatesSampleConfig(t *testing.T) {
	tmp := setupDirs(t)
	Load()

	data, err := os.ReadFile(filepath.Join(tmp, "config", "animatedpager", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# animatedpager configuration")
	assert.Contains(t, string(data), "[slider]")
	assert.Contains(t, string(data), "page_count = 4")
	assert.Contains(t, string(data), "[logging]")
	assert.Contains(t, string(data), "max_files = 10")
}

func TestLoadPrecedenceEnvOverFile(t *testing.T) {
	tmp := setupDirs(t)
	configFile := filepath.Join(tmp, "custom.toml")
	content := `
page_count = 6
image_count = 2
journal_enabled = true
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), FileModeFile))
	t.Setenv("ANIMATEDPAGER_CONFIG_PATH", configFile)
	t.Setenv("ANIMATEDPAGER_IMAGE_COUNT", "5")

	Load()

	assert.Equal(t, 6, GetInt("page_count", 0))
	assert.Equal(t, 5, GetInt("image_count", 0))
	assert.True(t, GetBool("journal_enabled", false))
}

func TestLoadFallsBackToDefaultsOnInvalidValues(t *testing.T) {
	setupDirs(t)
	t.Setenv("ANIMATEDPAGER_PAGE_COUNT", "0")
	t.Setenv("ANIMATEDPAGER_FIRST_PAGE", "-3")
	t.Setenv("ANIMATEDPAGER_LOGGING_LEVEL", "verbose")
	t.Setenv("ANIMATEDPAGER_DEBUG", "maybe")

	Load()

	assert.Equal(t, 4, GetInt("page_count", 0))
	assert.Equal(t, 0, GetInt("first_page", -1))
	assert.Equal(t, "info", Get("logging_level", ""))
	assert.False(t, GetBool("debug", true))
}

func TestLoadReadsTables(t *testing.T) {
	tmp := setupDirs(t)
	configFile := filepath.Join(tmp, "tables.toml")
	content := `
debug = true

[slider]
page_count = 8
enter_delay_ms = 40

[animation]
background_duration_ms = 900

[logging]
level = "WARN"
format = "logfmt"

[journal]
enabled = "yes"
path = "/tmp/custom.db"

[extra]
color = "blue"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), FileModeFile))
	t.Setenv("ANIMATEDPAGER_CONFIG_PATH", configFile)

	Load()

	assert.Equal(t, 8, GetInt("page_count", 0))
	assert.Equal(t, 40*time.Millisecond, GetDuration("enter_delay_ms", 0))
	assert.Equal(t, 900*time.Millisecond, GetDuration("background_duration_ms", 0))
	assert.Equal(t, "warn", Get("logging_level", ""))
	assert.Equal(t, "logfmt", Get("logging_format", ""))
	assert.True(t, GetBool("journal_enabled", false))
	assert.Equal(t, "/tmp/custom.db", Get("journal_path", ""))
	assert.True(t, GetBool("debug", false))
	assert.Equal(t, "blue", Get("extra_color", ""))
}

func TestChecks(t *testing.T) {
	tests := []struct {
		name    string
		check   check
		value   string
		want    string
		wantErr bool
	}{
		{name: "positive int accepts value", check: intAtLeast(1), value: "7", want: "7"},
		{name: "positive int rejects zero", check: intAtLeast(1), value: "0", wantErr: true},
		{name: "non negative accepts zero", check: intAtLeast(0), value: "0", want: "0"},
		{name: "int trims spaces", check: intAtLeast(0), value: " 12 ", want: "12"},
		{name: "int rejects text", check: intAtLeast(0), value: "twelve", wantErr: true},
		{name: "bool normalizes yes", check: boolean, value: "YES", want: "true"},
		{name: "bool rejects maybe", check: boolean, value: "maybe", wantErr: true},
		{name: "enum lowercases", check: oneOf("debug", "info"), value: "DEBUG", want: "debug"},
		{name: "enum rejects unknown", check: oneOf("debug", "info"), value: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDurationFallsBackOnMissingKey(t *testing.T) {
	setupDirs(t)
	Load()

	assert.Equal(t, time.Second, GetDuration("does_not_exist", time.Second))
}

func TestSetOverridesLoadedValue(t *testing.T) {
	setupDirs(t)
	Load()

	Set("Page_Count", "7")

	assert.Equal(t, 7, GetInt("page_count", 0))
}

package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/animatedpager/internal/config"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
}

func TestSliderConfigFromSettings(t *testing.T) {
	isolateConfig(t)
	t.Setenv("ANIMATEDPAGER_PAGE_COUNT", "6")
	t.Setenv("ANIMATEDPAGER_ENTER_DELAY_MS", "250")
	config.Load()

	cfg := SliderConfig()

	assert.Equal(t, 6, cfg.PageCount)
	assert.Equal(t, 3, cfg.ImageCount)
	assert.Equal(t, 0, cfg.FirstPage)
	assert.Equal(t, 0, cfg.FirstImage)
	assert.Equal(t, 250*time.Millisecond, cfg.EnterDelay)
	require.NoError(t, cfg.Validate())
}

func TestSetupAppliesChangedFlags(t *testing.T) {
	isolateConfig(t)
	probe := &cobra.Command{Use: "probe", RunE: func(*cobra.Command, []string) error { return nil }}
	RootCmd.AddCommand(probe)
	t.Cleanup(func() { RootCmd.RemoveCommand(probe) })

	RootCmd.SetArgs([]string{"probe", "--quiet"})
	require.NoError(t, RootCmd.Execute())

	assert.True(t, config.GetBool("quiet", false))
	assert.False(t, config.GetBool("debug", true))
}

func TestHelpListsCommandsInOrder(t *testing.T) {
	for _, name := range []string{"version", "play"} {
		c := &cobra.Command{Use: name, Short: name + " short", RunE: func(*cobra.Command, []string) error { return nil }}
		RootCmd.AddCommand(c)
		t.Cleanup(func() { RootCmd.RemoveCommand(c) })
	}
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	t.Cleanup(func() { RootCmd.SetOut(nil) })

	printHelpText(RootCmd)

	help := out.String()
	assert.Contains(t, help, "USAGE:")
	require.NotEqual(t, -1, strings.Index(help, "play short"))
	assert.Less(t, strings.Index(help, "play short"), strings.Index(help, "version short"))
	assert.NotContains(t, help, "history")
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/animatedpager/internal/scenario"
)

const forwardScenario = "../../internal/scenario/testdata/forward_background.toml"

func TestNewPlayCmdPanicsWithoutJournal(t *testing.T) {
	assert.PanicsWithValue(t, "NewPlayCmd: openJournal dependency cannot be nil", func() {
		NewPlayCmd(nil)
	})
}

func TestPlayPrintsCommandsPerStep(t *testing.T) {
	c := NewPlayCmd(tempJournal(t))

	out, err := execute(t, c, forwardScenario)

	require.NoError(t, err)
	assert.Contains(t, out, "step 1 [")
	assert.Contains(t, out, "      1 transitionPager(0)\n")
	assert.Contains(t, out, "transitionBackgroundForward(1)")
	assert.Contains(t, out, "timeline:")
	assert.NotContains(t, out, "journaled as session")
}

func TestPlayQuietEventsHidesTimeline(t *testing.T) {
	c := NewPlayCmd(tempJournal(t))

	out, err := execute(t, c, forwardScenario, "--quiet-events")

	require.NoError(t, err)
	assert.NotContains(t, out, "timeline:")
	assert.NotContains(t, out, "notifications:")
}

func TestPlayJournalsRun(t *testing.T) {
	open := tempJournal(t)
	c := NewPlayCmd(open)

	out, err := execute(t, c, forwardScenario, "--journal")
	require.NoError(t, err)

	sessions := listSessions(t, open)
	require.Len(t, sessions, 1)
	assert.Equal(t, "forward with background", sessions[0].Name)
	assert.Equal(t, "play", sessions[0].Source)
	assert.Equal(t, 4, sessions[0].PageCount)
	assert.Equal(t, 3, sessions[0].ImageCount)
	assert.Equal(t, 14, sessions[0].Commands)
	assert.Contains(t, out, "journaled as session "+sessions[0].ID)
}

func TestPlayFailsOnMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.toml")
	data := `name = "wrong"

[[steps]]
action = "first-screen"
expect = ["transitionPager(1)"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := execute(t, NewPlayCmd(tempJournal(t)), path)

	require.ErrorIs(t, err, scenario.ErrExpectationMismatch)
	assert.Contains(t, err.Error(), "wrong.toml")
}

func TestPlayRejectsMissingFile(t *testing.T) {
	_, err := execute(t, NewPlayCmd(tempJournal(t)), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestPlayRequiresOneArgument(t *testing.T) {
	_, err := execute(t, NewPlayCmd(tempJournal(t)))
	require.Error(t, err)
}

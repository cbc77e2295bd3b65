package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cristianoliveira/animatedpager/internal/colors"
)

func TestPageShowsPositionAndPhase(t *testing.T) {
	out := Page(PageState{Index: 1, Count: 4, Phase: PhaseEntering, Direction: PhaseBackward, FirstSeen: true, Width: 30})

	assert.Contains(t, out, "Page 2/4")
	assert.Contains(t, out, "entering ←")
	assert.Contains(t, out, "first visit")
}

func TestPageShownHasNoArrow(t *testing.T) {
	out := Page(PageState{Index: 0, Count: 2, Phase: PhaseShown, Direction: PhaseForward})

	assert.Contains(t, out, "shown")
	assert.NotContains(t, out, forwardArrow)
}

func TestBackgroundLabel(t *testing.T) {
	assert.Contains(t, Background(BackgroundState{Image: 2, Count: 3, Phase: PhaseForward, Width: 40}), "background 3/3 →")
	assert.Contains(t, Background(BackgroundState{Image: 0, Count: 3, Phase: PhaseSettled}), "background 1/3")
}

func TestLogKeepsMostRecentLines(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, strings.Repeat("x", i+1))
	}

	out := strings.Split(Log(lines), "\n")

	assert.Len(t, out, maxLogLines)
	assert.Equal(t, "xxxxx", strings.TrimSpace(out[0]))
	assert.Equal(t, strings.Repeat("x", 10), strings.TrimSpace(out[maxLogLines-1]))
	assert.Contains(t, Log(nil), idleSymbol)
}

func TestStatus(t *testing.T) {
	assert.Empty(t, Status(""))
	assert.Contains(t, Status("done"), "done")
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber(colors.Blue))
	assert.Equal(t, "", ansiColorNumber("x"))
	assert.Equal(t, "", ansiColorNumber("nocolor"))
}

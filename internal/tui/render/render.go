// Package render draws the parts of the pager demo screen.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/animatedpager/internal/colors"
)

const (
	defaultWidth  = 48
	cardHeight    = 5
	maxLogLines   = 6
	idleSymbol    = "·"
	forwardArrow  = "→"
	backwardArrow = "←"
)

// Page phases.
const (
	PhaseHidden   = "hidden"
	PhaseEntering = "entering"
	PhaseShown    = "shown"
	PhaseExiting  = "exiting"
	PhaseForward  = "forward"
	PhaseBackward = "backward"
	PhaseSettled  = "settled"
)

// backgroundPalette holds one ANSI color per background image, cycled.
var backgroundPalette = []string{"24", "29", "94", "54", "130", "23"}

// PageState defines the inputs needed to render the page card.
type PageState struct {
	Index     int
	Count     int
	Phase     string
	Direction string
	FirstSeen bool
	Width     int
}

// BackgroundState defines the inputs needed to render the background band.
type BackgroundState struct {
	Image int
	Count int
	Phase string
	Width int
}

// Title renders the header line.
func Title(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan))).
		Render(text)
}

// Background renders the band standing for the background image.
func Background(state BackgroundState) string {
	width := widthOr(state.Width)
	color := backgroundPalette[0]
	if state.Image >= 0 {
		color = backgroundPalette[state.Image%len(backgroundPalette)]
	}
	label := fmt.Sprintf("background %d/%d", state.Image+1, state.Count)
	switch state.Phase {
	case PhaseForward:
		label += " " + forwardArrow
	case PhaseBackward:
		label += " " + backwardArrow
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("15")).
		Render(label)
}

// Page renders the foreground page card.
func Page(state PageState) string {
	width := widthOr(state.Width)
	border := lipgloss.Color(ansiColorNumber(colors.Blue))
	if state.Phase == PhaseShown {
		border = lipgloss.Color(ansiColorNumber(colors.Green))
	}

	phase := state.Phase
	if state.Direction != "" && (state.Phase == PhaseEntering || state.Phase == PhaseExiting) {
		phase = fmt.Sprintf("%s %s", state.Phase, arrow(state.Direction))
	}
	lines := []string{
		fmt.Sprintf("Page %d/%d", state.Index+1, state.Count),
		phase,
	}
	if state.FirstSeen {
		lines = append(lines, "first visit")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Height(cardHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// Log renders the most recent lines, oldest first.
func Log(lines []string) string {
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
	}
	if len(lines) == 0 {
		lines = []string{idleSymbol}
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(strings.Join(lines, "\n"))
}

// Status renders a highlighted status line.
func Status(text string) string {
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow))).
		Render(text)
}

func arrow(direction string) string {
	if direction == PhaseBackward {
		return backwardArrow
	}
	return forwardArrow
}

func widthOr(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}

// ansiColorNumber extracts the color number from an ANSI escape sequence
// such as "\033[0;34m".
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}

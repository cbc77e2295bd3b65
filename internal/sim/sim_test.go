package sim

import (
	"testing"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/scheduler"
	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

type host struct {
	clock      *scheduler.Manual
	timeline   *Timeline
	pager      *Pager
	background *Background
	listener   *Listener
	slider     *slider.Slider
}

func newHost(t *testing.T, auto bool) *host {
	t.Helper()
	clock := scheduler.NewManual()
	opts := Options{
		AutoComplete:       auto,
		ExitDuration:       300 * ms,
		EnterDuration:      300 * ms,
		BackgroundDuration: 450 * ms,
	}
	tl := NewTimeline(clock)
	h := &host{
		clock:      clock,
		timeline:   tl,
		pager:      NewPager(tl, opts),
		background: NewBackground(tl, opts, 0),
		listener:   NewListener(clock),
	}
	h.slider = slider.New(h.pager, h.background, h.listener, clock, slider.Config{
		PageCount:  4,
		ImageCount: 3,
		EnterDelay: 100 * ms,
	})
	return h
}

func pageEvent(at time.Duration, page int, hook string) Event {
	return Event{At: at, Page: page, Image: -1, Hook: hook}
}

func TestAutoCompleteFirstScreen(t *testing.T) {
	h := newHost(t, true)

	h.slider.FirstScreenViewCreated()
	h.clock.Advance(time.Second)

	assert.Equal(t, []Event{
		pageEvent(0, 0, HookShow),
		pageEvent(100*ms, 0, HookForwardEnter),
		pageEvent(100*ms, 0, HookFirstEnter),
		pageEvent(100*ms, 0, HookEnter),
		pageEvent(400*ms, 0, HookFirstShowFully),
	}, h.timeline.Events())
	assert.Equal(t, []string{"400ms enter-finished"}, h.listener.Notifications())
	assert.Zero(t, h.clock.Pending())
}

func TestAutoCompleteForwardWithBackground(t *testing.T) {
	h := newHost(t, true)
	h.slider.FirstScreenViewCreated()
	h.clock.Advance(time.Second)
	before := len(h.timeline.Events())

	h.slider.GoToPage(1, slider.ImageAt(1))
	h.clock.Advance(2 * time.Second)

	events := h.timeline.Events()[before:]
	assert.Equal(t, []Event{
		pageEvent(time.Second, 0, HookForwardExit),
		pageEvent(1300*ms, 1, HookShow),
		{At: 1300 * ms, Page: -1, Image: 1, Hook: HookBackgroundForward},
		pageEvent(1750*ms, 1, HookForwardEnter),
		pageEvent(1750*ms, 1, HookFirstEnter),
		pageEvent(1750*ms, 1, HookEnter),
		pageEvent(2050*ms, 1, HookFirstShowFully),
	}, events)
	assert.Equal(t, 1, h.background.Current())
	current, ok := h.pager.Current()
	require.True(t, ok)
	assert.Equal(t, 1, current)
	assert.Equal(t, slider.Position{Page: 1, Image: 1}, h.slider.Position())
	assert.Equal(t, []string{"400ms enter-finished", "2.05s enter-finished"}, h.listener.Notifications())
}

func TestAutoCompleteExitFlow(t *testing.T) {
	h := newHost(t, true)
	h.slider.FirstScreenViewCreated()
	h.clock.Advance(time.Second)

	h.slider.BackwardExitFlow()
	h.clock.Advance(time.Second)

	assert.Equal(t, []string{"400ms enter-finished", "1.3s backward-exit-flow-finished"}, h.listener.Notifications())
}

func TestManualCompletionOnlyRecords(t *testing.T) {
	h := newHost(t, false)

	h.slider.ForwardExitFlow()
	h.clock.Advance(time.Second)

	assert.Equal(t, []Event{pageEvent(0, 0, HookForwardExit)}, h.timeline.Events())
	assert.Empty(t, h.listener.Notifications())
	assert.Zero(t, h.clock.Pending())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, " 100ms page 2 enter", pageEvent(100*ms, 2, HookEnter).String())
	assert.Equal(t, "    1s image 1 background-forward", Event{At: time.Second, Page: -1, Image: 1, Hook: HookBackgroundForward}.String())
}

// Package sim provides a simulated slider host: a pager of pages, a
// background switcher and a transition listener that record what they are
// told on a virtual timeline and can complete their animations on their own.
package sim

import (
	"fmt"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/slider"
)

// Hook names recorded on the timeline.
const (
	HookShow               = "show"
	HookFirstEnter         = "first-enter"
	HookEnter              = "enter"
	HookFirstShowFully     = "first-show-fully"
	HookOtherShowFully     = "other-show-fully"
	HookForwardEnter       = "forward-enter"
	HookBackwardEnter      = "backward-enter"
	HookForwardExit        = "forward-exit"
	HookBackwardExit       = "backward-exit"
	HookBackgroundForward  = "background-forward"
	HookBackgroundBackward = "background-backward"
)

// Clock schedules callbacks and reports the elapsed time.
type Clock interface {
	slider.Scheduler
	Now() time.Duration
}

// Options controls animation completion.
type Options struct {
	// AutoComplete makes animations report their end after their duration.
	AutoComplete       bool
	ExitDuration       time.Duration
	EnterDuration      time.Duration
	BackgroundDuration time.Duration
}

// Event is a single hook call. Page or Image is -1 when not relevant.
type Event struct {
	At    time.Duration
	Page  int
	Image int
	Hook  string
}

func (e Event) String() string {
	if e.Page >= 0 {
		return fmt.Sprintf("%6s page %d %s", e.At, e.Page, e.Hook)
	}
	return fmt.Sprintf("%6s image %d %s", e.At, e.Image, e.Hook)
}

// Timeline collects events in call order.
type Timeline struct {
	clock  Clock
	events []Event
}

// NewTimeline creates a timeline stamped by clock.
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		panic("sim.NewTimeline: clock dependency cannot be nil")
	}
	return &Timeline{clock: clock}
}

// Events returns a copy of the recorded events.
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Clock returns the timeline clock.
func (t *Timeline) Clock() Clock {
	return t.clock
}

func (t *Timeline) page(page int, hook string) {
	t.events = append(t.events, Event{At: t.clock.Now(), Page: page, Image: -1, Hook: hook})
}

func (t *Timeline) image(image int, hook string) {
	t.events = append(t.events, Event{At: t.clock.Now(), Page: -1, Image: image, Hook: hook})
}

// Pager is a simulated pager.
type Pager struct {
	timeline *Timeline
	opts     Options
	listener slider.AnimationListener
	current  int
	shown    bool
}

var _ slider.Pager = (*Pager)(nil)

// NewPager creates a pager recording on timeline.
func NewPager(timeline *Timeline, opts Options) *Pager {
	return &Pager{timeline: timeline, opts: opts}
}

// ShowPage repositions the pager.
func (p *Pager) ShowPage(page int) {
	p.current = page
	p.shown = true
	p.timeline.page(page, HookShow)
}

// Current returns the page the pager is positioned on and whether it was ever positioned.
func (p *Pager) Current() (int, bool) {
	return p.current, p.shown
}

// Page returns the page at index.
func (p *Pager) Page(index int) slider.AnimatedPage {
	return &Page{index: index, pager: p}
}

// SetAnimationListener sets the receiver of animation completions.
func (p *Pager) SetAnimationListener(listener slider.AnimationListener) {
	p.listener = listener
}

func (p *Pager) complete(d time.Duration, done func(slider.AnimationListener)) {
	if !p.opts.AutoComplete {
		return
	}
	p.timeline.clock.AfterDelay(d, func() {
		if p.listener != nil {
			done(p.listener)
		}
	})
}

// Page is a simulated pager page.
type Page struct {
	index int
	pager *Pager
}

var _ slider.AnimatedPage = (*Page)(nil)

func (p *Page) OnFirstEnter()     { p.pager.timeline.page(p.index, HookFirstEnter) }
func (p *Page) OnEnter()          { p.pager.timeline.page(p.index, HookEnter) }
func (p *Page) OnFirstShowFully() { p.pager.timeline.page(p.index, HookFirstShowFully) }
func (p *Page) OnOtherShowFully() { p.pager.timeline.page(p.index, HookOtherShowFully) }

func (p *Page) OnTransitionForwardEnter() {
	p.pager.timeline.page(p.index, HookForwardEnter)
	p.pager.complete(p.pager.opts.EnterDuration, slider.AnimationListener.FinishTransitionEnter)
}

func (p *Page) OnTransitionBackwardEnter() {
	p.pager.timeline.page(p.index, HookBackwardEnter)
	p.pager.complete(p.pager.opts.EnterDuration, slider.AnimationListener.FinishTransitionEnter)
}

func (p *Page) OnTransitionForwardExit() {
	p.pager.timeline.page(p.index, HookForwardExit)
	p.pager.complete(p.pager.opts.ExitDuration, slider.AnimationListener.FinishTransitionForwardsExit)
}

func (p *Page) OnTransitionBackwardExit() {
	p.pager.timeline.page(p.index, HookBackwardExit)
	p.pager.complete(p.pager.opts.ExitDuration, slider.AnimationListener.FinishTransitionBackwardsExit)
}

// Background is a simulated background switcher.
type Background struct {
	timeline *Timeline
	opts     Options
	listener slider.BackgroundListener
	current  int
}

var _ slider.Background = (*Background)(nil)

// NewBackground creates a switcher showing image first.
func NewBackground(timeline *Timeline, opts Options, first int) *Background {
	return &Background{timeline: timeline, opts: opts, current: first}
}

// Current returns the image shown or being animated to.
func (b *Background) Current() int {
	return b.current
}

func (b *Background) TransitionForward(image int) {
	b.transition(image, HookBackgroundForward)
}

func (b *Background) TransitionBackward(image int) {
	b.transition(image, HookBackgroundBackward)
}

// SetAnimationListener sets the receiver of background completions.
func (b *Background) SetAnimationListener(listener slider.BackgroundListener) {
	b.listener = listener
}

func (b *Background) transition(image int, hook string) {
	b.current = image
	b.timeline.image(image, hook)
	if !b.opts.AutoComplete {
		return
	}
	b.timeline.clock.AfterDelay(b.opts.BackgroundDuration, func() {
		if b.listener != nil {
			b.listener.BackgroundAnimationEnd()
		}
	})
}

// Listener records flow notifications.
type Listener struct {
	clock         Clock
	notifications []string
}

var _ slider.TransitionListener = (*Listener)(nil)

// Notification names recorded by Listener.
const (
	EnterFinished            = "enter-finished"
	ForwardExitFlowFinished  = "forward-exit-flow-finished"
	BackwardExitFlowFinished = "backward-exit-flow-finished"
)

// NewListener creates a listener stamping notifications with clock.
func NewListener(clock Clock) *Listener {
	return &Listener{clock: clock}
}

// Notifications returns the recorded notifications as "<time> <name>".
func (l *Listener) Notifications() []string {
	out := make([]string, len(l.notifications))
	copy(out, l.notifications)
	return out
}

func (l *Listener) OnTransitionEnterFinished()           { l.add(EnterFinished) }
func (l *Listener) OnTransitionForwardExitFlowFinished()  { l.add(ForwardExitFlowFinished) }
func (l *Listener) OnTransitionBackwardExitFlowFinished() { l.add(BackwardExitFlowFinished) }

func (l *Listener) add(name string) {
	l.notifications = append(l.notifications, fmt.Sprintf("%s %s", l.clock.Now(), name))
}

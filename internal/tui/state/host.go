package state

import (
	"fmt"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/cristianoliveira/animatedpager/internal/tui/render"
)

// pagerHost exposes the model as the slider's pager.
type pagerHost struct {
	m *Model
}

func (p pagerHost) ShowPage(page int) {
	p.m.page = page
	p.m.phase = render.PhaseHidden
	p.m.direction = ""
	p.m.paginator.Page = page
}

func (p pagerHost) Page(index int) slider.AnimatedPage {
	return pageHost{m: p.m, index: index}
}

func (p pagerHost) SetAnimationListener(listener slider.AnimationListener) {
	p.m.pageListener = listener
}

// pageHost is a page of the demo pager. Only the displayed page animates.
type pageHost struct {
	m     *Model
	index int
}

func (p pageHost) OnFirstEnter() {
	p.m.firstSeen = p.index
	p.m.logf("page %d entered for the first time", p.index+1)
}

func (p pageHost) OnEnter() {
	p.m.logf("page %d entered", p.index+1)
}

func (p pageHost) OnFirstShowFully() {
	p.m.settle(p.index)
	p.m.logf("page %d fully shown for the first time", p.index+1)
}

func (p pageHost) OnOtherShowFully() {
	p.m.settle(p.index)
	p.m.logf("page %d fully shown again", p.index+1)
}

func (p pageHost) OnTransitionForwardEnter() {
	p.animate(render.PhaseEntering, render.PhaseForward, p.m.cfg.EnterDuration, slider.AnimationListener.FinishTransitionEnter)
}

func (p pageHost) OnTransitionBackwardEnter() {
	p.animate(render.PhaseEntering, render.PhaseBackward, p.m.cfg.EnterDuration, slider.AnimationListener.FinishTransitionEnter)
}

func (p pageHost) OnTransitionForwardExit() {
	p.animate(render.PhaseExiting, render.PhaseForward, p.m.cfg.ExitDuration, slider.AnimationListener.FinishTransitionForwardsExit)
}

func (p pageHost) OnTransitionBackwardExit() {
	p.animate(render.PhaseExiting, render.PhaseBackward, p.m.cfg.ExitDuration, slider.AnimationListener.FinishTransitionBackwardsExit)
}

func (p pageHost) animate(phase, direction string, d time.Duration, done func(slider.AnimationListener)) {
	if p.index == p.m.page {
		p.m.phase = phase
		p.m.direction = direction
	}
	p.m.AfterDelay(d, func() {
		if p.m.pageListener != nil {
			done(p.m.pageListener)
		}
	})
}

// backgroundHost exposes the model as the slider's background switcher.
type backgroundHost struct {
	m *Model
}

func (b backgroundHost) TransitionForward(image int) {
	b.transition(image, render.PhaseForward)
}

func (b backgroundHost) TransitionBackward(image int) {
	b.transition(image, render.PhaseBackward)
}

func (b backgroundHost) SetAnimationListener(listener slider.BackgroundListener) {
	b.m.backgroundListener = listener
}

func (b backgroundHost) transition(image int, direction string) {
	b.m.image = image
	b.m.backgroundPhase = direction
	b.m.logf("background moving %s to image %d", direction, image+1)
	b.m.AfterDelay(b.m.cfg.BackgroundDuration, func() {
		b.m.backgroundPhase = render.PhaseSettled
		if b.m.backgroundListener != nil {
			b.m.backgroundListener.BackgroundAnimationEnd()
		}
	})
}

// AfterDelay implements slider.Scheduler on top of tea.Tick.
func (m *Model) AfterDelay(d time.Duration, fn func()) {
	m.nextTimer++
	m.timers[m.nextTimer] = fn
	m.cmds = append(m.cmds, timerAfter(m.nextTimer, d))
}

// OnTransitionEnterFinished implements slider.TransitionListener.
func (m *Model) OnTransitionEnterFinished() {
	m.logf("transition finished on page %d", m.page+1)
}

// OnTransitionForwardExitFlowFinished implements slider.TransitionListener.
func (m *Model) OnTransitionForwardExitFlowFinished() {
	m.finish("left the flow forwards")
}

// OnTransitionBackwardExitFlowFinished implements slider.TransitionListener.
func (m *Model) OnTransitionBackwardExitFlowFinished() {
	m.finish("left the flow backwards")
}

func (m *Model) finish(status string) {
	m.done = true
	m.status = status
	m.logf("%s", status)
	m.cmds = append(m.cmds, quitAfter(m.cfg.QuitDelay))
}

func (m *Model) settle(page int) {
	if page == m.page {
		m.phase = render.PhaseShown
		m.direction = ""
	}
}

func (m *Model) logf(format string, args ...any) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
	if len(m.log) > maxLogEntries {
		m.log = m.log[len(m.log)-maxLogEntries:]
	}
}

package slider

import "time"

// AnimatedPage is a single page of the pager.
type AnimatedPage interface {
	OnFirstEnter()
	OnEnter()
	OnFirstShowFully()
	OnOtherShowFully()
	OnTransitionForwardEnter()
	OnTransitionBackwardEnter()
	OnTransitionForwardExit()
	OnTransitionBackwardExit()
}

// AnimationListener is told when a page animation completes.
type AnimationListener interface {
	FinishTransitionEnter()
	FinishTransitionForwardsExit()
	FinishTransitionBackwardsExit()
}

// Pager owns the foreground pages.
type Pager interface {
	// ShowPage repositions the pager on page without animating it.
	ShowPage(page int)
	Page(page int) AnimatedPage
	SetAnimationListener(listener AnimationListener)
}

// BackgroundListener is told when a background animation completes.
type BackgroundListener interface {
	BackgroundAnimationEnd()
}

// Background switches between background images.
type Background interface {
	TransitionForward(image int)
	TransitionBackward(image int)
	SetAnimationListener(listener BackgroundListener)
}

// TransitionListener receives the flow level notifications.
type TransitionListener interface {
	OnTransitionEnterFinished()
	OnTransitionForwardExitFlowFinished()
	OnTransitionBackwardExitFlowFinished()
}

// Scheduler runs fn once after d on the control thread. Scheduled callbacks
// cannot be cancelled.
type Scheduler interface {
	AfterDelay(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func())

// AfterDelay calls f(d, fn).
func (f SchedulerFunc) AfterDelay(d time.Duration, fn func()) {
	f(d, fn)
}

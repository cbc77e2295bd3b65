// Package slider coordinates a paged view whose foreground pages and
// background images animate independently.
//
// The Presenter is the state machine: it receives navigation requests and
// animation completion callbacks and tells a View which animations to run
// and which page notifications to fire, in order. All calls are expected on
// a single control thread; nothing here is safe for concurrent use.
package slider

import "time"

// View receives the commands issued by the presenter. Every command is fire and forget.
type View interface {
	TransitionPager(page int)
	TransitionForwardEnter(page int)
	TransitionForwardEnterAfterDelay(page int, delay time.Duration)
	TransitionBackwardEnter(page int)
	TransitionBackwardEnterAfterDelay(page int, delay time.Duration)
	TransitionForwardExit(page int)
	TransitionBackwardExit(page int)
	TransitionBackgroundForward(image int)
	TransitionBackgroundBackward(image int)
	NotifyPageFirstEnter(page int)
	NotifyPageEnter(page int)
	NotifyPageFirstEnterAfterDelay(page int, delay time.Duration)
	NotifyPageEnterAfterDelay(page int, delay time.Duration)
	NotifyPageShowFirstFully(page int)
	NotifyPageShowOtherFully(page int)
	NotifyTransitionEnterFinished()
	NotifyTransitionForwardExitFlowFinished()
	NotifyTransitionBackwardExitFlowFinished()
}

// Coordinator is driven by the host: navigation requests plus the completion
// callbacks of the animations it started.
type Coordinator interface {
	OnFirstScreenViewCreated()
	OnGoToPage(page int, image Image)
	OnForwardExitFlow()
	OnBackwardExitFlow()
	OnFinishTransitionForwardsExit()
	OnFinishTransitionBackwardsExit()
	OnBackgroundAnimationEnd()
	OnFinishTransitionEnter()
}

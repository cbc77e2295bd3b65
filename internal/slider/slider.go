package slider

import (
	"time"
)

// SliderOption configures a Slider.
type SliderOption func(*sliderOptions)

type sliderOptions struct {
	wrap      func(View) View
	presenter []Option
}

// WithViewWrapper places wrap's result between the presenter and the slider.
// Wrappers see every command before the slider executes it.
func WithViewWrapper(wrap func(View) View) SliderOption {
	return func(o *sliderOptions) {
		if wrap == nil {
			return
		}
		prev := o.wrap
		o.wrap = func(v View) View {
			if prev != nil {
				v = prev(v)
			}
			return wrap(v)
		}
	}
}

// WithPresenterOptions passes options through to the underlying presenter.
func WithPresenterOptions(opts ...Option) SliderOption {
	return func(o *sliderOptions) {
		o.presenter = append(o.presenter, opts...)
	}
}

// Slider drives a pager and a background switcher through a Presenter.
// All methods must be called from the same goroutine as the scheduler callbacks.
type Slider struct {
	pager      Pager
	background Background
	listener   TransitionListener
	scheduler  Scheduler
	presenter  *Presenter
}

var (
	_ View               = (*Slider)(nil)
	_ AnimationListener  = (*Slider)(nil)
	_ BackgroundListener = (*Slider)(nil)
)

// New wires a slider to its host collaborators and registers itself as
// their animation listener. It panics on nil dependencies or an invalid config.
func New(pager Pager, background Background, listener TransitionListener, scheduler Scheduler, cfg Config, opts ...SliderOption) *Slider {
	if pager == nil {
		panic("slider.New: pager dependency cannot be nil")
	}
	if background == nil {
		panic("slider.New: background dependency cannot be nil")
	}
	if listener == nil {
		panic("slider.New: listener dependency cannot be nil")
	}
	if scheduler == nil {
		panic("slider.New: scheduler dependency cannot be nil")
	}

	var o sliderOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Slider{
		pager:      pager,
		background: background,
		listener:   listener,
		scheduler:  scheduler,
	}
	var view View = s
	if o.wrap != nil {
		view = o.wrap(s)
	}
	s.presenter = NewPresenter(view, cfg, o.presenter...)

	pager.SetAnimationListener(s)
	background.SetAnimationListener(s)
	return s
}

// Position returns the presenter snapshot.
func (s *Slider) Position() Position {
	return s.presenter.Snapshot()
}

// Presenter returns the underlying coordinator.
func (s *Slider) Presenter() *Presenter {
	return s.presenter
}

// FirstScreenViewCreated shows the first page.
func (s *Slider) FirstScreenViewCreated() { s.presenter.OnFirstScreenViewCreated() }

// GoToPage navigates to page, moving the background to image when it changes.
func (s *Slider) GoToPage(page int, image Image) { s.presenter.OnGoToPage(page, image) }

// ForwardExitFlow leaves the flow forwards.
func (s *Slider) ForwardExitFlow() { s.presenter.OnForwardExitFlow() }

// BackwardExitFlow leaves the flow backwards.
func (s *Slider) BackwardExitFlow() { s.presenter.OnBackwardExitFlow() }

func (s *Slider) FinishTransitionEnter()         { s.presenter.OnFinishTransitionEnter() }
func (s *Slider) FinishTransitionForwardsExit()  { s.presenter.OnFinishTransitionForwardsExit() }
func (s *Slider) FinishTransitionBackwardsExit() { s.presenter.OnFinishTransitionBackwardsExit() }
func (s *Slider) BackgroundAnimationEnd()        { s.presenter.OnBackgroundAnimationEnd() }

func (s *Slider) TransitionPager(page int) {
	s.pager.ShowPage(page)
}

func (s *Slider) TransitionForwardEnter(page int) {
	s.pager.Page(page).OnTransitionForwardEnter()
}

func (s *Slider) TransitionForwardEnterAfterDelay(page int, delay time.Duration) {
	s.scheduler.AfterDelay(delay, func() { s.TransitionForwardEnter(page) })
}

func (s *Slider) TransitionBackwardEnter(page int) {
	s.pager.Page(page).OnTransitionBackwardEnter()
}

func (s *Slider) TransitionBackwardEnterAfterDelay(page int, delay time.Duration) {
	s.scheduler.AfterDelay(delay, func() { s.TransitionBackwardEnter(page) })
}

func (s *Slider) TransitionForwardExit(page int) {
	s.pager.Page(page).OnTransitionForwardExit()
}

func (s *Slider) TransitionBackwardExit(page int) {
	s.pager.Page(page).OnTransitionBackwardExit()
}

func (s *Slider) TransitionBackgroundForward(image int) {
	s.background.TransitionForward(image)
}

func (s *Slider) TransitionBackgroundBackward(image int) {
	s.background.TransitionBackward(image)
}

func (s *Slider) NotifyPageFirstEnter(page int) {
	s.pager.Page(page).OnFirstEnter()
}

func (s *Slider) NotifyPageEnter(page int) {
	s.pager.Page(page).OnEnter()
}

func (s *Slider) NotifyPageFirstEnterAfterDelay(page int, delay time.Duration) {
	s.scheduler.AfterDelay(delay, func() { s.NotifyPageFirstEnter(page) })
}

func (s *Slider) NotifyPageEnterAfterDelay(page int, delay time.Duration) {
	s.scheduler.AfterDelay(delay, func() { s.NotifyPageEnter(page) })
}

func (s *Slider) NotifyPageShowFirstFully(page int) {
	s.pager.Page(page).OnFirstShowFully()
}

func (s *Slider) NotifyPageShowOtherFully(page int) {
	s.pager.Page(page).OnOtherShowFully()
}

func (s *Slider) NotifyTransitionEnterFinished() {
	s.listener.OnTransitionEnterFinished()
}

func (s *Slider) NotifyTransitionForwardExitFlowFinished() {
	s.listener.OnTransitionForwardExitFlowFinished()
}

func (s *Slider) NotifyTransitionBackwardExitFlowFinished() {
	s.listener.OnTransitionBackwardExitFlowFinished()
}

package slider

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/logging"
)

// DefaultEnterDelay is the delay before an enter animation that follows a page reposition.
const DefaultEnterDelay = 100 * time.Millisecond

// ErrInvalidConfig indicates a slider configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid slider config")

// Config describes the slider the presenter coordinates.
type Config struct {
	PageCount  int
	ImageCount int
	FirstPage  int
	FirstImage int
	// EnterDelay is used for every delayed enter command.
	EnterDelay time.Duration
}

// Validate reports a wrapped ErrInvalidConfig when the configuration is unusable.
func (c Config) Validate() error {
	switch {
	case c.PageCount <= 0:
		return fmt.Errorf("%w: page count must be positive, got %d", ErrInvalidConfig, c.PageCount)
	case c.ImageCount <= 0:
		return fmt.Errorf("%w: image count must be positive, got %d", ErrInvalidConfig, c.ImageCount)
	case c.FirstPage < 0 || c.FirstPage >= c.PageCount:
		return fmt.Errorf("%w: first page %d outside [0, %d)", ErrInvalidConfig, c.FirstPage, c.PageCount)
	case c.FirstImage < 0 || c.FirstImage >= c.ImageCount:
		return fmt.Errorf("%w: first image %d outside [0, %d)", ErrInvalidConfig, c.FirstImage, c.ImageCount)
	case c.EnterDelay < 0:
		return fmt.Errorf("%w: negative enter delay %s", ErrInvalidConfig, c.EnterDelay)
	}
	return nil
}

// Position is a snapshot of the presenter state.
type Position struct {
	Page  int
	Image int
	Step  Step
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger used for transition decisions.
func WithLogger(l logging.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.log = l
		}
	}
}

// Presenter is the transition state machine.
type Presenter struct {
	view   View
	bounds Bounds
	delay  time.Duration
	visits *VisitTracker
	log    logging.Logger

	currentPage  int
	currentImage int
	step         Step
	started      bool
}

var _ Coordinator = (*Presenter)(nil)

// NewPresenter creates a presenter sending its commands to view.
// It panics on a nil view or an invalid config.
func NewPresenter(view View, cfg Config, opts ...Option) *Presenter {
	if view == nil {
		panic("NewPresenter: view dependency cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("NewPresenter: %v", err))
	}

	p := &Presenter{
		view:         view,
		bounds:       Bounds{PageCount: cfg.PageCount, ImageCount: cfg.ImageCount},
		delay:        cfg.EnterDelay,
		visits:       NewVisitTracker(cfg.PageCount),
		log:          logging.GetGlobal(),
		currentPage:  cfg.FirstPage,
		currentImage: cfg.FirstImage,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("component", "slider")
	return p
}

// Snapshot returns the current position and pending step.
func (p *Presenter) Snapshot() Position {
	return Position{Page: p.currentPage, Image: p.currentImage, Step: p.step}
}

// Bounds returns the page and image counts.
func (p *Presenter) Bounds() Bounds {
	return p.bounds
}

// Visits exposes the visitation tracker for read-only inspection.
func (p *Presenter) Visits() *VisitTracker {
	return p.visits
}

// OnFirstScreenViewCreated shows the first page once the host has created it.
func (p *Presenter) OnFirstScreenViewCreated() {
	if p.started {
		p.log.Warn("first screen already created, ignoring", "page", p.currentPage)
		return
	}
	p.started = true
	p.step = Advance{Page: p.currentPage, Image: ImageAt(p.currentImage)}

	p.view.TransitionPager(p.currentPage)
	p.view.TransitionForwardEnterAfterDelay(p.currentPage, p.delay)
	p.notifyPageEnterAfterDelay(p.currentPage)
}

// OnGoToPage starts the navigation to page. Out-of-range pages finish the flow.
func (p *Presenter) OnGoToPage(page int, image Image) {
	if page == p.currentPage {
		return
	}
	switch {
	case p.bounds.IsOverUpperPageBound(page):
		p.setStep(Finish{})
		p.view.TransitionForwardExit(p.currentPage)
	case p.bounds.IsUnderLowerPageBound(page):
		p.setStep(Finish{})
		p.view.TransitionBackwardExit(p.currentPage)
	case p.bounds.IsGoingForward(page, p.currentPage):
		p.setStep(Advance{Page: page, Image: image})
		p.view.TransitionForwardExit(p.currentPage)
	case p.bounds.IsGoingBackward(page, p.currentPage):
		p.setStep(Advance{Page: page, Image: image})
		p.view.TransitionBackwardExit(p.currentPage)
	}
}

// OnForwardExitFlow leaves the flow forwards from the current page.
func (p *Presenter) OnForwardExitFlow() {
	p.setStep(Finish{})
	p.view.TransitionForwardExit(p.currentPage)
}

// OnBackwardExitFlow leaves the flow backwards from the current page.
func (p *Presenter) OnBackwardExitFlow() {
	p.setStep(Finish{})
	p.view.TransitionBackwardExit(p.currentPage)
}

// OnFinishTransitionForwardsExit continues the pending step after a forward exit animation.
func (p *Presenter) OnFinishTransitionForwardsExit() {
	switch step := p.step.(type) {
	case nil:
		p.ignore("forward exit finished")
	case Finish:
		p.step = nil
		p.view.NotifyTransitionForwardExitFlowFinished()
	case Advance:
		p.view.TransitionPager(step.Page)
		if p.bounds.IsInsideImageBounds(step.Image) && p.imageIndex(step.Image) > p.currentImage {
			p.view.TransitionBackgroundForward(p.imageIndex(step.Image))
			return
		}
		p.currentPage = step.Page
		p.view.TransitionForwardEnterAfterDelay(step.Page, p.delay)
		p.notifyPageEnter(step.Page)
	}
}

// OnFinishTransitionBackwardsExit continues the pending step after a backward exit animation.
func (p *Presenter) OnFinishTransitionBackwardsExit() {
	switch step := p.step.(type) {
	case nil:
		p.ignore("backward exit finished")
	case Finish:
		p.step = nil
		p.view.NotifyTransitionBackwardExitFlowFinished()
	case Advance:
		p.view.TransitionPager(step.Page)
		if p.bounds.IsInsideImageBounds(step.Image) && p.imageIndex(step.Image) < p.currentImage {
			p.view.TransitionBackgroundBackward(p.imageIndex(step.Image))
			return
		}
		p.currentPage = step.Page
		p.view.TransitionBackwardEnterAfterDelay(step.Page, p.delay)
		p.notifyPageEnterAfterDelay(step.Page)
	}
}

// OnBackgroundAnimationEnd enters the target page once the background has moved.
func (p *Presenter) OnBackgroundAnimationEnd() {
	step, ok := p.step.(Advance)
	if !ok || !p.bounds.IsInsidePageBounds(step.Page) {
		p.ignore("background animation ended")
		return
	}
	// Already committed: the background never ran for this step.
	if step.Page == p.currentPage {
		p.ignore("background animation ended")
		return
	}

	if p.bounds.IsGoingForward(step.Page, p.currentPage) {
		p.view.TransitionForwardEnter(step.Page)
	} else {
		p.view.TransitionBackwardEnter(step.Page)
	}
	p.notifyPageEnter(step.Page)
	p.currentPage = step.Page
	if p.bounds.IsInsideImageBounds(step.Image) {
		p.currentImage = p.imageIndex(step.Image)
	}
}

// OnFinishTransitionEnter settles the step once the enter animation completes.
func (p *Presenter) OnFinishTransitionEnter() {
	step, ok := p.step.(Advance)
	if !ok || !p.bounds.IsInsidePageBounds(step.Page) {
		p.ignore("enter finished")
		return
	}
	p.notifyPageShowFully(p.currentPage)
	p.view.NotifyTransitionEnterFinished()
	p.step = nil
	p.log.Debug("transition settled", "page", p.currentPage, "image", p.currentImage)
}

func (p *Presenter) setStep(s Step) {
	if p.step != nil {
		p.log.Debug("superseding pending step", "previous", stepName(p.step), "next", stepName(s))
	}
	p.step = s
	p.log.Debug("navigation requested", "from", p.currentPage, "step", stepName(s))
}

func (p *Presenter) ignore(callback string) {
	p.log.Debug("ignoring callback", "callback", callback, "step", stepName(p.step), "page", p.currentPage)
}

func (p *Presenter) imageIndex(img Image) int {
	i, _ := img.Index()
	return i
}

func (p *Presenter) notifyPageEnter(page int) {
	if p.visits.MarkFirstEnter(page) {
		p.view.NotifyPageFirstEnter(page)
	}
	p.view.NotifyPageEnter(page)
}

func (p *Presenter) notifyPageEnterAfterDelay(page int) {
	if p.visits.MarkFirstEnter(page) {
		p.view.NotifyPageFirstEnterAfterDelay(page, p.delay)
	}
	p.view.NotifyPageEnterAfterDelay(page, p.delay)
}

func (p *Presenter) notifyPageShowFully(page int) {
	if p.visits.MarkFirstFullyShown(page) {
		p.view.NotifyPageShowFirstFully(page)
		return
	}
	p.view.NotifyPageShowOtherFully(page)
}

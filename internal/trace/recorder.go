package trace

import (
	"sync"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/slider"
)

// Sink receives every recorded command.
type Sink interface {
	Record(cmd Command) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(cmd Command) error

// Record calls f(cmd).
func (f SinkFunc) Record(cmd Command) error {
	return f(cmd)
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSink pushes every command to s. Sink errors are logged and dropped.
func WithSink(s Sink) RecorderOption {
	return func(r *Recorder) {
		if s != nil {
			r.sinks = append(r.sinks, s)
		}
	}
}

// WithLogger sets the logger used to report sink failures.
func WithLogger(l logging.Logger) RecorderOption {
	return func(r *Recorder) {
		if l != nil {
			r.log = l
		}
	}
}

// Recorder is a slider.View decorator that records commands before forwarding them.
type Recorder struct {
	next  slider.View
	sinks []Sink
	log   logging.Logger

	mu       sync.Mutex
	commands []Command
}

var _ slider.View = (*Recorder)(nil)

// NewRecorder wraps next. A nil next only records.
func NewRecorder(next slider.View, opts ...RecorderOption) *Recorder {
	r := &Recorder{next: next, log: logging.GetGlobal()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("component", "trace")
	return r
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

func (r *Recorder) record(cmd Command) {
	r.mu.Lock()
	cmd.Seq = len(r.commands) + 1
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	for _, s := range r.sinks {
		if err := s.Record(cmd); err != nil {
			r.log.Error("trace sink failed", "command", cmd.String(), "error", err)
		}
	}
}

func (r *Recorder) TransitionPager(page int) {
	r.record(PageCommand(TransitionPager, page))
	if r.next != nil {
		r.next.TransitionPager(page)
	}
}

func (r *Recorder) TransitionForwardEnter(page int) {
	r.record(PageCommand(TransitionForwardEnter, page))
	if r.next != nil {
		r.next.TransitionForwardEnter(page)
	}
}

func (r *Recorder) TransitionForwardEnterAfterDelay(page int, delay time.Duration) {
	r.record(DelayedPageCommand(TransitionForwardEnterAfterDelay, page, delay))
	if r.next != nil {
		r.next.TransitionForwardEnterAfterDelay(page, delay)
	}
}

func (r *Recorder) TransitionBackwardEnter(page int) {
	r.record(PageCommand(TransitionBackwardEnter, page))
	if r.next != nil {
		r.next.TransitionBackwardEnter(page)
	}
}

func (r *Recorder) TransitionBackwardEnterAfterDelay(page int, delay time.Duration) {
	r.record(DelayedPageCommand(TransitionBackwardEnterAfterDelay, page, delay))
	if r.next != nil {
		r.next.TransitionBackwardEnterAfterDelay(page, delay)
	}
}

func (r *Recorder) TransitionForwardExit(page int) {
	r.record(PageCommand(TransitionForwardExit, page))
	if r.next != nil {
		r.next.TransitionForwardExit(page)
	}
}

func (r *Recorder) TransitionBackwardExit(page int) {
	r.record(PageCommand(TransitionBackwardExit, page))
	if r.next != nil {
		r.next.TransitionBackwardExit(page)
	}
}

func (r *Recorder) TransitionBackgroundForward(image int) {
	r.record(ImageCommand(TransitionBackgroundForward, image))
	if r.next != nil {
		r.next.TransitionBackgroundForward(image)
	}
}

func (r *Recorder) TransitionBackgroundBackward(image int) {
	r.record(ImageCommand(TransitionBackgroundBackward, image))
	if r.next != nil {
		r.next.TransitionBackgroundBackward(image)
	}
}

func (r *Recorder) NotifyPageFirstEnter(page int) {
	r.record(PageCommand(NotifyPageFirstEnter, page))
	if r.next != nil {
		r.next.NotifyPageFirstEnter(page)
	}
}

func (r *Recorder) NotifyPageEnter(page int) {
	r.record(PageCommand(NotifyPageEnter, page))
	if r.next != nil {
		r.next.NotifyPageEnter(page)
	}
}

func (r *Recorder) NotifyPageFirstEnterAfterDelay(page int, delay time.Duration) {
	r.record(DelayedPageCommand(NotifyPageFirstEnterAfterDelay, page, delay))
	if r.next != nil {
		r.next.NotifyPageFirstEnterAfterDelay(page, delay)
	}
}

func (r *Recorder) NotifyPageEnterAfterDelay(page int, delay time.Duration) {
	r.record(DelayedPageCommand(NotifyPageEnterAfterDelay, page, delay))
	if r.next != nil {
		r.next.NotifyPageEnterAfterDelay(page, delay)
	}
}

func (r *Recorder) NotifyPageShowFirstFully(page int) {
	r.record(PageCommand(NotifyPageShowFirstFully, page))
	if r.next != nil {
		r.next.NotifyPageShowFirstFully(page)
	}
}

func (r *Recorder) NotifyPageShowOtherFully(page int) {
	r.record(PageCommand(NotifyPageShowOtherFully, page))
	if r.next != nil {
		r.next.NotifyPageShowOtherFully(page)
	}
}

func (r *Recorder) NotifyTransitionEnterFinished() {
	r.record(Notification(NotifyTransitionEnterFinished))
	if r.next != nil {
		r.next.NotifyTransitionEnterFinished()
	}
}

func (r *Recorder) NotifyTransitionForwardExitFlowFinished() {
	r.record(Notification(NotifyForwardExitFlowFinished))
	if r.next != nil {
		r.next.NotifyTransitionForwardExitFlowFinished()
	}
}

func (r *Recorder) NotifyTransitionBackwardExitFlowFinished() {
	r.record(Notification(NotifyBackwardExitFlowFinished))
	if r.next != nil {
		r.next.NotifyTransitionBackwardExitFlowFinished()
	}
}

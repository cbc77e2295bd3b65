package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/scheduler"
	"github.com/cristianoliveira/animatedpager/internal/sim"
	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/cristianoliveira/animatedpager/internal/trace"
)

// RunOptions configures a run.
type RunOptions struct {
	// Sinks receive every command as it is emitted.
	Sinks []trace.Sink
	// Logger defaults to the global logger.
	Logger logging.Logger
}

// StepResult holds the outcome of one step.
type StepResult struct {
	Index    int
	Step     Step
	At       time.Duration
	Commands []trace.Command
}

// Result is the outcome of a run.
type Result struct {
	Name          string
	Steps         []StepResult
	Commands      []trace.Command
	Events        []sim.Event
	Notifications []string
	Final         slider.Position
	expectedFinal Final
}

// Run replays sc against a simulated host driven by a virtual clock.
// The context is checked between steps.
func Run(ctx context.Context, sc *Scenario, opts RunOptions) (*Result, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scenario", ErrInvalidStep)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logging.GetGlobal()
	}
	log = log.With("component", "scenario", "scenario", sc.Name)

	clock := scheduler.NewManual()
	simOpts := sim.Options{
		AutoComplete:       sc.Animation.AutoComplete,
		ExitDuration:       time.Duration(sc.Animation.ExitMS) * time.Millisecond,
		EnterDuration:      time.Duration(sc.Animation.EnterMS) * time.Millisecond,
		BackgroundDuration: time.Duration(sc.Animation.BackgroundMS) * time.Millisecond,
	}
	timeline := sim.NewTimeline(clock)
	pager := sim.NewPager(timeline, simOpts)
	background := sim.NewBackground(timeline, simOpts, sc.Slider.FirstImage)
	listener := sim.NewListener(clock)

	recOpts := []trace.RecorderOption{trace.WithLogger(log)}
	for _, s := range opts.Sinks {
		recOpts = append(recOpts, trace.WithSink(s))
	}
	var recorder *trace.Recorder
	s := slider.New(pager, background, listener, clock, sc.SliderConfig(),
		slider.WithViewWrapper(func(v slider.View) slider.View {
			recorder = trace.NewRecorder(v, recOpts...)
			return recorder
		}),
		slider.WithPresenterOptions(slider.WithLogger(log)),
	)

	res := &Result{Name: sc.Name, expectedFinal: sc.Final}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %q interrupted before step %d: %w", sc.Name, i+1, err)
		}
		before := recorder.Len()
		at := clock.Now()
		if err := apply(s, clock, step); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		cmds := recorder.Commands()[before:]
		log.Debug("step applied", "step", i+1, "action", step.String(), "commands", len(cmds))
		res.Steps = append(res.Steps, StepResult{Index: i + 1, Step: step, At: at, Commands: cmds})
	}

	res.Commands = recorder.Commands()
	res.Events = timeline.Events()
	res.Notifications = listener.Notifications()
	res.Final = s.Position()
	log.Info("scenario finished", "steps", len(res.Steps), "commands", len(res.Commands),
		"page", res.Final.Page, "image", res.Final.Image)
	return res, nil
}

func apply(s *slider.Slider, clock *scheduler.Manual, step Step) error {
	switch step.Action {
	case ActionFirstScreen:
		s.FirstScreenViewCreated()
	case ActionGoTo:
		s.GoToPage(*step.Page, step.image())
	case ActionForwardExitFlow:
		s.ForwardExitFlow()
	case ActionBackwardExitFlow:
		s.BackwardExitFlow()
	case ActionFinishForwardExit:
		s.FinishTransitionForwardsExit()
	case ActionFinishBackwardExit:
		s.FinishTransitionBackwardsExit()
	case ActionBackgroundEnd:
		s.BackgroundAnimationEnd()
	case ActionFinishEnter:
		s.FinishTransitionEnter()
	case ActionWait:
		d, err := step.wait()
		if err != nil {
			return err
		}
		clock.Advance(d)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidStep, step.Action)
	}
	return nil
}

// Check compares every step that declares expectations with the commands it
// produced, then the final position when one is declared.
func (r *Result) Check() error {
	for _, st := range r.Steps {
		if st.Step.Expect == nil {
			continue
		}
		if err := CheckCommands(st.Commands, st.Step.Expect); err != nil {
			return fmt.Errorf("step %d (%s): %w", st.Index, st.Step, err)
		}
	}
	if p := r.expectedFinal.Page; p != nil && *p != r.Final.Page {
		return fmt.Errorf("%w: final page: want %d, got %d", ErrExpectationMismatch, *p, r.Final.Page)
	}
	if i := r.expectedFinal.Image; i != nil && *i != r.Final.Image {
		return fmt.Errorf("%w: final image: want %d, got %d", ErrExpectationMismatch, *i, r.Final.Image)
	}
	return nil
}

// CheckCommands compares got with the expected command strings and reports
// the first difference.
func CheckCommands(got []trace.Command, want []string) error {
	n := len(got)
	if len(want) > n {
		n = len(want)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(got):
			return fmt.Errorf("%w: command %d: want %q, got nothing", ErrExpectationMismatch, i+1, want[i])
		case i >= len(want):
			return fmt.Errorf("%w: command %d: unexpected %q", ErrExpectationMismatch, i+1, got[i].String())
		case normalize(want[i]) != got[i].String():
			return fmt.Errorf("%w: command %d: want %q, got %q", ErrExpectationMismatch, i+1, want[i], got[i].String())
		}
	}
	return nil
}

// normalize lets expectations use either "f(1,2)" or "f(1, 2)".
func normalize(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	return strings.ReplaceAll(s, ",", ", ")
}

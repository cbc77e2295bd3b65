// Package scenario loads and replays scripted slider sessions.
//
// A scenario is a TOML document describing a slider, how its simulated
// animations complete, and a list of steps. Each step may list the view
// commands it is expected to produce:
//
//	name = "forward with background"
//
//	[slider]
//	page_count = 4
//	image_count = 3
//
//	[[steps]]
//	action = "goto"
//	page = 1
//	image = 1
//	expect = ["transitionForwardExit(0)"]
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/cristianoliveira/animatedpager/internal/slider"
)

// Step actions.
const (
	ActionFirstScreen        = "first-screen"
	ActionGoTo               = "goto"
	ActionForwardExitFlow    = "forward-exit-flow"
	ActionBackwardExitFlow   = "backward-exit-flow"
	ActionFinishForwardExit  = "finish-forward-exit"
	ActionFinishBackwardExit = "finish-backward-exit"
	ActionBackgroundEnd      = "background-end"
	ActionFinishEnter        = "finish-enter"
	ActionWait               = "wait"
)

var knownActions = map[string]bool{
	ActionFirstScreen:        true,
	ActionGoTo:               true,
	ActionForwardExitFlow:    true,
	ActionBackwardExitFlow:   true,
	ActionFinishForwardExit:  true,
	ActionFinishBackwardExit: true,
	ActionBackgroundEnd:      true,
	ActionFinishEnter:        true,
	ActionWait:               true,
}

var (
	// ErrInvalidStep indicates a step that cannot be executed.
	ErrInvalidStep = errors.New("invalid scenario step")
	// ErrExpectationMismatch indicates a run whose commands differ from the expected ones.
	ErrExpectationMismatch = errors.New("scenario expectation mismatch")
)

// Slider holds the slider section.
type Slider struct {
	PageCount    int `toml:"page_count"`
	ImageCount   int `toml:"image_count"`
	FirstPage    int `toml:"first_page"`
	FirstImage   int `toml:"first_image"`
	EnterDelayMS int `toml:"enter_delay_ms"`
}

// Animation holds the simulated animation section.
type Animation struct {
	AutoComplete bool `toml:"auto_complete"`
	ExitMS       int  `toml:"exit_duration_ms"`
	EnterMS      int  `toml:"enter_duration_ms"`
	BackgroundMS int  `toml:"background_duration_ms"`
}

// Step is a single scripted action.
type Step struct {
	Action   string   `toml:"action"`
	Page     *int     `toml:"page"`
	Image    *int     `toml:"image"`
	Duration string   `toml:"duration"`
	Expect   []string `toml:"expect"`
}

// Final is the optional expected position after the last step.
type Final struct {
	Page  *int `toml:"page"`
	Image *int `toml:"image"`
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Name      string    `toml:"name"`
	Slider    Slider    `toml:"slider"`
	Animation Animation `toml:"animation"`
	Steps     []Step    `toml:"steps"`
	Final     Final     `toml:"final"`
}

// New returns an empty scenario holding the default slider and animation settings.
func New(name string) *Scenario {
	return &Scenario{
		Name: name,
		Slider: Slider{
			PageCount:    4,
			ImageCount:   3,
			EnterDelayMS: int(slider.DefaultEnterDelay / time.Millisecond),
		},
		Animation: Animation{
			ExitMS:       300,
			EnterMS:      300,
			BackgroundMS: 450,
		},
	}
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	sc := New("")
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse scenario at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// SliderConfig converts the slider section.
func (s *Scenario) SliderConfig() slider.Config {
	return slider.Config{
		PageCount:  s.Slider.PageCount,
		ImageCount: s.Slider.ImageCount,
		FirstPage:  s.Slider.FirstPage,
		FirstImage: s.Slider.FirstImage,
		EnterDelay: time.Duration(s.Slider.EnterDelayMS) * time.Millisecond,
	}
}

// Validate checks the slider section and every step.
func (s *Scenario) Validate() error {
	if err := s.SliderConfig().Validate(); err != nil {
		return err
	}
	if s.Animation.ExitMS < 0 || s.Animation.EnterMS < 0 || s.Animation.BackgroundMS < 0 {
		return fmt.Errorf("%w: animation durations must not be negative", slider.ErrInvalidConfig)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: scenario has no steps", ErrInvalidStep)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	if !knownActions[st.Action] {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidStep, st.Action)
	}
	if st.Action == ActionGoTo && st.Page == nil {
		return fmt.Errorf("%w: goto requires a page", ErrInvalidStep)
	}
	if st.Action != ActionGoTo && (st.Page != nil || st.Image != nil) {
		return fmt.Errorf("%w: %s takes no page or image", ErrInvalidStep, st.Action)
	}
	if st.Action == ActionWait {
		if _, err := st.wait(); err != nil {
			return err
		}
	} else if st.Duration != "" {
		return fmt.Errorf("%w: %s takes no duration", ErrInvalidStep, st.Action)
	}
	return nil
}

func (st Step) wait() (time.Duration, error) {
	d, err := time.ParseDuration(st.Duration)
	if err != nil {
		return 0, fmt.Errorf("%w: wait duration %q: %v", ErrInvalidStep, st.Duration, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: wait duration must be positive, got %s", ErrInvalidStep, d)
	}
	return d, nil
}

func (st Step) image() slider.Image {
	if st.Image == nil {
		return slider.NoImage
	}
	return slider.ImageAt(*st.Image)
}

// String describes the step, e.g. "goto page=1 image=2".
func (st Step) String() string {
	switch st.Action {
	case ActionGoTo:
		if st.Page == nil {
			return st.Action
		}
		return fmt.Sprintf("%s page=%d image=%s", st.Action, *st.Page, st.image())
	case ActionWait:
		return fmt.Sprintf("%s %s", st.Action, st.Duration)
	default:
		return st.Action
	}
}

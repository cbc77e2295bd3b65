package state

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/cristianoliveira/animatedpager/internal/tui/render"
)

const (
	maxLogEntries    = 32
	defaultQuitDelay = 800 * time.Millisecond
	horizontalMargin = 4
)

// Config holds the demo settings.
type Config struct {
	Slider             slider.Config
	ExitDuration       time.Duration
	EnterDuration      time.Duration
	BackgroundDuration time.Duration
	// QuitDelay is how long the final status stays on screen.
	QuitDelay time.Duration
	// ViewWrapper, when set, sees every slider command (journaling).
	ViewWrapper func(slider.View) slider.View
	Logger      logging.Logger
}

// Model represents the TUI model for bubbletea. It hosts the slider: it is
// its pager, background switcher, transition listener and scheduler.
type Model struct {
	cfg    Config
	slider *slider.Slider
	keys   keyMap
	help   help.Model

	paginator paginator.Model
	width     int

	// Foreground
	page      int
	phase     string
	direction string
	firstSeen int

	// Background
	image           int
	backgroundPhase string

	pageListener       slider.AnimationListener
	backgroundListener slider.BackgroundListener

	timers    map[int]func()
	nextTimer int
	cmds      []tea.Cmd

	log    []string
	status string
	done   bool
}

var (
	_ tea.Model                 = (*Model)(nil)
	_ slider.Scheduler          = (*Model)(nil)
	_ slider.TransitionListener = (*Model)(nil)
)

// NewModel creates the demo model.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Slider.Validate(); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	if cfg.QuitDelay <= 0 {
		cfg.QuitDelay = defaultQuitDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetGlobal()
	}

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render("●")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("○")
	p.SetTotalPages(cfg.Slider.PageCount)
	p.Page = cfg.Slider.FirstPage

	m := &Model{
		cfg:             cfg,
		keys:            defaultKeyMap(),
		help:            help.New(),
		paginator:       p,
		page:            cfg.Slider.FirstPage,
		phase:           render.PhaseHidden,
		firstSeen:       -1,
		image:           cfg.Slider.FirstImage,
		backgroundPhase: render.PhaseSettled,
		timers:          make(map[int]func()),
	}

	opts := []slider.SliderOption{
		slider.WithPresenterOptions(slider.WithLogger(cfg.Logger)),
	}
	if cfg.ViewWrapper != nil {
		opts = append(opts, slider.WithViewWrapper(cfg.ViewWrapper))
	}
	m.slider = slider.New(pagerHost{m: m}, backgroundHost{m: m}, m, m, cfg.Slider, opts...)
	return m, nil
}

// Init starts the first page.
func (m *Model) Init() tea.Cmd {
	return firstScreen
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case firstScreenMsg:
		m.slider.FirstScreenViewCreated()
	case timerMsg:
		if fn, ok := m.timers[msg.id]; ok {
			delete(m.timers, msg.id)
			fn()
		}
	case quitAfterMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, m.flush()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case m.done:
		return nil
	case key.Matches(msg, m.keys.Next):
		m.goTo(m.slider.Position().Page + 1)
	case key.Matches(msg, m.keys.Prev):
		m.goTo(m.slider.Position().Page - 1)
	case key.Matches(msg, m.keys.ForwardExit):
		m.slider.ForwardExitFlow()
	case key.Matches(msg, m.keys.BackwardExit):
		m.slider.BackwardExitFlow()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) goTo(page int) {
	m.slider.GoToPage(page, m.imageFor(page))
}

// imageFor maps a page to a background image so that both layers cover the
// whole flow at different rates.
func (m *Model) imageFor(page int) slider.Image {
	pages, images := m.cfg.Slider.PageCount, m.cfg.Slider.ImageCount
	if page < 0 || page >= pages {
		return slider.NoImage
	}
	return slider.ImageAt(page * images / pages)
}

func (m *Model) flush() tea.Cmd {
	if len(m.cmds) == 0 {
		return nil
	}
	cmds := m.cmds
	m.cmds = nil
	return tea.Batch(cmds...)
}

// View renders the demo.
func (m *Model) View() string {
	width := m.width - horizontalMargin
	if width < 0 {
		width = 0
	}
	sections := []string{
		render.Title("animatedpager"),
		render.Background(render.BackgroundState{
			Image: m.image,
			Count: m.cfg.Slider.ImageCount,
			Phase: m.backgroundPhase,
			Width: width,
		}),
		render.Page(render.PageState{
			Index:     m.page,
			Count:     m.cfg.Slider.PageCount,
			Phase:     m.phase,
			Direction: m.direction,
			FirstSeen: m.firstSeen == m.page,
			Width:     width,
		}),
		m.paginator.View(),
	}
	if status := render.Status(m.status); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, render.Log(m.log), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Position returns the slider position.
func (m *Model) Position() slider.Position {
	return m.slider.Position()
}

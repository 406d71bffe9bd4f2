package breath

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	breathdto "calm/internal/modules/breath/dto"
	"calm/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the breath use-case.
type Port interface {
	Start(ctx context.Context) (breathdto.StartOutput, error)
	Abort(ctx context.Context) bool
	State(ctx context.Context) breathdto.StateOutput
	Sequence(ctx context.Context) breathdto.SequenceOutput
	Subscribe(fn func(breathdto.EventOutput)) func()
}

// ─── messages ────────────────────────────────────────────────────────────────

// EventMsg carries one controller event into the Bubble Tea loop.
type EventMsg struct{ Event breathdto.EventOutput }

// StartFailedMsg is sent when Start is rejected.
type StartFailedMsg struct{ Err error }

type tickMsg struct{}

const (
	frameInterval = 100 * time.Millisecond
	pulseFrames   = 25
	eventBuffer   = 32
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the start screen and the running session. It never changes
// session state itself; it only mirrors controller events.
type Model struct {
	port        Port
	events      chan breathdto.EventOutput
	unsubscribe func()

	palette theme.Palette
	styles  theme.Styles

	active   bool
	message  string
	index    int
	total    int
	flourish bool
	frame    int

	width  int
	height int
}

// New subscribes to the controller. Events are buffered; a run emits at most
// a handful, so a full buffer only happens once the program has stopped
// reading and dropping is harmless.
func New(port Port, pal theme.Palette) Model {
	m := Model{
		port:    port,
		events:  make(chan breathdto.EventOutput, eventBuffer),
		palette: pal,
		styles:  theme.NewStyles(pal),
		total:   len(port.Sequence(context.Background()).Phases),
	}
	events := m.events
	m.unsubscribe = port.Subscribe(func(ev breathdto.EventOutput) {
		select {
		case events <- ev:
		default:
		}
	})
	return m
}

func (m Model) Init() tea.Cmd { return tea.Batch(m.waitForEvent(), tick()) }

// Close detaches from the controller and cancels any run in flight so no
// timer outlives the view.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.port.Abort(context.Background())
}

func (m *Model) Restyle(pal theme.Palette) {
	m.palette = pal
	m.styles = theme.NewStyles(pal)
}

func (m Model) Active() bool { return m.active }

func (m Model) Start() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.port.Start(context.Background()); err != nil {
			return StartFailedMsg{Err: err}
		}
		return nil
	}
}

func (m Model) Abort() tea.Cmd {
	return func() tea.Msg {
		m.port.Abort(context.Background())
		return nil
	}
}

func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: ev}
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case EventMsg:
		ev := msg.Event
		switch ev.Kind {
		case "phase":
			if !m.active {
				m.active = true
				m.frame = 0
			}
			m.message = ev.Label
			m.index = ev.Index
			m.total = ev.Total
			m.flourish = ev.Flourish
		case "completed", "aborted":
			m.active = false
			m.message = ""
			m.index = 0
			m.flourish = false
		}
		return m, m.waitForEvent()

	case tickMsg:
		m.frame++
		return m, tick()
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.active {
		return m.sessionView()
	}
	return m.startView()
}

func (m Model) startView() string {
	orb := renderOrb(4*pulse(m.frame, 30, 1.12), m.palette.Orb)
	parts := []string{
		m.styles.Title.Render("10 Second Calm"),
		m.styles.Sub.Render("Breathe deeply and find calm in just 10 seconds."),
		"",
		orb,
		"",
		m.styles.Button.Render("Start calming  ⏎"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m Model) sessionView() string {
	orb := renderOrb(4*pulse(m.frame, pulseFrames, 1.2), m.palette.Orb)
	parts := []string{orb, "", m.styles.Title.Render(m.message)}
	if m.flourish {
		parts = append(parts, "", m.styles.Hot.Render(buddha))
	}
	parts = append(parts, "", m.styles.Muted.Render(fmt.Sprintf("⏳ %d / %d", m.index+1, m.total)))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Message is the current phase label, empty when idle.
func (m Model) Message() string { return strings.TrimSpace(m.message) }

package share

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sharedto "calm/internal/modules/share/dto"
	apperrors "calm/internal/platform/errors"
	"calm/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Card(ctx context.Context) (sharedto.CardOutput, error)
	Targets(ctx context.Context) ([]sharedto.TargetOutput, error)
	Open(ctx context.Context, platform string) (sharedto.TargetOutput, error)
	CopyLink(ctx context.Context) (sharedto.LinkOutput, error)
	ExportImage(ctx context.Context, dir string) (sharedto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type loadedMsg struct {
	card    sharedto.CardOutput
	targets []sharedto.TargetOutput
	err     error
}

// NoticeMsg is a one-line, non-blocking result of a share action.
type NoticeMsg struct{ Text string }

// CloseMsg asks the parent to hide the overlay.
type CloseMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the share overlay: the card preview plus share actions.
type Model struct {
	port      Port
	exportDir string
	styles    theme.Styles
	pal       theme.Palette

	card    sharedto.CardOutput
	targets []sharedto.TargetOutput
	err     error
	loaded  bool
}

func New(port Port, exportDir string, pal theme.Palette) Model {
	return Model{port: port, exportDir: exportDir, styles: theme.NewStyles(pal), pal: pal}
}

func (m *Model) Restyle(pal theme.Palette) {
	m.pal = pal
	m.styles = theme.NewStyles(pal)
}

// Load refreshes the card and targets; call it whenever the overlay opens.
func (m Model) Load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		card, err := m.port.Card(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		targets, err := m.port.Targets(ctx)
		return loadedMsg{card: card, targets: targets, err: err}
	}
}

func (m Model) ExportImage() tea.Cmd { return m.ExportImageTo(m.exportDir) }

func (m Model) ExportImageTo(dir string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.ExportImage(context.Background(), dir)
		if err != nil {
			return NoticeMsg{Text: "could not create image: " + err.Error()}
		}
		return NoticeMsg{Text: "saved " + out.Path}
	}
}

func (m Model) CopyLink() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.CopyLink(context.Background())
		if err != nil {
			if errors.Is(err, apperrors.ErrClipboard) && out.URL != "" {
				return NoticeMsg{Text: "copy failed, link: " + out.URL}
			}
			return NoticeMsg{Text: "copy failed: " + err.Error()}
		}
		return NoticeMsg{Text: "Share link copied to clipboard!"}
	}
}

func (m Model) OpenPlatform(platform string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Open(context.Background(), platform)
		if err != nil {
			if out.URL != "" {
				return NoticeMsg{Text: "open failed, link: " + out.URL}
			}
			return NoticeMsg{Text: "open failed: " + err.Error()}
		}
		return NoticeMsg{Text: "opened " + out.Label}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loaded = true
		m.err = msg.err
		m.card = msg.card
		m.targets = msg.targets
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "x":
			return m, func() tea.Msg { return CloseMsg{} }
		case "i":
			return m, m.ExportImage()
		case "c":
			return m, m.CopyLink()
		case "n":
			return m, m.OpenPlatform("web")
		default:
			if idx, ok := digit(msg.String()); ok && idx < len(m.targets) {
				return m, m.OpenPlatform(m.targets[idx].Platform)
			}
		}
	}
	return m, nil
}

func digit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loaded {
		return m.styles.Muted.Render("loading card…")
	}
	if m.err != nil {
		return m.styles.Muted.Render("card unavailable: " + m.err.Error())
	}

	stat := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Muted.Render(label),
			m.styles.Title.Render(value),
		)
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Zen Streak", m.card.StreakText),
		"      ",
		stat("Last session", m.card.LastDateText),
	)
	card := m.styles.Pane.BorderForeground(m.pal.Primary).Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render(m.card.Title),
		m.styles.Sub.Render("“"+m.card.Quote+"”"),
		"",
		stats,
		"",
		m.styles.Muted.Render(m.card.Footer+" ✨"),
	))

	actions := strings.Join([]string{
		m.styles.Chip.Render("i  Share as Image"),
		m.styles.Chip.Render("c  Copy Link"),
		m.styles.Chip.Render("n  Native Share"),
	}, " ")

	chips := make([]string, 0, len(m.targets))
	for i, t := range m.targets {
		if t.Platform == "web" {
			continue
		}
		chips = append(chips, m.styles.Chip.Render(fmt.Sprintf("%d %s", i+1, t.Label)))
	}
	platforms := lipgloss.JoinHorizontal(lipgloss.Top, chips...)

	return lipgloss.JoinVertical(lipgloss.Center, card, "", actions, platforms, "", m.styles.Muted.Render("esc to close"))
}

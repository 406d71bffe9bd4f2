package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	breathdto "calm/internal/modules/breath/dto"
	preferencedto "calm/internal/modules/preference/dto"
	streakdto "calm/internal/modules/streak/dto"
	apperrors "calm/internal/platform/errors"
	"calm/internal/ui/components"
	"calm/internal/ui/theme"
	breathview "calm/internal/ui/views/breath"
	shareview "calm/internal/ui/views/share"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type breathPort interface {
	breathview.Port
	SetSound(ctx context.Context, on bool) breathdto.StateOutput
}

type streakPort interface {
	Status(ctx context.Context) (streakdto.StatusOutput, error)
}

type preferencePort interface {
	Get(ctx context.Context) (preferencedto.PreferencesOutput, error)
	SetTheme(ctx context.Context, theme string) (preferencedto.PreferencesOutput, error)
	ToggleTheme(ctx context.Context) (preferencedto.PreferencesOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type streakLoadedMsg struct {
	status streakdto.StatusOutput
	err    error
}

type themeLoadedMsg struct {
	prefs preferencedto.PreferencesOutput
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Start   key.Binding
	Abort   key.Binding
	Share   key.Binding
	Theme   key.Binding
	Sound   key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎/space", "start")),
		Abort:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
		Share:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Sound:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Share, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Abort, k.Share},
		{k.Theme, k.Sound},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the share overlay, the help
// overlay, the command palette and the status bar. Session state lives in
// the breath controller; this layer only mirrors it.
type Model struct {
	breath breathPort
	streak streakPort
	prefs  preferencePort

	breathView breathview.Model
	shareView  shareview.Model

	pal       theme.Palette
	styles    theme.Styles
	keys      keyMap
	help      help.Model
	showHelp  bool
	showShare bool
	palette   components.Palette

	streakStatus streakdto.StatusOutput
	sound        bool
	status       string
	width        int
	height       int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	breath breathPort,
	streak streakPort,
	prefs preferencePort,
	share shareview.Port,
	exportDir string,
) Model {
	pal := theme.Dark
	return Model{
		breath:     breath,
		streak:     streak,
		prefs:      prefs,
		breathView: breathview.New(breath, pal),
		shareView:  shareview.New(share, exportDir, pal),
		pal:        pal,
		styles:     theme.NewStyles(pal),
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(pal),
		sound:      breath.State(context.Background()).Sound,
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.breathView.Init(),
		m.loadThemeCmd(),
		m.loadStreakCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette owns the keyboard while open. Everything else still flows
	// on so the breath view keeps re-arming its event and tick commands.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width

	case breathview.EventMsg:
		switch msg.Event.Kind {
		case "completed":
			if msg.Event.RecordErr != nil {
				m.status = "could not save streak: " + msg.Event.RecordErr.Error()
			} else {
				m.status = "Well done. Streak: " + dayCount(msg.Event.Streak)
			}
			cmds = append(cmds, m.loadStreakCmd())
		case "aborted":
			m.status = "session stopped"
		}

	case breathview.StartFailedMsg:
		if errors.Is(msg.Err, apperrors.ErrSessionActive) {
			m.status = "a session is already running"
		} else {
			m.status = "start failed: " + msg.Err.Error()
		}
		return m, nil

	case streakLoadedMsg:
		if msg.err != nil {
			m.status = "streak: " + msg.err.Error()
		} else {
			m.streakStatus = msg.status
		}
		return m, nil

	case themeLoadedMsg:
		if msg.err != nil {
			m.status = "theme: " + msg.err.Error()
			return m, nil
		}
		m.restyle(theme.For(msg.prefs.Theme))
		return m, nil

	case shareview.NoticeMsg:
		m.status = msg.Text
		return m, nil

	case shareview.CloseMsg:
		m.showShare = false
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.showShare {
			var cmd tea.Cmd
			m.shareView, cmd = m.shareView.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m.quit()
		case "?":
			m.showHelp = true
		case ":":
			return m, m.palette.Open()
		case "enter", " ":
			if !m.breathView.Active() {
				cmds = append(cmds, m.breathView.Start())
			}
		case "esc":
			if m.breathView.Active() {
				cmds = append(cmds, m.breathView.Abort())
			}
		case "s":
			if !m.breathView.Active() {
				cmds = append(cmds, m.openShare())
			}
		case "t":
			cmds = append(cmds, m.toggleThemeCmd())
		case "m":
			m.toggleSound()
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.breathView, cmd = m.breathView.Update(msg)
	cmds = append(cmds, cmd)
	if m.showShare {
		m.shareView, cmd = m.shareView.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.breathView.Close()
	return m, tea.Quit
}

func (m *Model) openShare() tea.Cmd {
	m.showShare = true
	return m.shareView.Load()
}

func (m *Model) toggleSound() {
	m.sound = m.breath.SetSound(context.Background(), !m.sound).Sound
	if m.sound {
		m.status = "sound on"
	} else {
		m.status = "sound off"
	}
}

func (m *Model) restyle(pal theme.Palette) {
	m.pal = pal
	m.styles = theme.NewStyles(pal)
	m.palette.Restyle(pal)
	m.breathView.Restyle(pal)
	m.shareView.Restyle(pal)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.showShare:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.shareView.View())
	default:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.breathView.View())
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar))
}

func (m Model) renderHeader() string {
	left := m.styles.Title.Render("calm") + "  " + m.styles.Sub.Render(streakLine(m.streakStatus))
	icons := []string{"☀", "🔊"}
	if m.pal.Name == theme.Light.Name {
		icons[0] = "☾"
	}
	if !m.sound {
		icons[1] = "🔇"
	}
	right := m.styles.Muted.Render(strings.Join(icons, "  "))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.styles.Muted.Render("?:help  s:share  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + m.styles.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

func streakLine(st streakdto.StatusOutput) string {
	if !st.HasLast {
		return "No streak yet. Take 10 seconds."
	}
	line := "🔥 " + dayCount(st.Count)
	if !st.Alive {
		return line + " · lapsed, breathe today to start again"
	}
	if st.DoneToday {
		return line + " · done today"
	}
	return line + " · breathe today to keep it"
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "breathe":
		return m, m.breathView.Start()

	case "abort":
		return m, m.breathView.Abort()

	case "share":
		return m, m.openShare()

	case "share:image":
		dir := ""
		if len(parts) >= 2 {
			dir = parts[1]
		}
		return m, m.exportCmd(dir)

	case "share:copy":
		return m, m.shareView.CopyLink()

	case "share:open":
		if len(parts) < 2 {
			m.status = "usage: share:open <platform>"
			return m, nil
		}
		return m, m.shareView.OpenPlatform(parts[1])

	case "theme:toggle":
		return m, m.toggleThemeCmd()

	case "theme:set":
		if len(parts) < 2 {
			m.status = "usage: theme:set <dark|light>"
			return m, nil
		}
		return m, m.setThemeCmd(parts[1])

	case "sound:toggle":
		m.toggleSound()
		return m, nil

	case "streak":
		m.status = streakLine(m.streakStatus)
		return m, m.loadStreakCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadStreakCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.streak.Status(context.Background())
		return streakLoadedMsg{status: st, err: err}
	}
}

func (m Model) loadThemeCmd() tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.prefs.Get(context.Background())
		return themeLoadedMsg{prefs: prefs, err: err}
	}
}

func (m Model) toggleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.prefs.ToggleTheme(context.Background())
		return themeLoadedMsg{prefs: prefs, err: err}
	}
}

func (m Model) setThemeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.prefs.SetTheme(context.Background(), name)
		return themeLoadedMsg{prefs: prefs, err: err}
	}
}

// exportCmd writes the card image; an empty dir uses the configured one.
func (m Model) exportCmd(dir string) tea.Cmd {
	if dir == "" {
		return m.shareView.ExportImage()
	}
	return m.shareView.ExportImageTo(dir)
}

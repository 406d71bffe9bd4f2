package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one display theme. Colors follow the web card: slate and indigo
// for dark, paper and periwinkle for light.
type Palette struct {
	Name    string
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Sub     lipgloss.Color
	Hint    lipgloss.Color
	Primary lipgloss.Color
	Outline lipgloss.Color
	Orb     [3]lipgloss.Color
	Accent  lipgloss.Color
}

var Dark = Palette{
	Name:    "dark",
	Base:    lipgloss.Color("#0f172a"),
	Mantle:  lipgloss.Color("#1e293b"),
	Surface: lipgloss.Color("#312e81"),
	Text:    lipgloss.Color("#e5e7eb"),
	Sub:     lipgloss.Color("#cbd5e1"),
	Hint:    lipgloss.Color("#94a3b8"),
	Primary: lipgloss.Color("#3b82f6"),
	Outline: lipgloss.Color("#334155"),
	Orb:     [3]lipgloss.Color{"#38bdf8", "#818cf8", "#1e40af"},
	Accent:  lipgloss.Color("#a78bfa"),
}

var Light = Palette{
	Name:    "light",
	Base:    lipgloss.Color("#e6f0ff"),
	Mantle:  lipgloss.Color("#eef2ff"),
	Surface: lipgloss.Color("#ede9fe"),
	Text:    lipgloss.Color("#111827"),
	Sub:     lipgloss.Color("#374151"),
	Hint:    lipgloss.Color("#6b7280"),
	Primary: lipgloss.Color("#2563eb"),
	Outline: lipgloss.Color("#e5e7eb"),
	Orb:     [3]lipgloss.Color{"#60a5fa", "#a5b4fc", "#2563eb"},
	Accent:  lipgloss.Color("#4338ca"),
}

func For(name string) Palette {
	if name == Light.Name {
		return Light
	}
	return Dark
}

// Styles are derived per palette so a theme toggle restyles everything.
type Styles struct {
	App    lipgloss.Style
	Pane   lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Sub    lipgloss.Style
	Hot    lipgloss.Style
	Button lipgloss.Style
	Chip   lipgloss.Style
	Bar    lipgloss.Style
}

func NewStyles(p Palette) Styles {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Outline).
		Foreground(p.Text).
		Padding(1, 3)
	return Styles{
		App:   lipgloss.NewStyle().Background(p.Base).Foreground(p.Text),
		Pane:  pane,
		Title: lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(p.Hint),
		Sub:   lipgloss.NewStyle().Foreground(p.Sub),
		Hot:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Button: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 3),
		Chip: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Outline).
			Foreground(p.Text).
			Padding(0, 1),
		Bar: lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Sub),
	}
}

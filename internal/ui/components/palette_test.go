package components_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"calm/internal/ui/components"
	"calm/internal/ui/theme"
)

func typeInto(p components.Palette, s string) components.Palette {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestPaletteSubmitsTrimmedInput(t *testing.T) {
	t.Parallel()
	p := components.NewPalette(theme.Dark)
	require.False(t, p.Visible())
	p.Open()
	require.True(t, p.Visible())

	p = typeInto(p, "share:open x  ")
	require.True(t, strings.Contains(p.View(), "share:open"))

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, p.Visible())
	require.NotNil(t, cmd)
	require.Equal(t, components.PaletteSubmitMsg{Input: "share:open x"}, cmd())
}

func TestPaletteCancel(t *testing.T) {
	t.Parallel()
	p := components.NewPalette(theme.Light)
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, p.Visible())
	require.Equal(t, components.PaletteCancelMsg{}, cmd())
	require.Empty(t, p.View())
}

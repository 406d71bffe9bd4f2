package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	breathdto "calm/internal/modules/breath/dto"
	preferencedto "calm/internal/modules/preference/dto"
	sharedto "calm/internal/modules/share/dto"
	streakdto "calm/internal/modules/streak/dto"
	apperrors "calm/internal/platform/errors"
	"calm/internal/ui/theme"
	breathview "calm/internal/ui/views/breath"
	shareview "calm/internal/ui/views/share"
)

type fakeBreath struct {
	sound   bool
	started int
	aborted int
}

func (f *fakeBreath) Start(context.Context) (breathdto.StartOutput, error) {
	f.started++
	return breathdto.StartOutput{RunID: "run-1"}, nil
}
func (f *fakeBreath) Abort(context.Context) bool { f.aborted++; return true }
func (f *fakeBreath) State(context.Context) breathdto.StateOutput {
	return breathdto.StateOutput{Status: "idle", Sound: f.sound}
}
func (f *fakeBreath) Sequence(context.Context) breathdto.SequenceOutput {
	return breathdto.SequenceOutput{Phases: make([]breathdto.PhaseOutput, 3)}
}
func (f *fakeBreath) Subscribe(func(breathdto.EventOutput)) func() { return func() {} }
func (f *fakeBreath) SetSound(_ context.Context, on bool) breathdto.StateOutput {
	f.sound = on
	return breathdto.StateOutput{Status: "idle", Sound: on}
}

type fakeStreak struct{ status streakdto.StatusOutput }

func (f fakeStreak) Status(context.Context) (streakdto.StatusOutput, error) { return f.status, nil }

type fakePrefs struct{ theme string }

func (f *fakePrefs) Get(context.Context) (preferencedto.PreferencesOutput, error) {
	return preferencedto.PreferencesOutput{Theme: f.theme}, nil
}
func (f *fakePrefs) SetTheme(_ context.Context, t string) (preferencedto.PreferencesOutput, error) {
	f.theme = t
	return preferencedto.PreferencesOutput{Theme: t}, nil
}
func (f *fakePrefs) ToggleTheme(context.Context) (preferencedto.PreferencesOutput, error) {
	if f.theme == "light" {
		f.theme = "dark"
	} else {
		f.theme = "light"
	}
	return preferencedto.PreferencesOutput{Theme: f.theme}, nil
}

type fakeShare struct{}

func (fakeShare) Card(context.Context) (sharedto.CardOutput, error) {
	return sharedto.CardOutput{Streak: 2, StreakText: "2 days", LastDateText: "2024-06-01"}, nil
}
func (fakeShare) Targets(context.Context) ([]sharedto.TargetOutput, error) { return nil, nil }
func (fakeShare) Open(context.Context, string) (sharedto.TargetOutput, error) {
	return sharedto.TargetOutput{}, nil
}
func (fakeShare) CopyLink(context.Context) (sharedto.LinkOutput, error) {
	return sharedto.LinkOutput{}, nil
}
func (fakeShare) ExportImage(context.Context, string) (sharedto.ExportOutput, error) {
	return sharedto.ExportOutput{}, nil
}

func newTestModel(t *testing.T) (Model, *fakeBreath, *fakePrefs) {
	t.Helper()
	breath := &fakeBreath{sound: true}
	prefs := &fakePrefs{theme: "dark"}
	return NewModel(breath, fakeStreak{}, prefs, fakeShare{}, t.TempDir()), breath, prefs
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCompletedEventReportsStreak(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(breathview.EventMsg{Event: breathdto.EventOutput{Kind: "completed", Streak: 3}})
	require.NotNil(t, cmd)
	require.Equal(t, "Well done. Streak: 3 days", next.(Model).status)
}

func TestCompletedEventSurfacesRecordError(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, _ := m.Update(breathview.EventMsg{Event: breathdto.EventOutput{Kind: "completed", RecordErr: apperrors.ErrInvalidInput}})
	require.Contains(t, next.(Model).status, "could not save streak")
}

func TestStartRejectedWhileActive(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, _ := m.Update(breathview.StartFailedMsg{Err: apperrors.ErrSessionActive})
	require.Equal(t, "a session is already running", next.(Model).status)
}

func TestSoundKeyTogglesCue(t *testing.T) {
	t.Parallel()
	m, breath, _ := newTestModel(t)
	require.True(t, m.sound)

	next, _ := m.Update(keyPress("m"))
	require.False(t, next.(Model).sound)
	require.False(t, breath.sound)

	next, _ = next.Update(keyPress("m"))
	require.True(t, next.(Model).sound)
}

func TestThemeMessageRestyles(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, _ := m.Update(themeLoadedMsg{prefs: preferencedto.PreferencesOutput{Theme: "light"}})
	require.Equal(t, theme.Light.Name, next.(Model).pal.Name)
}

func TestShareOverlayOpensAndCloses(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(keyPress("s"))
	require.True(t, next.(Model).showShare)
	require.NotNil(t, cmd)

	next, _ = next.Update(shareview.CloseMsg{})
	require.False(t, next.(Model).showShare)
}

func TestPaletteCommands(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, _ := m.executePalette("bogus")
	require.Equal(t, "unknown command: bogus", next.(Model).status)

	next, _ = m.executePalette("theme:set")
	require.Equal(t, "usage: theme:set <dark|light>", next.(Model).status)

	next, _ = m.executePalette("sound:toggle")
	require.Equal(t, "sound off", next.(Model).status)
}

func TestStreakLine(t *testing.T) {
	t.Parallel()
	require.Equal(t, "No streak yet. Take 10 seconds.", streakLine(streakdto.StatusOutput{}))
	require.Equal(t, "🔥 5 days · lapsed, breathe today to start again",
		streakLine(streakdto.StatusOutput{Count: 5, HasLast: true, DaysSince: 3}))
	require.Equal(t, "🔥 1 day · done today", streakLine(streakdto.StatusOutput{Count: 1, HasLast: true, Alive: true, DoneToday: true}))
	require.Equal(t, "🔥 1,200 days · breathe today to keep it", streakLine(streakdto.StatusOutput{Count: 1200, HasLast: true, Alive: true}))
}

func TestControllerEventsReachBreathViewWhilePaletteOpen(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t)

	next, _ := m.Update(keyPress(":"))
	require.True(t, next.(Model).palette.Visible())

	next, cmd := next.Update(breathview.EventMsg{Event: breathdto.EventOutput{Kind: "phase", Label: "Inhale…", Index: 0, Total: 3}})
	require.NotNil(t, cmd, "breath view re-arms its event listener")
	require.True(t, next.(Model).breathView.Active())
	require.True(t, next.(Model).palette.Visible())

	next, _ = next.Update(keyPress("x"))
	require.True(t, next.(Model).palette.Visible(), "keys still go to the palette")
	require.True(t, next.(Model).breathView.Active())
}

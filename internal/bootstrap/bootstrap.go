package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	breathinadapter "calm/internal/modules/breath/adapter/in"
	breathoutadapter "calm/internal/modules/breath/adapter/out"
	breathdomain "calm/internal/modules/breath/domain"
	breathout "calm/internal/modules/breath/port/out"
	breathservice "calm/internal/modules/breath/service"
	breathusecase "calm/internal/modules/breath/usecase"
	preferenceinadapter "calm/internal/modules/preference/adapter/in"
	preferenceoutadapter "calm/internal/modules/preference/adapter/out"
	preferenceservice "calm/internal/modules/preference/service"
	preferenceusecase "calm/internal/modules/preference/usecase"
	shareinadapter "calm/internal/modules/share/adapter/in"
	shareoutadapter "calm/internal/modules/share/adapter/out"
	shareservice "calm/internal/modules/share/service"
	shareusecase "calm/internal/modules/share/usecase"
	streakinadapter "calm/internal/modules/streak/adapter/in"
	streakoutadapter "calm/internal/modules/streak/adapter/out"
	streakservice "calm/internal/modules/streak/service"
	streakusecase "calm/internal/modules/streak/usecase"
	"calm/internal/platform/clock"
	"calm/internal/platform/config"
	"calm/internal/platform/id"
	"calm/internal/platform/kv"
	uiapp "calm/internal/ui/app"
)

// cardScale renders the PNG at 2x, matching a retina canvas export.
const cardScale = 2

type App struct {
	BreathCLI     breathinadapter.CLIHandler
	BreathTUI     breathinadapter.TUIHandler
	StreakCLI     streakinadapter.CLIHandler
	ShareCLI      shareinadapter.CLIHandler
	PreferenceCLI preferenceinadapter.CLIHandler

	cfg   config.Config
	store *kv.SQLiteStore
}

// New wires every module against the SQLite store at cfg.DBPath. term is the
// terminal stream that receives the bell cue and OSC 52 clipboard sequences.
func New(cfg config.Config, logger *slog.Logger, term io.Writer) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	streakUC := streakusecase.NewInteractor(streakservice.NewStreakService(
		clk,
		streakoutadapter.NewKVRecordStore(store),
		logger.With("module", "streak"),
	))

	preferenceUC := preferenceusecase.NewInteractor(preferenceservice.NewPreferenceService(
		preferenceoutadapter.NewKVThemeStore(store),
	))

	var cue breathout.CuePlayer
	switch cfg.Cue {
	case config.CueBell:
		cue = breathoutadapter.NewBellCue(term)
	default:
		cue = breathoutadapter.NewToneCue(cfg.DataDir)
	}
	ctrl, err := breathservice.NewController(breathdomain.DefaultSequence(), breathdomain.SettleDelay, breathservice.ControllerDeps{
		Scheduler: clock.SystemScheduler{},
		Clock:     clk,
		IDs:       ids,
		Cue:       cue,
		Recorder:  breathoutadapter.NewStreakRecorderAdapter(streakUC),
		Logger:    logger.With("module", "breath"),
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("new breath controller: %w", err)
	}
	ctrl.SetCueEnabled(cfg.Sound)
	breathUC := breathusecase.NewInteractor(ctrl)

	shareUC := shareusecase.NewInteractor(shareservice.NewShareService(shareservice.Deps{
		Clock:     clk,
		Origin:    cfg.Origin,
		Streak:    shareoutadapter.NewStreakSourceAdapter(streakUC),
		Theme:     shareoutadapter.NewThemeSourceAdapter(preferenceUC),
		Raster:    shareoutadapter.NewPNGRasterizer(cardScale),
		Clipboard: shareoutadapter.NewOSC52Clipboard(term),
		Launcher:  shareoutadapter.NewOSExternalLauncher(),
		Logger:    logger.With("module", "share"),
	}))

	return &App{
		BreathCLI:     breathinadapter.NewCLIHandler(breathUC),
		BreathTUI:     breathinadapter.NewTUIHandler(breathUC),
		StreakCLI:     streakinadapter.NewCLIHandler(streakUC),
		ShareCLI:      shareinadapter.NewCLIHandler(shareUC),
		PreferenceCLI: preferenceinadapter.NewCLIHandler(preferenceUC),
		cfg:           cfg,
		store:         store,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.BreathTUI, app.StreakCLI, app.PreferenceCLI, app.ShareCLI, app.cfg.ExportDir)
	program := tea.NewProgram(model, tea.WithAltScreen())
	// A run left in flight when the program exits must not record.
	defer app.BreathTUI.Abort(context.Background())
	_, err := program.Run()
	return err
}

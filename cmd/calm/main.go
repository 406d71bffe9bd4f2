package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"calm/internal/bootstrap"
	breathdto "calm/internal/modules/breath/dto"
	streakdto "calm/internal/modules/streak/dto"
	"calm/internal/platform/config"
	apperrors "calm/internal/platform/errors"
	"calm/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "calm",
		Short:         "10 Second Calm: a short guided breath with a daily streak",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", "", "data directory (default: user config dir/calm)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: <data>/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newBreatheCmd(opts))
	root.AddCommand(newStreakCmd(opts))
	root.AddCommand(newShareCmd(opts))
	root.AddCommand(newThemeCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	dataDir := opts.dataDir
	if dataDir == "" {
		dir, err := config.DefaultDataDir()
		if err != nil {
			return config.Config{}, err
		}
		dataDir = dir
	}
	cfg, err := config.Load(dataDir, opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

// withApp builds the application for a plain CLI command, logging to stderr,
// and closes the store when fn returns.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(*bootstrap.App, config.Config) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	app, err := bootstrap.New(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app, cfg)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the calm terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, closer, err := logging.NewFile(cfg.LogPath, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()
			app, err := bootstrap.New(cfg, logger, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newBreatheCmd(opts *rootOptions) *cobra.Command {
	var quiet, noSound bool
	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Run one ten-second session in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, cfg config.Config) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()

				out := cmd.OutOrStdout()
				seq := app.BreathCLI.Sequence(ctx)
				if !quiet {
					_, _ = fmt.Fprintf(out, "%s of calm. Ctrl+C to stop.\n", seq.Total)
				}
				result, err := app.BreathCLI.Run(ctx, cfg.Sound && !noSound, func(ev breathdto.EventOutput) {
					if quiet || ev.Kind != "phase" {
						return
					}
					_, _ = fmt.Fprintf(out, "⏳ %d / %d  %s\n", ev.Index+1, ev.Total, ev.Label)
				})
				if result.Aborted {
					_, _ = fmt.Fprintln(out, "stopped; streak unchanged")
					return nil
				}
				if err != nil {
					return fmt.Errorf("session finished but streak was not saved: %w", err)
				}
				_, _ = fmt.Fprintf(out, "streak: %s (%s) last=%s\n", dayCount(result.Streak), result.Outcome, result.LastDate)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "print only the result")
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "disable the phase cue")
	return cmd
}

func newStreakCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, _ config.Config) error {
				st, err := app.StreakCLI.Status(context.Background())
				if err != nil {
					return err
				}
				printStreak(cmd.OutOrStdout(), st)
				return nil
			})
		},
	}
}

func printStreak(w io.Writer, st streakdto.StatusOutput) {
	if !st.HasLast {
		_, _ = fmt.Fprintln(w, "streak: 0 days (no sessions yet)")
		return
	}
	_, _ = fmt.Fprintf(w, "streak: %s\nlast session: %s (%s)\n", dayCount(st.Count), st.LastDate, lastSeen(st))
	switch {
	case st.DoneToday:
		_, _ = fmt.Fprintln(w, "done for today")
	case st.Alive:
		_, _ = fmt.Fprintln(w, "breathe today to keep it going")
	default:
		_, _ = fmt.Fprintln(w, "streak lapsed; the next session starts a new one")
	}
}

func lastSeen(st streakdto.StatusOutput) string {
	if st.DaysSince == 0 {
		return "today"
	}
	last, err1 := time.Parse(time.DateOnly, st.LastDate)
	today, err2 := time.Parse(time.DateOnly, st.Today)
	if err1 != nil || err2 != nil {
		return fmt.Sprintf("%d days ago", st.DaysSince)
	}
	return humanize.RelTime(last, today, "ago", "from now")
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}

func newShareCmd(opts *rootOptions) *cobra.Command {
	share := &cobra.Command{Use: "share", Short: "Share the streak card"}

	share.AddCommand(&cobra.Command{
		Use:   "link",
		Short: "Print the share link",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, _ config.Config) error {
				out, err := app.ShareCLI.Link(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
				return nil
			})
		},
	})

	share.AddCommand(&cobra.Command{
		Use:   "targets",
		Short: "List share URLs for every platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, _ config.Config) error {
				targets, err := app.ShareCLI.Targets(context.Background())
				if err != nil {
					return err
				}
				for _, t := range targets {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", t.Platform, t.URL)
				}
				return nil
			})
		},
	})

	share.AddCommand(&cobra.Command{
		Use:   "open <platform>",
		Short: "Open a share URL in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, _ config.Config) error {
				out, err := app.ShareCLI.Open(context.Background(), args[0])
				if err != nil {
					if errors.Is(err, apperrors.ErrUnknownPlatform) {
						return fmt.Errorf("%w (try: calm share targets)", err)
					}
					if out.URL != "" {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "could not open browser: %v\n", err)
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
						return nil
					}
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", out.Label)
				return nil
			})
		},
	})

	var outDir string
	image := &cobra.Command{
		Use:   "image",
		Short: "Write the card as 10secondcalm.png",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, cfg config.Config) error {
				dir := outDir
				if dir == "" {
					dir = cfg.ExportDir
				}
				out, err := app.ShareCLI.ExportImage(context.Background(), dir)
				if err != nil {
					return fmt.Errorf("could not create image: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", out.Path, humanize.Bytes(uint64(out.Bytes)))
				return nil
			})
		},
	}
	image.Flags().StringVar(&outDir, "out", "", "output directory (default: export_dir from config)")
	share.AddCommand(image)

	share.AddCommand(&cobra.Command{
		Use:   "copy",
		Short: "Copy the share link to the terminal clipboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, _ config.Config) error {
				out, err := app.ShareCLI.CopyLink(context.Background())
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "copy failed: %v\n", err)
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
					return nil
				}
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Share link copied to clipboard!")
				return nil
			})
		},
	})
	return share
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(app *bootstrap.App, _ config.Config) error {
				ctx := context.Background()
				var (
					theme string
					err   error
				)
				switch {
				case len(args) == 0:
					out, e := app.PreferenceCLI.Get(ctx)
					theme, err = out.Theme, e
				case strings.EqualFold(args[0], "toggle"):
					out, e := app.PreferenceCLI.ToggleTheme(ctx)
					theme, err = out.Theme, e
				default:
					out, e := app.PreferenceCLI.SetTheme(ctx, strings.ToLower(args[0]))
					theme, err = out.Theme, e
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	}
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"calm/internal/modules/share/domain"
	shareout "calm/internal/modules/share/port/out"
	"calm/internal/platform/clock"
	apperrors "calm/internal/platform/errors"
)

type ShareService struct {
	clock    clock.Clock
	origin   string
	streak   shareout.StreakSource
	theme    shareout.ThemeSource
	raster   shareout.Rasterizer
	clip     shareout.Clipboard
	launcher shareout.Launcher
	logger   *slog.Logger
}

type Deps struct {
	Clock     clock.Clock
	Origin    string
	Streak    shareout.StreakSource
	Theme     shareout.ThemeSource
	Raster    shareout.Rasterizer
	Clipboard shareout.Clipboard
	Launcher  shareout.Launcher
	Logger    *slog.Logger
}

func NewShareService(deps Deps) *ShareService {
	return &ShareService{
		clock:    deps.Clock,
		origin:   deps.Origin,
		streak:   deps.Streak,
		theme:    deps.Theme,
		raster:   deps.Raster,
		clip:     deps.Clipboard,
		launcher: deps.Launcher,
		logger:   deps.Logger,
	}
}

func (s *ShareService) Card(ctx context.Context) (domain.Card, error) {
	snap, err := s.streak.Current(ctx)
	if err != nil {
		return domain.Card{}, fmt.Errorf("read streak: %w", err)
	}
	theme := domain.ThemeDark
	if s.theme != nil {
		t, err := s.theme.Theme(ctx)
		if err != nil {
			s.logger.Warn("theme unavailable, using default", "err", err)
		} else {
			theme = t
		}
	}
	return domain.Card{
		Streak:   snap.Count,
		LastDate: snap.LastDate,
		HasLast:  snap.HasLast,
		Theme:    theme,
		Quote:    domain.Quote,
	}, nil
}

// Link carries the current streak and today's date.
func (s *ShareService) Link(ctx context.Context) (string, error) {
	snap, err := s.streak.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("read streak: %w", err)
	}
	today := s.clock.Now().Format("2006-01-02")
	return domain.Link(s.origin, snap.Count, today)
}

func (s *ShareService) Target(ctx context.Context, p domain.Platform) (string, error) {
	link, err := s.Link(ctx)
	if err != nil {
		return "", err
	}
	return domain.TargetURL(p, link), nil
}

func (s *ShareService) Open(ctx context.Context, p domain.Platform) (string, error) {
	target, err := s.Target(ctx, p)
	if err != nil {
		return "", err
	}
	if s.launcher == nil {
		return target, apperrors.ErrLauncherDisabled
	}
	if err := s.launcher.Open(ctx, target); err != nil {
		s.logger.Info("open share target failed", "platform", p, "err", err)
		return target, err
	}
	return target, nil
}

func (s *ShareService) CopyLink(ctx context.Context) (string, error) {
	link, err := s.Link(ctx)
	if err != nil {
		return "", err
	}
	if s.clip == nil {
		return link, apperrors.ErrClipboard
	}
	if err := s.clip.Copy(ctx, link); err != nil {
		s.logger.Info("clipboard copy failed", "err", err)
		return link, err
	}
	return link, nil
}

// ExportImage writes the rasterized card into dir. Every failure wraps
// ErrRender so callers can show a single notice.
func (s *ShareService) ExportImage(ctx context.Context, dir string) (string, int, error) {
	card, err := s.Card(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", apperrors.ErrRender, err)
	}
	raw, err := s.raster.Rasterize(ctx, card)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", apperrors.ErrRender, err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("%w: create export dir: %v", apperrors.ErrRender, err)
	}
	path := filepath.Join(dir, domain.FileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return "", 0, fmt.Errorf("%w: write image: %v", apperrors.ErrRender, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("%w: write image: %v", apperrors.ErrRender, err)
	}
	s.logger.Info("card exported", "path", path, "bytes", len(raw))
	return path, len(raw), nil
}

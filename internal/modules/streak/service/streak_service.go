package service

import (
	"context"
	"fmt"
	"log/slog"

	"calm/internal/modules/streak/domain"
	streakout "calm/internal/modules/streak/port/out"
	"calm/internal/platform/clock"
)

type StreakService struct {
	clock  clock.Clock
	store  streakout.RecordStore
	logger *slog.Logger
}

func NewStreakService(clock clock.Clock, store streakout.RecordStore, logger *slog.Logger) *StreakService {
	return &StreakService{clock: clock, store: store, logger: logger}
}

func (s *StreakService) Today() domain.Day {
	return domain.DayOf(s.clock.Now())
}

func (s *StreakService) Load(ctx context.Context) (domain.Record, error) {
	record, err := s.store.Load(ctx)
	if err != nil {
		return domain.Record{}, fmt.Errorf("load streak: %w", err)
	}
	return record, nil
}

// RecordCompletion applies the consecutive-day policy for today and persists
// the result. Same-day completions do not write.
func (s *StreakService) RecordCompletion(ctx context.Context, today domain.Day) (domain.Record, domain.Outcome, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return domain.Record{}, "", err
	}
	next, outcome := domain.Apply(current, today)
	if outcome == domain.OutcomeUnchanged {
		return next, outcome, nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Record{}, "", fmt.Errorf("save streak: %w", err)
	}
	s.logger.Info("streak updated", "outcome", outcome, "count", next.Count, "day", next.LastDate.String())
	return next, outcome, nil
}

func (s *StreakService) Status(ctx context.Context) (domain.Status, domain.Day, error) {
	record, err := s.Load(ctx)
	if err != nil {
		return domain.Status{}, domain.Day{}, err
	}
	today := s.Today()
	return domain.StatusOf(record, today), today, nil
}

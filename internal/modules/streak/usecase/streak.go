package usecase

import (
	"context"
	"fmt"

	"calm/internal/modules/streak/domain"
	streakdto "calm/internal/modules/streak/dto"
	streakin "calm/internal/modules/streak/port/in"
	"calm/internal/modules/streak/service"
	apperrors "calm/internal/platform/errors"
)

type Interactor struct {
	svc *service.StreakService
}

func NewInteractor(svc *service.StreakService) streakin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (streakdto.RecordOutput, error) {
	record, err := i.svc.Load(ctx)
	if err != nil {
		return streakdto.RecordOutput{}, err
	}
	return toOutput(record, ""), nil
}

func (i *Interactor) RecordCompletion(ctx context.Context, input streakdto.RecordInput) (streakdto.RecordOutput, error) {
	today := i.svc.Today()
	if input.Day != "" {
		day, err := domain.ParseDay(input.Day)
		if err != nil {
			return streakdto.RecordOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		today = day
	}
	record, outcome, err := i.svc.RecordCompletion(ctx, today)
	if err != nil {
		return streakdto.RecordOutput{}, err
	}
	return toOutput(record, outcome), nil
}

func (i *Interactor) Status(ctx context.Context) (streakdto.StatusOutput, error) {
	status, today, err := i.svc.Status(ctx)
	if err != nil {
		return streakdto.StatusOutput{}, err
	}
	out := streakdto.StatusOutput{
		Count:     status.Record.Count,
		HasLast:   status.Record.HasLast(),
		Today:     today.String(),
		DoneToday: status.DoneToday,
		Alive:     status.Alive,
		DaysSince: status.DaysSince,
	}
	if out.HasLast {
		out.LastDate = status.Record.LastDate.String()
	}
	return out, nil
}

func toOutput(record domain.Record, outcome domain.Outcome) streakdto.RecordOutput {
	out := streakdto.RecordOutput{Count: record.Count, HasLast: record.HasLast(), Outcome: string(outcome)}
	if out.HasLast {
		out.LastDate = record.LastDate.String()
	}
	return out
}

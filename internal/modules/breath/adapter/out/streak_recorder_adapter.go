package out

import (
	"context"
	"time"

	"calm/internal/modules/breath/domain"
	breathout "calm/internal/modules/breath/port/out"
	streakdto "calm/internal/modules/streak/dto"
	streakin "calm/internal/modules/streak/port/in"
)

const dayLayout = "2006-01-02"

type StreakRecorderAdapter struct {
	streak streakin.Usecase
}

func NewStreakRecorderAdapter(streak streakin.Usecase) breathout.CompletionRecorder {
	return &StreakRecorderAdapter{streak: streak}
}

func (a *StreakRecorderAdapter) RecordCompletion(ctx context.Context, today time.Time) (domain.Completion, error) {
	out, err := a.streak.RecordCompletion(ctx, streakdto.RecordInput{Day: today.Format(dayLayout)})
	if err != nil {
		return domain.Completion{}, err
	}
	return domain.Completion{Streak: out.Count, LastDate: out.LastDate, Outcome: out.Outcome}, nil
}

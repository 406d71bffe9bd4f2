package out

import (
	"context"

	shareout "calm/internal/modules/share/port/out"
	streakin "calm/internal/modules/streak/port/in"
)

type StreakSourceAdapter struct {
	streak streakin.Usecase
}

func NewStreakSourceAdapter(streak streakin.Usecase) shareout.StreakSource {
	return &StreakSourceAdapter{streak: streak}
}

func (a *StreakSourceAdapter) Current(ctx context.Context) (shareout.StreakSnapshot, error) {
	out, err := a.streak.Get(ctx)
	if err != nil {
		return shareout.StreakSnapshot{}, err
	}
	return shareout.StreakSnapshot{Count: out.Count, LastDate: out.LastDate, HasLast: out.HasLast}, nil
}

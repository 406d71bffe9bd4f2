package in

import (
	"context"

	streakdto "calm/internal/modules/streak/dto"
	streakin "calm/internal/modules/streak/port/in"
)

type CLIHandler struct {
	usecase streakin.Usecase
}

func NewCLIHandler(usecase streakin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (streakdto.RecordOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) RecordCompletion(ctx context.Context, day string) (streakdto.RecordOutput, error) {
	return h.usecase.RecordCompletion(ctx, streakdto.RecordInput{Day: day})
}

func (h CLIHandler) Status(ctx context.Context) (streakdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

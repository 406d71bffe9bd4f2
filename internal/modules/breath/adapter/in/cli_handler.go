package in

import (
	"context"

	breathdto "calm/internal/modules/breath/dto"
	breathin "calm/internal/modules/breath/port/in"
)

type CLIHandler struct {
	usecase breathin.Usecase
}

func NewCLIHandler(usecase breathin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Sequence(ctx context.Context) breathdto.SequenceOutput {
	return h.usecase.Sequence(ctx)
}

func (h CLIHandler) Run(ctx context.Context, sound bool, onEvent func(breathdto.EventOutput)) (breathdto.RunOutput, error) {
	h.usecase.SetSound(ctx, sound)
	return h.usecase.Run(ctx, onEvent)
}

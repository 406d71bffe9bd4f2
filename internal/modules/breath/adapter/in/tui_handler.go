package in

import (
	"context"

	breathdto "calm/internal/modules/breath/dto"
	breathin "calm/internal/modules/breath/port/in"
)

type TUIHandler struct {
	usecase breathin.Usecase
}

func NewTUIHandler(usecase breathin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context) (breathdto.StartOutput, error) {
	return h.usecase.Start(ctx)
}

func (h TUIHandler) Abort(ctx context.Context) bool {
	return h.usecase.Abort(ctx)
}

func (h TUIHandler) State(ctx context.Context) breathdto.StateOutput {
	return h.usecase.State(ctx)
}

func (h TUIHandler) SetSound(ctx context.Context, on bool) breathdto.StateOutput {
	return h.usecase.SetSound(ctx, on)
}

func (h TUIHandler) Sequence(ctx context.Context) breathdto.SequenceOutput {
	return h.usecase.Sequence(ctx)
}

func (h TUIHandler) Subscribe(fn func(breathdto.EventOutput)) func() {
	return h.usecase.Subscribe(fn)
}

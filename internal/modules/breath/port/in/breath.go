package in

import (
	"context"

	"calm/internal/modules/breath/dto"
)

type Usecase interface {
	Sequence(ctx context.Context) dto.SequenceOutput
	Start(ctx context.Context) (dto.StartOutput, error)
	Abort(ctx context.Context) bool
	State(ctx context.Context) dto.StateOutput
	Subscribe(fn func(dto.EventOutput)) (unsubscribe func())
	SetSound(ctx context.Context, on bool) dto.StateOutput
	// Run starts a run and blocks until it completes or is aborted.
	// Cancelling ctx aborts the run.
	Run(ctx context.Context, onEvent func(dto.EventOutput)) (dto.RunOutput, error)
}

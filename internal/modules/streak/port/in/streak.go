package in

import (
	"context"

	"calm/internal/modules/streak/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.RecordOutput, error)
	RecordCompletion(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}

package in

import (
	"context"

	"calm/internal/modules/share/dto"
)

type Usecase interface {
	Card(ctx context.Context) (dto.CardOutput, error)
	Link(ctx context.Context) (dto.LinkOutput, error)
	Targets(ctx context.Context) ([]dto.TargetOutput, error)
	Open(ctx context.Context, input dto.OpenInput) (dto.TargetOutput, error)
	CopyLink(ctx context.Context) (dto.LinkOutput, error)
	ExportImage(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}

package in

import (
	"context"

	sharedto "calm/internal/modules/share/dto"
	sharein "calm/internal/modules/share/port/in"
)

// CLIHandler serves both the cobra commands and the TUI share overlay.
type CLIHandler struct {
	usecase sharein.Usecase
}

func NewCLIHandler(usecase sharein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Card(ctx context.Context) (sharedto.CardOutput, error) {
	return h.usecase.Card(ctx)
}

func (h CLIHandler) Link(ctx context.Context) (sharedto.LinkOutput, error) {
	return h.usecase.Link(ctx)
}

func (h CLIHandler) Targets(ctx context.Context) ([]sharedto.TargetOutput, error) {
	return h.usecase.Targets(ctx)
}

func (h CLIHandler) Open(ctx context.Context, platform string) (sharedto.TargetOutput, error) {
	return h.usecase.Open(ctx, sharedto.OpenInput{Platform: platform})
}

func (h CLIHandler) CopyLink(ctx context.Context) (sharedto.LinkOutput, error) {
	return h.usecase.CopyLink(ctx)
}

func (h CLIHandler) ExportImage(ctx context.Context, dir string) (sharedto.ExportOutput, error) {
	return h.usecase.ExportImage(ctx, sharedto.ExportInput{Dir: dir})
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"calm/internal/modules/share/domain"
	sharedto "calm/internal/modules/share/dto"
	sharein "calm/internal/modules/share/port/in"
	"calm/internal/modules/share/service"
	apperrors "calm/internal/platform/errors"
)

type Interactor struct {
	svc *service.ShareService
}

func NewInteractor(svc *service.ShareService) sharein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Card(ctx context.Context) (sharedto.CardOutput, error) {
	card, err := i.svc.Card(ctx)
	if err != nil {
		return sharedto.CardOutput{}, err
	}
	return sharedto.CardOutput{
		Streak:       card.Streak,
		StreakText:   card.StreakText(),
		LastDate:     card.LastDate,
		HasLast:      card.HasLast,
		LastDateText: card.LastDateText(),
		Theme:        string(card.Theme),
		Quote:        card.Quote,
		Title:        domain.Title,
		Footer:       domain.Footer,
	}, nil
}

func (i *Interactor) Link(ctx context.Context) (sharedto.LinkOutput, error) {
	link, err := i.svc.Link(ctx)
	if err != nil {
		return sharedto.LinkOutput{}, err
	}
	return sharedto.LinkOutput{URL: link}, nil
}

func (i *Interactor) Targets(ctx context.Context) ([]sharedto.TargetOutput, error) {
	link, err := i.svc.Link(ctx)
	if err != nil {
		return nil, err
	}
	platforms := domain.Platforms()
	out := make([]sharedto.TargetOutput, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, sharedto.TargetOutput{Platform: string(p), Label: p.Label(), URL: domain.TargetURL(p, link)})
	}
	return out, nil
}

func (i *Interactor) Open(ctx context.Context, input sharedto.OpenInput) (sharedto.TargetOutput, error) {
	p := domain.Platform(strings.ToLower(strings.TrimSpace(input.Platform)))
	if !p.Known() {
		return sharedto.TargetOutput{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownPlatform, input.Platform)
	}
	target, err := i.svc.Open(ctx, p)
	return sharedto.TargetOutput{Platform: string(p), Label: p.Label(), URL: target}, err
}

func (i *Interactor) CopyLink(ctx context.Context) (sharedto.LinkOutput, error) {
	link, err := i.svc.CopyLink(ctx)
	return sharedto.LinkOutput{URL: link}, err
}

func (i *Interactor) ExportImage(ctx context.Context, input sharedto.ExportInput) (sharedto.ExportOutput, error) {
	path, n, err := i.svc.ExportImage(ctx, input.Dir)
	if err != nil {
		return sharedto.ExportOutput{}, err
	}
	return sharedto.ExportOutput{Path: path, Bytes: n}, nil
}

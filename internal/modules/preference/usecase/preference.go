package usecase

import (
	"context"
	"fmt"

	"calm/internal/modules/preference/domain"
	preferencedto "calm/internal/modules/preference/dto"
	preferencein "calm/internal/modules/preference/port/in"
	"calm/internal/modules/preference/service"
	apperrors "calm/internal/platform/errors"
)

type Interactor struct {
	svc *service.PreferenceService
}

func NewInteractor(svc *service.PreferenceService) preferencein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (preferencedto.PreferencesOutput, error) {
	t, err := i.svc.Theme(ctx)
	if err != nil {
		return preferencedto.PreferencesOutput{Theme: string(domain.DefaultTheme)}, err
	}
	return preferencedto.PreferencesOutput{Theme: string(t)}, nil
}

func (i *Interactor) SetTheme(ctx context.Context, input preferencedto.SetThemeInput) (preferencedto.PreferencesOutput, error) {
	t, err := domain.ParseTheme(input.Theme)
	if err != nil {
		return preferencedto.PreferencesOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := i.svc.SetTheme(ctx, t); err != nil {
		return preferencedto.PreferencesOutput{}, err
	}
	return preferencedto.PreferencesOutput{Theme: string(t)}, nil
}

func (i *Interactor) ToggleTheme(ctx context.Context) (preferencedto.PreferencesOutput, error) {
	current, err := i.svc.Theme(ctx)
	if err != nil {
		return preferencedto.PreferencesOutput{}, err
	}
	next := current.Toggle()
	if err := i.svc.SetTheme(ctx, next); err != nil {
		return preferencedto.PreferencesOutput{}, err
	}
	return preferencedto.PreferencesOutput{Theme: string(next)}, nil
}

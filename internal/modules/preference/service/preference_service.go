package service

import (
	"context"
	"fmt"

	"calm/internal/modules/preference/domain"
	preferenceout "calm/internal/modules/preference/port/out"
)

type PreferenceService struct {
	store preferenceout.ThemeStore
}

func NewPreferenceService(store preferenceout.ThemeStore) *PreferenceService {
	return &PreferenceService{store: store}
}

func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	t, err := s.store.LoadTheme(ctx)
	if err != nil {
		return domain.DefaultTheme, fmt.Errorf("load theme: %w", err)
	}
	return t, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, t domain.Theme) error {
	if err := s.store.SaveTheme(ctx, t); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

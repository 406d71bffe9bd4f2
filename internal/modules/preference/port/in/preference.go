package in

import (
	"context"

	"calm/internal/modules/preference/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.PreferencesOutput, error)
	SetTheme(ctx context.Context, input dto.SetThemeInput) (dto.PreferencesOutput, error)
	ToggleTheme(ctx context.Context) (dto.PreferencesOutput, error)
}

package in

import (
	"context"

	preferencedto "calm/internal/modules/preference/dto"
	preferencein "calm/internal/modules/preference/port/in"
)

type CLIHandler struct {
	usecase preferencein.Usecase
}

func NewCLIHandler(usecase preferencein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (preferencedto.PreferencesOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) (preferencedto.PreferencesOutput, error) {
	return h.usecase.SetTheme(ctx, preferencedto.SetThemeInput{Theme: theme})
}

func (h CLIHandler) ToggleTheme(ctx context.Context) (preferencedto.PreferencesOutput, error) {
	return h.usecase.ToggleTheme(ctx)
}

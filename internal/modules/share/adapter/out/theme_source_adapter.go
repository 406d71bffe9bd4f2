package out

import (
	"context"

	preferencein "calm/internal/modules/preference/port/in"
	"calm/internal/modules/share/domain"
	shareout "calm/internal/modules/share/port/out"
)

type ThemeSourceAdapter struct {
	prefs preferencein.Usecase
}

func NewThemeSourceAdapter(prefs preferencein.Usecase) shareout.ThemeSource {
	return &ThemeSourceAdapter{prefs: prefs}
}

func (a *ThemeSourceAdapter) Theme(ctx context.Context) (domain.Theme, error) {
	out, err := a.prefs.Get(ctx)
	if err != nil {
		return domain.ThemeDark, err
	}
	return domain.ParseTheme(out.Theme), nil
}

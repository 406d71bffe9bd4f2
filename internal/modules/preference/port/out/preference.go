package out

import (
	"context"

	"calm/internal/modules/preference/domain"
)

type ThemeStore interface {
	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

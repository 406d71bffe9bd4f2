package out

import (
	"context"

	"calm/internal/modules/share/domain"
)

type StreakSnapshot struct {
	Count    int
	LastDate string
	HasLast  bool
}

type StreakSource interface {
	Current(ctx context.Context) (StreakSnapshot, error)
}

type ThemeSource interface {
	Theme(ctx context.Context) (domain.Theme, error)
}

// Rasterizer renders a card to PNG bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, card domain.Card) ([]byte, error)
}

type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// Launcher opens a URL with the system handler.
type Launcher interface {
	Open(ctx context.Context, target string) error
}

package out_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	shareout "calm/internal/modules/share/adapter/out"
	"calm/internal/modules/share/domain"
	apperrors "calm/internal/platform/errors"
)

func TestRasterizeThemesDiffer(t *testing.T) {
	t.Parallel()
	r := shareout.NewPNGRasterizer(1)
	card := domain.Card{Streak: 3, LastDate: "2024-06-01", HasLast: true, Quote: domain.Quote}

	card.Theme = domain.ThemeDark
	dark, err := r.Rasterize(context.Background(), card)
	require.NoError(t, err)
	card.Theme = domain.ThemeLight
	light, err := r.Rasterize(context.Background(), card)
	require.NoError(t, err)
	require.NotEqual(t, dark, light)

	img, err := png.Decode(bytes.NewReader(dark))
	require.NoError(t, err)
	require.Equal(t, 380, img.Bounds().Dx())

	// The corner sits outside the rounded card and shows the backdrop.
	r0, g0, b0, _ := img.At(0, 0).RGBA()
	require.Equal(t, [3]uint32{0x0f, 0x17, 0x2a}, [3]uint32{r0 >> 8, g0 >> 8, b0 >> 8})
}

func TestRasterizeRejectsBadScale(t *testing.T) {
	t.Parallel()
	_, err := shareout.NewPNGRasterizer(0).Rasterize(context.Background(), domain.Card{})
	require.ErrorIs(t, err, apperrors.ErrRender)
}

func TestRasterizeHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := shareout.NewPNGRasterizer(1).Rasterize(ctx, domain.Card{})
	require.ErrorIs(t, err, context.Canceled)
}

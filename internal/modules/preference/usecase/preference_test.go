package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	preferenceout "calm/internal/modules/preference/adapter/out"
	preferencedto "calm/internal/modules/preference/dto"
	"calm/internal/modules/preference/service"
	"calm/internal/modules/preference/usecase"
	apperrors "calm/internal/platform/errors"
	"calm/internal/platform/kv"
)

func TestThemeDefaultsToDarkAndPersists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := usecase.NewInteractor(service.NewPreferenceService(preferenceout.NewKVThemeStore(store)))

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "dark", got.Theme)

	got, err = uc.SetTheme(ctx, preferencedto.SetThemeInput{Theme: " Light "})
	require.NoError(t, err)
	require.Equal(t, "light", got.Theme)
	raw, _, _ := store.Get(ctx, preferenceout.KeyTheme)
	require.Equal(t, "light", raw)

	got, err = uc.ToggleTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, "dark", got.Theme)
	got, err = uc.ToggleTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, "light", got.Theme)
}

func TestUnknownStoredThemeReadsAsDark(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, preferenceout.KeyTheme, "solarized"))
	uc := usecase.NewInteractor(service.NewPreferenceService(preferenceout.NewKVThemeStore(store)))

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "dark", got.Theme)

	_, err = uc.SetTheme(ctx, preferencedto.SetThemeInput{Theme: "solarized"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

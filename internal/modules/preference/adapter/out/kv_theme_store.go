package out

import (
	"context"

	"calm/internal/modules/preference/domain"
	preferenceout "calm/internal/modules/preference/port/out"
	"calm/internal/platform/kv"
)

const KeyTheme = "tsec_theme"

type KVThemeStore struct {
	store kv.Store
}

func NewKVThemeStore(store kv.Store) preferenceout.ThemeStore {
	return &KVThemeStore{store: store}
}

func (s *KVThemeStore) LoadTheme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		return domain.DefaultTheme, err
	}
	if !ok {
		return domain.DefaultTheme, nil
	}
	return domain.ThemeOrDefault(raw), nil
}

func (s *KVThemeStore) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.store.Set(ctx, KeyTheme, string(theme))
}

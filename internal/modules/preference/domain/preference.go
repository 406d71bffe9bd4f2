package domain

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	DefaultTheme = ThemeDark
)

// ThemeOrDefault reads a stored value; anything unrecognized is dark.
func ThemeOrDefault(raw string) Theme {
	t, err := ParseTheme(raw)
	if err != nil {
		return DefaultTheme
	}
	return t
}

func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", raw)
}

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

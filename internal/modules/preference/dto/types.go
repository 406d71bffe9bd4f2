package dto

type PreferencesOutput struct {
	Theme string
}

type SetThemeInput struct {
	Theme string
}

package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrSessionActive    = errors.New("session already running")
	ErrRender           = errors.New("render card")
	ErrClipboard        = errors.New("clipboard unavailable")
	ErrUnknownPlatform  = errors.New("unknown share platform")
	ErrLauncherDisabled = errors.New("external open is not supported")
)

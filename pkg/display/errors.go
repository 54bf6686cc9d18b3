package display

import "errors"

var (
	ErrMissingSecret    = errors.New("missing secret")
	ErrAlreadyRunning   = errors.New("display loop already running")
	ErrClockUnavailable = errors.New("clock unavailable")
	ErrRenderFailed     = errors.New("failed to render frame")
)

package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoOptions is returned when a field carries no selectable options
	// and no blank option to fall back to.
	ErrNoOptions = errors.New("tui: field has no options")
)

package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrReadOnly is returned when Run is asked to fill a frozen session.
	ErrReadOnly = errors.New("tui: session is read-only")
)

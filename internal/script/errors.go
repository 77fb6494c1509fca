package script

import "errors"

var (
	// ErrStart means the interpreter or script could not be launched.
	ErrStart = errors.New("script failed to start")

	// ErrTimeout means the script exceeded its run deadline and was killed.
	ErrTimeout = errors.New("script timed out")

	// ErrExit means the script ran but exited non-zero.
	ErrExit = errors.New("script exited with error")

	// ErrBadOutput means the script's stdout could not be parsed.
	ErrBadOutput = errors.New("script produced invalid output")

	// ErrEmptyOutput means the script produced no stdout at all.
	ErrEmptyOutput = errors.New("script produced no output")
)

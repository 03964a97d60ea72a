package fsutil

import "errors"

// Filesystem errors.
var (
	// ErrEmptyOutputPath indicates a write was requested without a path.
	ErrEmptyOutputPath = errors.New("output path is empty")
)

package core

import "errors"

// Common errors.
var (
	ErrNotFound         = errors.New("note not found")
	ErrEmptyNote        = errors.New("note text is empty")
	ErrReadOnly         = errors.New("preference store is in read-only mode")
	ErrWatchUnsupported = errors.New("preference store does not support watching")
)

package richtext

import "errors"

var (
	// ErrInvalidRichContent is returned when an encoded buffer cannot be decoded.
	ErrInvalidRichContent = errors.New("invalid rich content")
	// ErrInvalidRange is returned when a position or range lies outside the buffer.
	ErrInvalidRange = errors.New("range out of bounds")
)

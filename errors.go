package graphics

import "errors"

var (
	// ErrInvalidArgument is returned for arguments no backend can draw with,
	// such as a non-positive stroke width or a negative corner radius.
	ErrInvalidArgument = errors.New("graphics: invalid argument")

	// ErrNoFont is returned by text operations called before SetFont.
	ErrNoFont = errors.New("graphics: no font set")

	// ErrUnsupported is returned by operations a backend does not implement.
	ErrUnsupported = errors.New("graphics: unsupported operation")

	// ErrInvalidGradient is returned for a nil gradient, a gradient without
	// colors, or one whose locations do not match its colors.
	ErrInvalidGradient = errors.New("graphics: invalid gradient")
)

package render

import "errors"

// ErrInvalidColorFormat reports a hex color string that does not match the
// 7-character "#RRGGBB" pattern.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ErrValueOutOfRange reports an alpha argument outside [0, 255].
var ErrValueOutOfRange = errors.New("value out of range")

package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a "#RRGGBB" string and a separate alpha into an
// NRGBA color.
//
// The hex string must be exactly 7 characters, "#" followed by 6 hex digits
// (case-insensitive); anything else fails with ErrInvalidColorFormat. The
// alpha must lie in [0, 255] or the call fails with ErrValueOutOfRange.
func ParseHexColor(hex string, alpha int) (color.NRGBA, error) {
	if alpha < 0 || alpha > 255 {
		return color.NRGBA{}, fmt.Errorf("%w: alpha %d", ErrValueOutOfRange, alpha)
	}
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

package imaging

import "errors"

// ErrInvalidGeometry reports a non-positive width or height passed to a
// resize or crop operation. Callers must guard their dimensions; the
// pipeline never clamps them silently.
var ErrInvalidGeometry = errors.New("invalid geometry")

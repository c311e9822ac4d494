package board

import "errors"

// ErrOutOfBounds is returned by every board operation given a position
// outside the grid. Positions are never clamped.
var ErrOutOfBounds = errors.New("position out of bounds")

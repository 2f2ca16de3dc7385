package shapes

import "errors"

// ErrDegenerateShape is returned when a shape's dimensions make it
// impossible to render (e.g. a circle of negative radius).
var ErrDegenerateShape = errors.New("shapes: degenerate shape parameters")

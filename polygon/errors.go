package polygon

import "errors"

// ErrTooFewVertices is returned by operations that require at least three
// vertices to form a simple polygon.
var ErrTooFewVertices = errors.New("polygon: fewer than three vertices")

// ErrDegenerateIntersection is returned when a requested clip produces an
// empty result, per §7's DegenerateIntersection kind.
var ErrDegenerateIntersection = errors.New("polygon: degenerate intersection")

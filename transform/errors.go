package transform

import "errors"

// ErrInvalidTransform is returned when a transform attribute string cannot
// be parsed (§7).
var ErrInvalidTransform = errors.New("transform: invalid transform attribute")

// ErrInvalidViewBox is returned when a viewBox attribute string cannot be
// parsed or has non-positive width/height (§7).
var ErrInvalidViewBox = errors.New("transform: invalid viewBox")

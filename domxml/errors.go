package domxml

import "errors"

// ErrMalformedDocument is returned when an SVG document cannot be parsed
// into a DOM tree.
var ErrMalformedDocument = errors.New("domxml: malformed document")

package pathdata

import "errors"

// ErrInvalidPath is returned when path data cannot be tokenized or
// canonicalized (§7).
var ErrInvalidPath = errors.New("pathdata: invalid path data")

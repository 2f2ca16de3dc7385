package affine

import "errors"

// ErrZeroAxis is returned by RotateAroundAxis3D when given a zero-length
// rotation axis (§4.3).
var ErrZeroAxis = errors.New("affine: rotation axis is the zero vector")

package verify

import "github.com/vectorflat/svgflatten/decimal"

// Result is the uniform outcome of every verification check (§4.9).
type Result struct {
	Valid     bool
	Error     error
	Tolerance decimal.Dec
	Message   string
	Details   map[string]string
}

func ok(tol decimal.Dec, msg string, details map[string]string) Result {
	return Result{Valid: true, Tolerance: tol, Message: msg, Details: details}
}

func fail(tol decimal.Dec, err error, msg string, details map[string]string) Result {
	return Result{Valid: false, Error: err, Tolerance: tol, Message: msg, Details: details}
}

// DefaultTolerance returns 10^-(precision-10), the default tolerance
// tied to the decimal context's working precision (§4.9). Callers
// running at low working precision get a clamped tolerance of 1 rather
// than a nonsensical positive exponent.
func DefaultTolerance(precision int32) decimal.Dec {
	exp := precision - 10
	if exp < 0 {
		exp = 0
	}
	return decimal.One.Shift(-exp)
}

// DefaultContainmentTolerance is the default distance tolerance
// permitted between a curve-sampled point and the polygon it should lie
// within, per §4.9.
var DefaultContainmentTolerance = decimal.MustParse("0.000001")

// DefaultE2ETolerance is the default area-conservation tolerance used by
// CheckAreaConservation, per §4.9.
var DefaultE2ETolerance = decimal.MustParse("0.0000000001")

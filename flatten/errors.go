package flatten

import "errors"

// Sentinel errors for the flatten package (§7). Stage functions return
// these directly or wrapped with fmt.Errorf("stage: %w", err); callers use
// errors.Is to branch on semantics, matching the convention set by the rest
// of this module.
var (
	// ErrUnresolvedReference is returned when a url(#id)/href/xlink:href
	// attribute names an id that does not resolve to any element in the
	// document (§4.2, §7).
	ErrUnresolvedReference = errors.New("flatten: unresolved reference")

	// ErrReferenceCycle is returned when <use> (or a gradient xlink:href
	// chain) forms a cycle; §4.2 requires cycle detection via an expansion
	// stack rather than an unbounded recursive walk.
	ErrReferenceCycle = errors.New("flatten: reference cycle detected")

	// ErrCancelled is returned when the context.Context passed to Flatten
	// is cancelled between pipeline stages or elements.
	ErrCancelled = errors.New("flatten: cancelled")

	// ErrVerificationFailed is returned in strict mode when a verify/ check
	// (round-trip identity, area conservation, containment tolerance) fails
	// (§4.9). In non-strict mode the same condition is recorded as a
	// warning in Stats instead of returned as an error.
	ErrVerificationFailed = errors.New("flatten: verification failed")
)

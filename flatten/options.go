package flatten

import (
	"io"

	"github.com/rs/zerolog"
)

// Option customizes a pipeline run. It mutates a config before the
// pipeline begins; later options override earlier ones (§6).
type Option func(cfg *config)

// config holds every pipeline knob enumerated in §6's option table.
type config struct {
	precision        int32
	workingPrecision int
	bezierArcs       int
	clipSegments     int
	e2eTolerance     string
	resolveUse       bool
	resolveMarkers   bool
	resolvePatterns  bool
	resolveMasks     bool
	resolveClipPaths bool
	flattenTransform bool
	bakeGradients    bool
	removeUnusedDefs bool
	strict           bool
	logger           zerolog.Logger
}

// newConfig returns a config initialized with §6's documented defaults,
// then applies each Option in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		precision:        6,
		workingPrecision: 80,
		bezierArcs:       8,
		clipSegments:     64,
		e2eTolerance:     "1e-10",
		resolveUse:       true,
		resolveMarkers:   true,
		resolvePatterns:  true,
		resolveMasks:     true,
		resolveClipPaths: true,
		flattenTransform: true,
		bakeGradients:    true,
		removeUnusedDefs: true,
		strict:           false,
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPrecision sets the number of decimal places in emitted numbers.
func WithPrecision(p int32) Option {
	return func(cfg *config) { cfg.precision = p }
}

// WithWorkingPrecision sets the working precision (digits after the decimal
// point) that the verification tolerances are derived from. It does not
// build the decimal.Context: Run uses the Context its caller passes in.
func WithWorkingPrecision(p int) Option {
	return func(cfg *config) {
		if p > 0 {
			cfg.workingPrecision = p
		}
	}
}

// WithBezierArcs sets the number of cubic Beziers per full circle/ellipse
// (rounded up to a multiple of 4 by the shapes package).
func WithBezierArcs(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.bezierArcs = n
		}
	}
}

// WithClipSegments sets the sample count per curve edge when converting to
// polygons.
func WithClipSegments(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.clipSegments = n
		}
	}
}

// WithE2ETolerance sets the tolerance (as a decimal literal) for the area
// conservation check.
func WithE2ETolerance(tol string) Option {
	return func(cfg *config) {
		if tol != "" {
			cfg.e2eTolerance = tol
		}
	}
}

// WithResolveUse toggles <use>/<symbol> expansion.
func WithResolveUse(b bool) Option { return func(cfg *config) { cfg.resolveUse = b } }

// WithResolveMarkers toggles marker instantiation.
func WithResolveMarkers(b bool) Option { return func(cfg *config) { cfg.resolveMarkers = b } }

// WithResolvePatterns toggles pattern tiling.
func WithResolvePatterns(b bool) Option { return func(cfg *config) { cfg.resolvePatterns = b } }

// WithResolveMasks toggles mask-to-clip conversion.
func WithResolveMasks(b bool) Option { return func(cfg *config) { cfg.resolveMasks = b } }

// WithResolveClipPaths toggles clipPath boolean application.
func WithResolveClipPaths(b bool) Option { return func(cfg *config) { cfg.resolveClipPaths = b } }

// WithFlattenTransforms toggles CTM baking into coordinates.
func WithFlattenTransforms(b bool) Option { return func(cfg *config) { cfg.flattenTransform = b } }

// WithBakeGradients toggles gradientTransform baking.
func WithBakeGradients(b bool) Option { return func(cfg *config) { cfg.bakeGradients = b } }

// WithRemoveUnusedDefs toggles pruning of unreferenced <defs> entries.
func WithRemoveUnusedDefs(b bool) Option { return func(cfg *config) { cfg.removeUnusedDefs = b } }

// WithStrictVerification makes any VerificationFailed fatal instead of a
// logged warning (§4.9, §7).
func WithStrictVerification(b bool) Option { return func(cfg *config) { cfg.strict = b } }

// WithLogger installs a zerolog.Logger for stage entry/exit and per-element
// warning events. The default is a no-op logger, so a caller that never
// sets this option pays no logging cost and sees no output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithLogOutput is a convenience wrapper around WithLogger that builds a
// standard zerolog writer from w.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *config) { cfg.logger = zerolog.New(w).With().Timestamp().Logger() }
}

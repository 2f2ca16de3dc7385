package flatten

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/verify"
)

// run carries the state threaded through every stage of one Flatten call:
// the numeric context, the resolved configuration, the accumulating stats,
// and a logger. It is built fresh per call and never shared across
// concurrent Run invocations (§5, "each pipeline instance owns its mutable
// DOM exclusively").
type run struct {
	ctx    *decimal.Context
	cfg    *config
	stats  *Stats
	log    zerolog.Logger
	nextID int
}

// newID returns a fresh synthetic id prefixed with prefix, for elements
// (the clipPath defs built by the mask and pattern stages) synthesized by a stage rather than
// sourced from the document. The teacher's graph package assigns ids the
// same way: a monotonically increasing counter, not a UUID generator
// (§DOMAIN STACK).
func (r *run) newID(prefix string) string {
	r.nextID++
	return fmt.Sprintf("%s-flatten-%d", prefix, r.nextID)
}

// ensureDefs returns root's first <defs> child, creating and prepending one
// if none exists yet.
func ensureDefs(root *domxml.Node) *domxml.Node {
	for _, c := range root.Children {
		if c.Tag == "defs" {
			return c
		}
	}
	defs := domxml.NewNode("defs")
	root.Children = append([]*domxml.Node{defs}, root.Children...)
	defs.Parent = root
	return defs
}

// Run executes the eight ordered flatten stages over root in place (§4.8),
// polling goCtx for cancellation between stages and between top-level
// children within a stage (§5). decCtx fixes the working precision used by
// every numeric operation in this run; it is independent of cfg.precision,
// which only controls the output formatting precision of emitted numbers.
func Run(goCtx context.Context, decCtx *decimal.Context, root *domxml.Node, opts ...Option) (*Stats, error) {
	cfg := newConfig(opts...)
	r := &run{
		ctx:   decCtx,
		cfg:   cfg,
		stats: &Stats{},
		log:   cfg.logger,
	}

	stages := []struct {
		name string
		fn   func(context.Context, *domxml.Node) error
	}{
		{"resolveUse", r.resolveUse},
		{"resolveMarkers", r.resolveMarkers},
		{"resolvePatterns", r.resolvePatterns},
		{"resolveMasks", r.resolveMasks},
		{"applyClipPaths", r.applyClipPaths},
		{"bakeGradients", r.bakeGradients},
		{"flattenTransforms", r.flattenTransforms},
		{"removeUnusedDefs", r.removeUnusedDefs},
	}

	for _, stage := range stages {
		if err := goCtx.Err(); err != nil {
			return r.stats, ErrCancelled
		}
		r.log.Info().Str("stage", stage.name).Msg("stage start")
		if err := stage.fn(goCtx, root); err != nil {
			if err == ErrCancelled {
				return r.stats, ErrCancelled
			}
			return r.stats, fmt.Errorf("%s: %w", stage.name, err)
		}
		r.log.Info().Str("stage", stage.name).Msg("stage end")
	}

	return r.stats, nil
}

// checkCancel polls goCtx for cancellation at element granularity within a
// stage, per §5.
func checkCancel(goCtx context.Context) error {
	if err := goCtx.Err(); err != nil {
		return ErrCancelled
	}
	return nil
}

// recordVerification appends res to the run's verification record under
// category. A failing check is always logged as a warning; under strict
// mode (WithStrictVerification) it additionally returns
// ErrVerificationFailed, which the caller should propagate to abort the
// pipeline (§4.9: "MUST NOT proceed if verification is set to hard mode
// and any check fails; by default it logs and continues").
func (r *run) recordVerification(category string, res verify.Result) error {
	r.stats.Verifications = append(r.stats.Verifications, VerificationOutcome{
		Category: category, Valid: res.Valid, Message: res.Message,
	})
	if res.Valid {
		return nil
	}
	r.stats.warn(category + ": " + res.Message)
	r.log.Warn().Str("category", category).Str("message", res.Message).Msg("verification failed")
	if r.cfg.strict {
		return ErrVerificationFailed
	}
	return nil
}

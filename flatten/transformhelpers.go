package flatten

import (
	"fmt"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/serialize"
	"github.com/vectorflat/svgflatten/transform"
)

// parseTransformAttr parses a transform attribute string into a 3x3
// matrix, wrapping transform.Parse's error with this package's own
// ErrUnresolvedReference-free context so callers can distinguish a stage
// failure from a transform-grammar failure.
func parseTransformAttr(ctx *decimal.Context, s string) (linalg.Matrix, error) {
	m, err := transform.Parse(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("parse transform %q: %w", s, err)
	}
	return m, nil
}

// matrixToTransformAttr renders m as a transform="matrix(a,b,c,d,e,f)"
// value, the canonical form for a composed CTM written back onto a
// synthetic wrapper element (e.g. the <g> produced by use expansion).
func matrixToTransformAttr(ctx *decimal.Context, m linalg.Matrix) string {
	a, _ := m.At(0, 0)
	b, _ := m.At(1, 0)
	c, _ := m.At(0, 1)
	d, _ := m.At(1, 1)
	e, _ := m.At(0, 2)
	f, _ := m.At(1, 2)
	fm := func(v decimal.Dec) string { return serialize.FormatNumber(ctx, v, 10) }
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", fm(a), fm(b), fm(c), fm(d), fm(e), fm(f))
}

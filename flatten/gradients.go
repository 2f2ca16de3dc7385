package flatten

import (
	"context"

	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/verify"
)

// bakeGradients implements stage 6 (§4.8.6): every gradient definition
// carrying a gradientTransform has its control points (x1,y1,x2,y2 for
// linear; cx,cy,fx,fy for radial) transformed by that matrix, radial
// radius scaled by the average column norm of the matrix's linear part,
// and the gradientTransform attribute removed.
//
// A single gradient shared by several elements is baked once: its
// gradientTransform is a property of the definition, not of any one
// referencer, so there is nothing per-element to clone here (the §9
// "clone on first bake" note applies to gradientUnits=objectBoundingBox
// sharing, which this pipeline treats as userSpaceOnUse throughout — see
// the same simplification in resolvePatterns).
func (r *run) bakeGradients(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.bakeGradients {
		return nil
	}
	targets := collectElements(root, func(n *domxml.Node) bool {
		if n.Tag != "linearGradient" && n.Tag != "radialGradient" {
			return false
		}
		_, ok := n.Attr("gradientTransform")
		return ok
	})

	for _, n := range targets {
		if err := checkCancel(goCtx); err != nil {
			return err
		}
		if err := r.bakeGradient(n); err != nil {
			if err == ErrVerificationFailed {
				return err
			}
			r.stats.warn("gradients: " + err.Error())
			r.log.Warn().Str("stage", "bakeGradients").Err(err).Msg("leaving gradientTransform in place")
			continue
		}
		r.stats.GradientsBaked++
	}
	return nil
}

func (r *run) bakeGradient(n *domxml.Node) error {
	t, _ := n.Attr("gradientTransform")
	m, err := parseTransformAttr(r.ctx, t)
	if err != nil {
		return err
	}

	switch n.Tag {
	case "linearGradient":
		x1 := numAttr(n, "x1", decimal.Zero)
		y1 := numAttr(n, "y1", decimal.Zero)
		x2 := numAttr(n, "x2", decimal.One)
		y2 := numAttr(n, "y2", decimal.Zero)
		nx1, ny1, err := affine.ApplyPoint2D(r.ctx, m, x1, y1)
		if err != nil {
			return err
		}
		nx2, ny2, err := affine.ApplyPoint2D(r.ctx, m, x2, y2)
		if err != nil {
			return err
		}

		tol := verify.DefaultTolerance(int32(r.cfg.workingPrecision))
		res := verify.CheckLinearGradientBake(r.ctx, m, x1, y1, x2, y2, nx1, ny1, nx2, ny2, tol)
		if err := r.recordVerification("gradient", res); err != nil {
			return err
		}

		n.SetAttr("x1", r.ctx.ToFixed(nx1, 6))
		n.SetAttr("y1", r.ctx.ToFixed(ny1, 6))
		n.SetAttr("x2", r.ctx.ToFixed(nx2, 6))
		n.SetAttr("y2", r.ctx.ToFixed(ny2, 6))

	case "radialGradient":
		cx := numAttr(n, "cx", decimal.FromFloat(0.5))
		cy := numAttr(n, "cy", decimal.FromFloat(0.5))
		r0 := numAttr(n, "r", decimal.FromFloat(0.5))
		fx := numAttr(n, "fx", cx)
		fy := numAttr(n, "fy", cy)

		ncx, ncy, err := affine.ApplyPoint2D(r.ctx, m, cx, cy)
		if err != nil {
			return err
		}
		nfx, nfy, err := affine.ApplyPoint2D(r.ctx, m, fx, fy)
		if err != nil {
			return err
		}

		// a,b,c,d is m00,m01,m10,m11, so the matrix's columns are (a,c)
		// and (b,d); the average column norm (§4.8.6) is the average of
		// those two, not the row norms.
		a, b, c, d, err := affine.LinearPart2D(m)
		if err != nil {
			return err
		}
		normCol1, err := r.ctx.Sqrt(r.ctx.Plus(r.ctx.Times(a, a), r.ctx.Times(c, c)))
		if err != nil {
			return err
		}
		normCol2, err := r.ctx.Sqrt(r.ctx.Plus(r.ctx.Times(b, b), r.ctx.Times(d, d)))
		if err != nil {
			return err
		}
		avg, err := r.ctx.Div(r.ctx.Plus(normCol1, normCol2), decimal.FromInt(2))
		if err != nil {
			return err
		}
		nr := r.ctx.Times(r0, avg)

		n.SetAttr("cx", r.ctx.ToFixed(ncx, 6))
		n.SetAttr("cy", r.ctx.ToFixed(ncy, 6))
		n.SetAttr("fx", r.ctx.ToFixed(nfx, 6))
		n.SetAttr("fy", r.ctx.ToFixed(nfy, 6))
		n.SetAttr("r", r.ctx.ToFixed(nr, 6))
	}

	n.RemoveAttr("gradientTransform")
	return nil
}

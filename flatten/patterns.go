package flatten

import (
	"context"
	"math"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/polygon"
	"github.com/vectorflat/svgflatten/serialize"
)

// resolvePatterns implements stage 3 (§4.8.3): every element whose fill
// references a <pattern> has that pattern's children tiled across its own
// bounding box, the tiled result clipped to the element's own geometry,
// and the original element replaced by the tiled group.
//
// Pattern tiling is treated as userSpaceOnUse regardless of the source
// document's patternUnits: width/height are read as absolute coordinates.
// objectBoundingBox-relative patterns (fractions of the filled element's
// bbox) are a presentation nuance outside this pipeline's geometric core
// and are left as a documented simplification.
func (r *run) resolvePatterns(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.resolvePatterns {
		return nil
	}
	targets := collectElements(root, func(n *domxml.Node) bool {
		fill, ok := n.Attr("fill")
		if !ok {
			return false
		}
		id, ok := parseURLRef(fill)
		if !ok {
			return false
		}
		def := root.FindByID(id)
		return def != nil && def.Tag == "pattern"
	})

	for _, n := range targets {
		if err := checkCancel(goCtx); err != nil {
			return err
		}
		if err := r.expandPattern(root, n); err != nil {
			r.stats.warn("patterns: " + err.Error())
			r.log.Warn().Str("stage", "resolvePatterns").Err(err).Msg("skipping pattern expansion")
		}
	}
	return nil
}

func (r *run) expandPattern(root, n *domxml.Node) error {
	fill, _ := n.Attr("fill")
	id, _ := parseURLRef(fill)
	patternDef := root.FindByID(id)

	p, err := r.pathOf(n)
	if err != nil {
		return err
	}
	abs, err := pathdata.ToAbsolute(r.ctx, p)
	if err != nil {
		return err
	}
	poly, err := polygon.Sample(r.ctx, abs, r.cfg.clipSegments)
	if err != nil {
		return err
	}
	minX, minY, maxX, maxY := boundingBox(r.ctx, poly)

	tileW := numAttr(patternDef, "width", decimal.One)
	tileH := numAttr(patternDef, "height", decimal.One)
	if r.ctx.IsZero(tileW) || r.ctx.IsZero(tileH) {
		return pathdata.ErrInvalidPath
	}

	group := domxml.NewNode("g")

	fw, _ := tileW.Float64()
	fh, _ := tileH.Float64()
	fminX, _ := minX.Float64()
	fminY, _ := minY.Float64()
	fmaxX, _ := maxX.Float64()
	fmaxY, _ := maxY.Float64()
	nx := int(math.Ceil((fmaxX-fminX)/fw)) + 1
	ny := int(math.Ceil((fmaxY-fminY)/fh)) + 1

	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			tx := r.ctx.Plus(minX, r.ctx.Times(decimal.FromInt(int64(ix)), tileW))
			ty := r.ctx.Plus(minY, r.ctx.Times(decimal.FromInt(int64(iy)), tileH))
			tile := domxml.NewNode("g")
			tile.SetAttr("transform", "translate("+r.ctx.ToFixed(tx, 6)+","+r.ctx.ToFixed(ty, 6)+")")
			for _, c := range patternDef.Children {
				tile.AppendChild(c.Clone())
			}
			group.AppendChild(tile)
		}
	}

	clipID := r.newID("pattern-clip")
	clipDef := domxml.NewNode("clipPath")
	clipDef.SetAttr("id", clipID)
	clipPath := domxml.NewNode("path")
	clipPath.SetAttr("d", serialize.PathToD(r.ctx, abs, r.cfg.precision))
	clipDef.AppendChild(clipPath)
	ensureDefs(root).AppendChild(clipDef)

	group.SetAttr("clip-path", "url(#"+clipID+")")

	parent := n.Parent
	if parent == nil {
		return pathdata.ErrInvalidPath
	}
	parent.ReplaceChild(n, group)
	r.stats.PatternsExpanded++
	return nil
}

// boundingBox returns (minX, minY, maxX, maxY) of a polygon's vertices.
func boundingBox(ctx *decimal.Context, p polygon.Polygon) (minX, minY, maxX, maxY decimal.Dec) {
	if len(p) == 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	}
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = p[0].X, p[0].Y
	for _, v := range p[1:] {
		if ctx.LessThan(v.X, minX) {
			minX = v.X
		}
		if ctx.GreaterThan(v.X, maxX) {
			maxX = v.X
		}
		if ctx.LessThan(v.Y, minY) {
			minY = v.Y
		}
		if ctx.GreaterThan(v.Y, maxY) {
			maxY = v.Y
		}
	}
	return minX, minY, maxX, maxY
}

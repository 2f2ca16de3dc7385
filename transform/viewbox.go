package transform

import (
	"strconv"
	"strings"

	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// ViewBox is a parsed viewBox attribute: minX minY width height.
type ViewBox struct {
	MinX, MinY, Width, Height decimal.Dec
}

// ParseViewBox parses a "minX minY width height" viewBox attribute string.
// Fails with ErrInvalidViewBox on malformed input or non-positive
// width/height.
func ParseViewBox(s string) (ViewBox, error) {
	parts := argSeparator.Split(strings.TrimSpace(s), -1)
	if len(parts) != 4 {
		return ViewBox{}, ErrInvalidViewBox
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return ViewBox{}, ErrInvalidViewBox
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return ViewBox{}, ErrInvalidViewBox
	}
	return ViewBox{
		MinX: decimal.FromFloat(vals[0]), MinY: decimal.FromFloat(vals[1]),
		Width: decimal.FromFloat(vals[2]), Height: decimal.FromFloat(vals[3]),
	}, nil
}

// Align identifies the alignment half of preserveAspectRatio.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// MeetOrSlice identifies the fit half of preserveAspectRatio.
type MeetOrSlice int

const (
	Meet MeetOrSlice = iota
	Slice
)

// PreserveAspectRatio is a parsed preserveAspectRatio attribute.
type PreserveAspectRatio struct {
	Align Align
	Fit   MeetOrSlice
}

var defaultPAR = PreserveAspectRatio{Align: AlignXMidYMid, Fit: Meet}

// ParsePreserveAspectRatio parses a preserveAspectRatio attribute string.
// An empty string yields the SVG default, xMidYMid meet. The "defer"
// keyword is accepted and ignored (it only matters when an image element
// has its own preserveAspectRatio, which is outside this package's scope).
func ParsePreserveAspectRatio(s string) PreserveAspectRatio {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultPAR
	}
	fields := strings.Fields(s)
	if len(fields) > 0 && strings.EqualFold(fields[0], "defer") {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return defaultPAR
	}

	par := PreserveAspectRatio{Fit: Meet}
	switch strings.ToLower(fields[0]) {
	case "none":
		par.Align = AlignNone
	case "xminymin":
		par.Align = AlignXMinYMin
	case "xmidymin":
		par.Align = AlignXMidYMin
	case "xmaxymin":
		par.Align = AlignXMaxYMin
	case "xminymid":
		par.Align = AlignXMinYMid
	case "xmidymid":
		par.Align = AlignXMidYMid
	case "xmaxymid":
		par.Align = AlignXMaxYMid
	case "xminymax":
		par.Align = AlignXMinYMax
	case "xmidymax":
		par.Align = AlignXMidYMax
	case "xmaxymax":
		par.Align = AlignXMaxYMax
	default:
		par.Align = AlignXMidYMid
	}
	if len(fields) > 1 && strings.EqualFold(fields[1], "slice") {
		par.Fit = Slice
	}
	return par
}

// ViewBoxMatrix computes the homogeneous 3x3 matrix mapping viewBox space
// to a viewport of size (vpW, vpH), per §4.6. With align=none, it applies
// translate(-minX,-minY) then scale(vpW/vbW, vpH/vbH). Otherwise it chooses
// a uniform scale — max for slice, min for meet — then translates to
// implement the requested X/Y alignment.
func ViewBoxMatrix(ctx *decimal.Context, vb ViewBox, par PreserveAspectRatio, vpW, vpH decimal.Dec) (linalg.Matrix, error) {
	sx, err := ctx.Div(vpW, vb.Width)
	if err != nil {
		return nil, err
	}
	sy, err := ctx.Div(vpH, vb.Height)
	if err != nil {
		return nil, err
	}

	if par.Align == AlignNone {
		t := affine.Translation2D(ctx.Negate(vb.MinX), ctx.Negate(vb.MinY))
		s := affine.Scale2D(sx, sy)
		return linalg.Mul(ctx, s, t)
	}

	scale := sx
	if par.Fit == Slice {
		if ctx.GreaterThan(sy, sx) {
			scale = sy
		}
	} else {
		if ctx.LessThan(sy, sx) {
			scale = sy
		}
	}

	scaledW := ctx.Times(vb.Width, scale)
	scaledH := ctx.Times(vb.Height, scale)
	extraX := ctx.Minus(vpW, scaledW)
	extraY := ctx.Minus(vpH, scaledH)

	tx := alignOffset(ctx, par.Align, extraX, true)
	ty := alignOffset(ctx, par.Align, extraY, false)

	// translate(tx,ty) * scale(scale) * translate(-minX,-minY)
	preTranslate := affine.Translation2D(ctx.Negate(vb.MinX), ctx.Negate(vb.MinY))
	s := affine.Scale2D(scale, scale)
	postTranslate := affine.Translation2D(tx, ty)

	m, err := linalg.Mul(ctx, postTranslate, s)
	if err != nil {
		return nil, err
	}
	return linalg.Mul(ctx, m, preTranslate)
}

func alignOffset(ctx *decimal.Context, align Align, extra decimal.Dec, isX bool) decimal.Dec {
	half := div2(ctx, extra)
	switch align {
	case AlignXMinYMin, AlignXMinYMid, AlignXMinYMax:
		if isX {
			return decimal.Zero
		}
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		if isX {
			return extra
		}
	}
	switch align {
	case AlignXMinYMin, AlignXMidYMin, AlignXMaxYMin:
		if !isX {
			return decimal.Zero
		}
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		if !isX {
			return extra
		}
	}
	return half
}

func div2(ctx *decimal.Context, a decimal.Dec) decimal.Dec {
	half, _ := ctx.Div(a, decimal.FromInt(2))
	return half
}

package transform

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// funcCall is a single parsed "name(args)" term from a transform attribute.
type funcCall struct {
	name string
	args []float64
}

var funcPattern = regexp.MustCompile(`(?i)(translate|scale|rotate|skewx|skewy|matrix)\s*\(([^)]*)\)`)
var argSeparator = regexp.MustCompile(`[,\s]+`)

// Parse parses an SVG transform attribute string into its homogeneous 3x3
// composition, per §4.6 and §6. Recognized functions are translate, scale,
// rotate (with an optional center), skewX, skewY, and matrix; function
// names are matched case-insensitively. The combined matrix is built
// left-to-right: ((identity*fn1)*fn2)*fn3....
func Parse(ctx *decimal.Context, s string) (linalg.Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		id, err := linalg.Identity(3)
		return id, err
	}

	matches := funcPattern.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return nil, ErrInvalidTransform
	}

	result, err := linalg.Identity(3)
	if err != nil {
		return nil, err
	}
	var cur linalg.Matrix = result

	for _, m := range matches {
		call, perr := parseFuncCall(m[1], m[2])
		if perr != nil {
			return nil, perr
		}
		fn, ferr := callToMatrix(ctx, call)
		if ferr != nil {
			return nil, ferr
		}
		cur, err = linalg.Mul(ctx, cur, fn)
		if err != nil {
			return nil, err
		}
	}

	return cur, nil
}

func parseFuncCall(name, argsText string) (funcCall, error) {
	name = strings.ToLower(name)
	argsText = strings.TrimSpace(argsText)
	var args []float64
	if argsText != "" {
		for _, tok := range argSeparator.Split(argsText, -1) {
			if tok == "" {
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return funcCall{}, ErrInvalidTransform
			}
			args = append(args, v)
		}
	}
	return funcCall{name: name, args: args}, nil
}

func callToMatrix(ctx *decimal.Context, c funcCall) (linalg.Matrix, error) {
	switch c.name {
	case "translate":
		tx, ty := arg(c.args, 0, 0), arg(c.args, 1, 0)
		return affine.Translation2D(decimal.FromFloat(tx), decimal.FromFloat(ty)), nil

	case "scale":
		sx := arg(c.args, 0, 1)
		sy := arg(c.args, 1, sx)
		return affine.Scale2D(decimal.FromFloat(sx), decimal.FromFloat(sy)), nil

	case "rotate":
		if len(c.args) < 1 {
			return nil, ErrInvalidTransform
		}
		deg := c.args[0]
		theta := decimal.FromFloat(deg * math.Pi / 180)
		if len(c.args) >= 3 {
			return affine.RotateAroundPoint2D(ctx, theta, decimal.FromFloat(c.args[1]), decimal.FromFloat(c.args[2]))
		}
		return affine.Rotate2D(ctx, theta), nil

	case "skewx":
		if len(c.args) < 1 {
			return nil, ErrInvalidTransform
		}
		return affine.Skew2D(ctx, decimal.FromFloat(c.args[0]*math.Pi/180), decimal.Zero), nil

	case "skewy":
		if len(c.args) < 1 {
			return nil, ErrInvalidTransform
		}
		return affine.Skew2D(ctx, decimal.Zero, decimal.FromFloat(c.args[0]*math.Pi/180)), nil

	case "matrix":
		if len(c.args) != 6 {
			return nil, ErrInvalidTransform
		}
		m, err := linalg.NewDenseFromRows([][]decimal.Dec{
			{decimal.FromFloat(c.args[0]), decimal.FromFloat(c.args[2]), decimal.FromFloat(c.args[4])},
			{decimal.FromFloat(c.args[1]), decimal.FromFloat(c.args[3]), decimal.FromFloat(c.args[5])},
			{decimal.Zero, decimal.Zero, decimal.One},
		})
		return m, err

	default:
		return nil, ErrInvalidTransform
	}
}

func arg(args []float64, idx int, def float64) float64 {
	if idx < len(args) {
		return args[idx]
	}
	return def
}

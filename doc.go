// Package svgflatten reduces an SVG document to a minimal canonical
// geometric form: every transform attribute is baked into coordinates,
// every indirection element (<use>/<symbol>, markers, patterns, masks)
// is expanded into concrete geometry, and clipPath regions are applied
// as actual boolean polygon intersections. Every numeric operation runs
// through an arbitrary-precision decimal layer (decimal.Context) so
// results are reproducible and verifiable at tolerances IEEE-754 doubles
// cannot hold.
//
// The package is a thin façade over flatten.Run: it owns parsing the
// input text into a domxml.Node tree via domxml/xmlio, constructing the
// numeric decimal.Context, invoking the pipeline, and serializing the
// mutated tree back to text via serialize.Write. The flatten package and
// everything beneath it (decimal, linalg, affine, pathdata, shapes,
// transform, polygon, verify, serialize) is reusable independently of
// this façade.
//
//	out, stats, err := svgflatten.Flatten(ctx, svgText, svgflatten.Config{})
//
// Working precision, output precision, and which pipeline stages run
// are configured through flatten.Option values passed to Config.Options.
package svgflatten

import (
	"context"
	"fmt"
	"strings"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml/xmlio"
	"github.com/vectorflat/svgflatten/flatten"
	"github.com/vectorflat/svgflatten/serialize"
)

// Config bundles the two layers a caller can tune: the decimal working
// precision used by every numeric operation in the run (independent of
// flatten's own output-formatting precision option), and the set of
// flatten.Option values forwarded to flatten.Run.
type Config struct {
	WorkingPrecision int
	Options          []flatten.Option
}

// Flatten parses svgText, runs the flatten pipeline over it, and
// re-serializes the result. It is the single entry point most callers
// need; library users who already hold a parsed domxml.Node (e.g. a
// batch processor amortizing the parse) should call flatten.Run
// directly instead.
func Flatten(goCtx context.Context, svgText string, cfg Config) (string, *flatten.Stats, error) {
	root, err := xmlio.Parse(strings.NewReader(svgText))
	if err != nil {
		return "", nil, fmt.Errorf("svgflatten: parsing input: %w", err)
	}

	precision := cfg.WorkingPrecision
	if precision <= 0 {
		precision = 80
	}
	decCtx := decimal.NewContext(precision)

	stats, err := flatten.Run(goCtx, decCtx, root, cfg.Options...)
	if err != nil {
		return "", stats, fmt.Errorf("svgflatten: %w", err)
	}

	var sb strings.Builder
	if err := serialize.Write(&sb, root); err != nil {
		return "", stats, fmt.Errorf("svgflatten: serializing output: %w", err)
	}
	return sb.String(), stats, nil
}

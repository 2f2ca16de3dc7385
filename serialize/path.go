package serialize

import (
	"strings"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

// PathToD renders p as a "d" attribute string: space-separated tokens, one
// single-letter command per group, numeric arguments formatted at
// precision digits with trailing zeros trimmed, and a bare "Z" for close
// (§4.10). p is assumed already absolute (canonicalized); the command's
// own Abs flag is ignored and the uppercase letter is always emitted.
func PathToD(ctx *decimal.Context, p pathdata.Path, precision int32) string {
	var tokens []string
	for _, cmd := range p {
		tokens = append(tokens, string(cmd.Kind.Letter()))
		for _, arg := range cmd.Args {
			tokens = append(tokens, FormatNumber(ctx, arg, precision))
		}
	}
	return strings.Join(tokens, " ")
}

package serialize

import (
	"strings"

	"github.com/vectorflat/svgflatten/decimal"
)

// FormatNumber renders d with exactly precision digits after the decimal
// point, then trims trailing zeros and a bare trailing '.', per §4.10.
func FormatNumber(ctx *decimal.Context, d decimal.Dec, precision int32) string {
	s := ctx.ToFixed(d, precision)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// Package pathdata tokenizes and canonicalizes SVG path `d` attribute text,
// per §4.4. It exposes a cursor over the input string — there is no
// coroutine or lazy-iterator machinery, since the parser never suspends
// (Design Notes §9).
//
// A raw Path (as returned by Parse) may mix absolute and relative commands
// and may use any of the ten SVG command kinds. ToAbsolute walks the
// commands maintaining the current point, subpath start, last control
// point, and last command kind, producing a Path restricted to absolute
// {M, L, C, Q, A, Z}. ToCubics additionally upgrades L/Q/T into equivalent
// C commands, leaving A untouched — arcs are never discretized by this
// package (§4.4, "Arc handling under transform... preserves the arc
// command").
package pathdata

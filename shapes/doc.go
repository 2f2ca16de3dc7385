// Package shapes converts SVG basic shapes (rect, circle, ellipse, line,
// polyline, polygon) to equivalent pathdata.Path values, per §4.5.
//
// Circle and ellipse approximation comes in two flavors: Legacy uses the
// classic four-cubic quarter-circle approximation with kappa =
// 4/3*(sqrt(2)-1); NArc uses a configurable number of arcs (rounded up to a
// multiple of 4) with the optimal control-point distance
// L = (4/3)*tan(theta/4), trading a slightly more complex path for a much
// tighter radial error bound.
package shapes

// Package polygon implements the polygon clipping and measurement engine
// used to realize clipPath and mask application, per §4.7: sampling paths
// to polygons, Sutherland-Hodgman intersection against a convex clip,
// shoelace area, ray-cast point containment, a non-union difference used
// only for verification, and exact point-to-edge distance.
package polygon

// Package transform parses the SVG transform-attribute grammar, computes
// viewBox/preserveAspectRatio fitting matrices, builds a current transform
// matrix (CTM) over an element's ancestry, and bakes a CTM into path
// commands, per §4.6.
//
// Composition follows the textual left-to-right rule: a transform string
// "fn1 fn2 fn3" composes as ((identity*fn1)*fn2)*fn3, so each function
// applies in the coordinate frame established by the functions before it.
package transform

// Package verify implements the invariant checks the flatten pipeline
// runs after each mutating stage (§4.9): round-trip identity, matrix
// inversion, multiplication associativity, shape-to-path cardinal-point
// preservation, gradient endpoint transform correctness, polygon
// containment and intersection bounds, and end-to-end area conservation.
//
// Every check returns a Result carrying a pass/fail verdict, the
// tolerance it was evaluated against, and enough detail to explain a
// failure without re-running the check. Tolerances default to the
// working-precision-derived value from DefaultTolerance, with
// containment and area-conservation checks using their own wider
// defaults per §4.9.
package verify

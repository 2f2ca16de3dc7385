// Package serialize re-emits path data and XML documents at a requested
// output precision, per §4.10. Numeric formatting trims trailing zeros
// (and a trailing decimal point) — the only place in this module where
// that trimming happens; the decimal kernel's own ToFixed is exact and
// untrimmed, since trimming is a presentation concern, not an arithmetic
// one.
package serialize

// Package domxml provides a minimal mutable DOM view over an SVG document:
// each element exposes a tag name, a case-sensitive attribute map, ordered
// children, text content, and a parent pointer (§6). The flatten pipeline
// mutates attribute maps and child lists directly through this view.
//
// Parsing is token-based over encoding/xml.Decoder, mirroring the
// streaming style used elsewhere in the corpus for SVG ingestion; unlike a
// one-pass converter this package retains the full tree so later pipeline
// stages can walk and rewrite it. Namespaced attribute names (inkscape:,
// sodipodi:, etc.) are preserved verbatim as their original "prefix:local"
// string.
package domxml

// Package flatten is the pipeline orchestrator: it walks a parsed SVG
// document and rewrites it in place through eight ordered stages — resolve
// <use>/<symbol>, instantiate markers, expand patterns, convert masks to
// clipPaths, apply clipPaths, bake gradientTransform, flatten element
// transforms into baked path coordinates, and remove now-unused <defs>
// entries — leaving a document with no remaining group transforms, <use>
// references, or unresolved geometric indirection (§4, §6).
//
// A Config carries the knobs every stage consults (numeric precision,
// Bezier/clip sampling density, which stages run at all) and is built with
// functional Options, mirroring the options pattern used elsewhere in this
// module's ancestry for multi-parameter construction: defaults first,
// then each Option applied in order.
package flatten

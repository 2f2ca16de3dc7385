package pathdata

import "github.com/vectorflat/svgflatten/decimal"

// Kind identifies an SVG path command letter. Uppercase kinds are absolute,
// lowercase are relative; Kind itself carries only the command family
// (M, L, H, V, C, S, Q, T, A, Z) and an Abs flag carries absoluteness, so
// callers never have to switch on case.
type Kind byte

// Command kinds, per §3. Z has no relative form in this representation —
// SVG's 'z' and 'Z' are semantically identical closepaths.
const (
	KindMove Kind = iota
	KindLine
	KindHorizontal
	KindVertical
	KindCubic
	KindSmoothCubic
	KindQuadratic
	KindSmoothQuadratic
	KindArc
	KindClose
)

// arity maps each Kind to its number of numeric arguments, per §3's
// PathCommand invariant table: M/L/T:2, H/V:1, C:6, S/Q:4, A:7, Z:0.
var arity = map[Kind]int{
	KindMove:            2,
	KindLine:            2,
	KindHorizontal:      1,
	KindVertical:        1,
	KindCubic:           6,
	KindSmoothCubic:     4,
	KindQuadratic:       4,
	KindSmoothQuadratic: 2,
	KindArc:             7,
	KindClose:           0,
}

// Arity returns the number of numeric arguments a command of this Kind
// carries.
func (k Kind) Arity() int { return arity[k] }

// Letter returns the uppercase (absolute) SVG command letter for k.
func (k Kind) Letter() byte {
	switch k {
	case KindMove:
		return 'M'
	case KindLine:
		return 'L'
	case KindHorizontal:
		return 'H'
	case KindVertical:
		return 'V'
	case KindCubic:
		return 'C'
	case KindSmoothCubic:
		return 'S'
	case KindQuadratic:
		return 'Q'
	case KindSmoothQuadratic:
		return 'T'
	case KindArc:
		return 'A'
	case KindClose:
		return 'Z'
	}
	return '?'
}

func kindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'M', 'm':
		return KindMove, true
	case 'L', 'l':
		return KindLine, true
	case 'H', 'h':
		return KindHorizontal, true
	case 'V', 'v':
		return KindVertical, true
	case 'C', 'c':
		return KindCubic, true
	case 'S', 's':
		return KindSmoothCubic, true
	case 'Q', 'q':
		return KindQuadratic, true
	case 'T', 't':
		return KindSmoothQuadratic, true
	case 'A', 'a':
		return KindArc, true
	case 'Z', 'z':
		return KindClose, true
	}
	return 0, false
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Command is a single tagged path command: a Kind, an absoluteness flag,
// and an ordered argument list whose length equals Kind.Arity() (the two
// Arc flags, large-arc and sweep, are stored as Args[3] and Args[4] with
// value 0 or 1, matching the SVG grammar's boolean flags).
type Command struct {
	Kind Kind
	Abs  bool
	Args []decimal.Dec
}

// Path is an ordered sequence of Commands.
type Path []Command

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	for i, c := range p {
		args := make([]decimal.Dec, len(c.Args))
		copy(args, c.Args)
		out[i] = Command{Kind: c.Kind, Abs: c.Abs, Args: args}
	}
	return out
}

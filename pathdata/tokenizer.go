package pathdata

import "github.com/vectorflat/svgflatten/decimal"

// Parse tokenizes SVG path `d` text into a raw Path: commands may be
// absolute or relative, exactly as written. Use ToAbsolute to canonicalize.
//
// Grammar (§4.4, §6): a command letter followed by a sequence of numbers.
// Numbers accept an optional sign, integer/fraction part, and optional
// exponent; commas and whitespace are separators, and a leading '-' also
// acts as an implicit separator (e.g. "0.8-2.9" tokenizes as two numbers).
// Arguments are grouped by the command's arity; after the first group of an
// M (or m), subsequent groups become implicit L (or l) commands. Incomplete
// trailing groups are silently dropped.
func Parse(d string) (Path, error) {
	cur := cursor{s: d}
	var out Path
	var lastKind Kind
	haveLast := false

	for {
		cur.skipSeparators()
		if cur.eof() {
			break
		}
		c := cur.s[cur.pos]
		kind, ok := kindFromLetter(c)
		implicitRepeat := false
		if !ok {
			// No command letter: this is an implicit repetition of the
			// previous command (or, after M/m, an implicit line).
			if !haveLast {
				return nil, ErrInvalidPath
			}
			kind = lastKind
			implicitRepeat = true
		} else {
			cur.pos++
		}

		abs := implicitRepeat
		if !implicitRepeat {
			abs = isUpper(c)
		} else if haveLast {
			abs = out[len(out)-1].Abs
		}

		effectiveKind := kind
		if implicitRepeat && kind == KindMove {
			effectiveKind = KindLine
		}

		n := effectiveKind.Arity()
		if n == 0 {
			out = append(out, Command{Kind: effectiveKind, Abs: abs})
			lastKind, haveLast = effectiveKind, true
			continue
		}

		for {
			cur.skipSeparators()
			if cur.eof() || !cur.looksLikeNumber() {
				break
			}
			args := make([]decimal.Dec, 0, n)
			ok := true
			for i := 0; i < n; i++ {
				cur.skipSeparators()
				v, found := cur.readNumber()
				if !found {
					ok = false
					break
				}
				args = append(args, v)
			}
			if !ok {
				// Incomplete trailing group: silently dropped (§4.4).
				break
			}
			out = append(out, Command{Kind: effectiveKind, Abs: abs, Args: args})
			lastKind, haveLast = effectiveKind, true

			if effectiveKind == KindMove {
				// Subsequent coordinate groups after the first M are
				// implicit L commands (§4.4).
				effectiveKind = KindLine
				lastKind = KindLine
				n = effectiveKind.Arity()
			}
		}
	}

	return out, nil
}

type cursor struct {
	s   string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.s) }

func (c *cursor) skipSeparators() {
	for !c.eof() {
		ch := c.s[c.pos]
		if ch == ',' || ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			c.pos++
			continue
		}
		break
	}
}

func (c *cursor) looksLikeNumber() bool {
	if c.eof() {
		return false
	}
	ch := c.s[c.pos]
	return ch == '+' || ch == '-' || ch == '.' || (ch >= '0' && ch <= '9')
}

// readNumber consumes one number per the grammar in §4.4/§6: optional sign,
// digits, optional '.' fraction, optional exponent. A leading '-' or '+'
// that starts a new number is consumed here; the implicit-negative-
// separator rule falls out naturally because each call starts a fresh scan
// and stops as soon as a second sign or decimal point would be required.
func (c *cursor) readNumber() (decimal.Dec, bool) {
	start := c.pos
	if !c.eof() && (c.s[c.pos] == '+' || c.s[c.pos] == '-') {
		c.pos++
	}
	sawDigitsOrDot := false
	for !c.eof() && c.s[c.pos] >= '0' && c.s[c.pos] <= '9' {
		c.pos++
		sawDigitsOrDot = true
	}
	if !c.eof() && c.s[c.pos] == '.' {
		c.pos++
		for !c.eof() && c.s[c.pos] >= '0' && c.s[c.pos] <= '9' {
			c.pos++
			sawDigitsOrDot = true
		}
	}
	if !sawDigitsOrDot {
		c.pos = start
		return decimal.Dec{}, false
	}
	if !c.eof() && (c.s[c.pos] == 'e' || c.s[c.pos] == 'E') {
		save := c.pos
		c.pos++
		if !c.eof() && (c.s[c.pos] == '+' || c.s[c.pos] == '-') {
			c.pos++
		}
		expDigits := false
		for !c.eof() && c.s[c.pos] >= '0' && c.s[c.pos] <= '9' {
			c.pos++
			expDigits = true
		}
		if !expDigits {
			c.pos = save
		}
	}
	lit := c.s[start:c.pos]
	v, err := decimal.Parse(lit)
	if err != nil {
		c.pos = start
		return decimal.Dec{}, false
	}
	return v, true
}

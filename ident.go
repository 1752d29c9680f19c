package hcl

import "unicode"

// isIDStart reports whether b begins an identifier: ASCII letter, '_',
// or the lead byte of a multi-byte UTF-8 rune satisfying Unicode
// ID_Start (checked on the decoded rune by isIDStartRune below — callers
// scanning byte-at-a-time use this for the fast ASCII path and fall back
// to decoding a rune when b >= 0x80).
func isIDStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIDStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIDContinueRune(r rune) bool {
	return r == '_' || r == '-' ||
		unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Other_ID_Continue, r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}

// scanIdent consumes a maximal HCL identifier starting at the cursor's
// current position and returns its span. Callers must have already
// confirmed the first byte satisfies isIDStart.
func scanIdent(c *cursor) Span {
	start := c.pos
	r, size := c.peekRune()
	if !isIDStartRune(r) {
		return Span{Start: start, End: start}
	}
	c.advance(size)
	for !c.atEnd() {
		r, size := c.peekRune()
		if !isIDContinueRune(r) {
			break
		}
		c.advance(size)
	}
	return c.span(start)
}

// Ident is a validated HCL identifier: a maximal run of Unicode
// ID_Start followed by ID_Continue, with ASCII '_' and '-' additionally
// allowed anywhere a continuation is.
type Ident string

func isReservedWord(s string) bool {
	switch s {
	case "null", "true", "false":
		return true
	default:
		return false
	}
}

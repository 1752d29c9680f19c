package hcl

// This file holds the trivia and primitive-value scanners the
// expression, template and structure parsers peek and consume from.
// Unlike a conventional tokenizer it does not produce a token stream:
// callers peek raw bytes directly (see expr.go's dispatch tables) and
// call the scanner that matches what they found. This keeps the
// grammar LL(1)-with-bounded-lookahead without an intermediate token
// buffer to keep back in sync with the cursor.

// isHorizontalWS reports whether b is a horizontal whitespace byte: a
// space or a tab.
func isHorizontalWS(b byte) bool { return b == ' ' || b == '\t' }

// isNewlineByte reports whether b is a line-ending byte (LF or CR).
// skipWS consumes either byte on its own; skipLineEnding is the one that
// treats CRLF as a single line ending.
func isNewlineByte(b byte) bool { return b == '\n' || b == '\r' }

// skipSP consumes a maximal run of horizontal whitespace and returns the
// span it covered. This is HCL's "sp" trivia: never crosses a newline.
func skipSP(c *cursor) Span {
	start := c.pos
	for isHorizontalWS(c.peek()) {
		c.advance(1)
	}
	return c.span(start)
}

// skipWS consumes a maximal run of "full" whitespace and comments:
// spaces, tabs, newlines, line comments and block comments. This is the
// trivia recognized between structures in a body, and around most
// expression operators.
func skipWS(c *cursor) Span {
	start := c.pos
	for {
		switch {
		case isHorizontalWS(c.peek()) || isNewlineByte(c.peek()):
			c.advance(1)
		case c.peek() == '#':
			skipLineComment(c)
		case c.peek() == '/' && c.byteAt(1) == '/':
			skipLineComment(c)
		case c.peek() == '/' && c.byteAt(1) == '*':
			skipBlockComment(c)
		default:
			return c.span(start)
		}
	}
}

// skipLineComment consumes a '#'- or '//'-introduced comment up to but
// not including the terminating LF (or EOF).
func skipLineComment(c *cursor) Span {
	start := c.pos
	if c.peek() == '#' {
		c.advance(1)
	} else {
		c.advance(2)
	}
	for !c.atEnd() && c.peek() != '\n' {
		c.advance(1)
	}
	return c.span(start)
}

// skipBlockComment consumes a non-nesting /* ... */ comment. The caller
// has already confirmed the opening "/*".
func skipBlockComment(c *cursor) Span {
	start := c.pos
	c.advance(2)
	for !c.atEnd() {
		if c.peek() == '*' && c.byteAt(1) == '/' {
			c.advance(2)
			return c.span(start)
		}
		c.advance(1)
	}
	return c.span(start)
}

// skipLineEnding consumes a single CRLF or LF line ending and reports
// whether one was present.
func skipLineEnding(c *cursor) bool {
	if c.peek() == '\r' && c.byteAt(1) == '\n' {
		c.advance(2)
		return true
	}
	if c.peek() == '\n' {
		c.advance(1)
		return true
	}
	return false
}

// scanNumber consumes a maximal numeric literal (integer or float, with
// optional exponent) and returns its span. Callers must have confirmed
// the first byte is a digit.
func scanNumber(c *cursor) Span {
	start := c.pos
	for isDigit(c.peek()) {
		c.advance(1)
	}
	if c.peek() == '.' && isDigit(c.byteAt(1)) {
		c.advance(1)
		for isDigit(c.peek()) {
			c.advance(1)
		}
	}
	if c.peek() == 'e' || c.peek() == 'E' {
		n := 1
		if c.byteAt(1) == '+' || c.byteAt(1) == '-' {
			n = 2
		}
		if isDigit(c.byteAt(n)) {
			c.advance(n)
			for isDigit(c.peek()) {
				c.advance(1)
			}
		}
	}
	return c.span(start)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

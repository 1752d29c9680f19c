package hcl

import "unicode/utf8"

// Span is an absolute half-open byte range into the original input.
// Every tree node carries one. The zero Span is not meaningful on its
// own; check a node's presence instead of a Span's zero-ness.
type Span struct {
	Start int
	End   int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// RawString is an un-interpreted slice of the original input, identified
// by span, until despan runs; afterwards Text holds an owned copy and
// Span is retained only for diagnostics.
type RawString struct {
	Span Span
	Text string // populated by despan; empty (and meaningless) before
}

func rawStringFromSpan(span Span) RawString {
	return RawString{Span: span}
}

// despan materializes the byte range into Text.
func (r *RawString) despan(input []byte) {
	if r.Span.Len() == 0 {
		r.Text = ""
		return
	}
	r.Text = string(input[r.Span.Start:r.Span.End])
}

// cursor walks a byte slice left to right, tracking the absolute offset
// of the unconsumed remainder. It never copies; every scan returns a
// sub-slice or span of the original buffer.
type cursor struct {
	input []byte
	pos   int
}

func newCursor(input []byte) *cursor {
	return &cursor{input: input}
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.input) }

// rest returns the unconsumed remainder.
func (c *cursor) rest() []byte { return c.input[c.pos:] }

// byteAt returns the byte at offset n past the current position, or 0
// if that offset is past the end of input (0 never collides with a
// valid grammar byte since HCL source bytes of interest are all ASCII
// punctuation or UTF-8 continuation bytes >= 0x80).
func (c *cursor) byteAt(n int) byte {
	idx := c.pos + n
	if idx < 0 || idx >= len(c.input) {
		return 0
	}
	return c.input[idx]
}

func (c *cursor) peek() byte { return c.byteAt(0) }

func (c *cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.input) {
		c.pos = len(c.input)
	}
}

// advanceRune consumes one UTF-8 rune and returns it.
func (c *cursor) advanceRune() rune {
	r, size := utf8.DecodeRune(c.rest())
	if size == 0 {
		size = 1
	}
	c.advance(size)
	return r
}

// peekRune decodes, without consuming, the rune starting at the current
// position.
func (c *cursor) peekRune() (rune, int) {
	return utf8.DecodeRune(c.rest())
}

func (c *cursor) hasPrefix(s string) bool {
	rest := c.rest()
	if len(rest) < len(s) {
		return false
	}
	return string(rest[:len(s)]) == s
}

// span returns the span from start to the cursor's current position.
func (c *cursor) span(start int) Span {
	return Span{Start: start, End: c.pos}
}

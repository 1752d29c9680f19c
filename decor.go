package hcl

// Decor holds the trivia (whitespace and comments) immediately before
// and after a node. Either half may be absent (zero-length span).
type Decor struct {
	Prefix RawString
	Suffix RawString
}

func (d *Decor) setPrefix(r RawString) { d.Prefix = r }
func (d *Decor) setSuffix(r RawString) { d.Suffix = r }

func (d *Decor) despan(input []byte) {
	d.Prefix.despan(input)
	d.Suffix.despan(input)
}

// Decorated wraps a value with the trivia surrounding it and the span it
// occupies (decor excluded). Used for identifiers, strings, booleans,
// splat markers and traversal elements.
type Decorated[T any] struct {
	Value T
	Decor Decor
	Span  Span
}

func newDecorated[T any](value T) Decorated[T] {
	return Decorated[T]{Value: value}
}

func (d *Decorated[T]) despan(input []byte, despanValue func(*T, []byte)) {
	d.Decor.despan(input)
	if despanValue != nil {
		despanValue(&d.Value, input)
	}
}

// Formatted is a Decorated that additionally records the exact lexical
// form (Repr) the value appeared as in source, so that e.g. 1, 1.0 and
// 1e0 round-trip distinctly even though they compare numerically equal.
type Formatted[T any] struct {
	Value T
	Repr  RawString
	Decor Decor
	Span  Span
}

func (f *Formatted[T]) despan(input []byte) {
	f.Decor.despan(input)
	f.Repr.despan(input)
}

// Spanned is a value plus the span it occupies, with no decor of its
// own — its surrounding trivia belongs to the enclosing node. Used for
// operators and other atoms.
type Spanned[T any] struct {
	Value T
	Span  Span
}

func newSpanned[T any](value T, span Span) Spanned[T] {
	return Spanned[T]{Value: value, Span: span}
}

// --- decoration combinators -------------------------------------------------
//
// Generic wrappers that attach trivia to a parsed value. The parser in
// this package does not call them: its productions record each prefix
// and suffix span directly (see expr.go and structure.go).

// triviaFn is supplied by callers to consume a particular flavor of
// trivia (horizontal whitespace, full whitespace, whitespace+comments)
// starting at the cursor and return the span it covered.
type triviaFn func(c *cursor) Span

// prefixDecorated consumes trivia via skip, runs parse, and attaches the
// trivia span as the result's prefix decor.
func prefixDecorated[T any](c *cursor, skip triviaFn, parse func(*cursor) (T, error), setPrefix func(*T, RawString)) (T, error) {
	prefixSpan := skip(c)
	v, err := parse(c)
	if err != nil {
		var zero T
		return zero, err
	}
	setPrefix(&v, rawStringFromSpan(prefixSpan))
	return v, nil
}

// suffixDecorated runs parse, consumes trivia via skip, and attaches the
// trivia span as the result's suffix decor.
func suffixDecorated[T any](c *cursor, parse func(*cursor) (T, error), skip triviaFn, setSuffix func(*T, RawString)) (T, error) {
	v, err := parse(c)
	if err != nil {
		var zero T
		return zero, err
	}
	suffixSpan := skip(c)
	setSuffix(&v, rawStringFromSpan(suffixSpan))
	return v, nil
}

// decorated attaches both a prefix and a suffix.
func decorated[T any](c *cursor, skip1 triviaFn, parse func(*cursor) (T, error), skip2 triviaFn, setDecor func(*T, RawString, RawString)) (T, error) {
	prefixSpan := skip1(c)
	v, err := parse(c)
	if err != nil {
		var zero T
		return zero, err
	}
	suffixSpan := skip2(c)
	setDecor(&v, rawStringFromSpan(prefixSpan), rawStringFromSpan(suffixSpan))
	return v, nil
}

// spanned runs parse and records the full range it consumed.
func spanned[T any](c *cursor, parse func(*cursor) (T, error), setSpan func(*T, Span)) (T, error) {
	start := c.pos
	v, err := parse(c)
	if err != nil {
		var zero T
		return zero, err
	}
	setSpan(&v, c.span(start))
	return v, nil
}

// rawString consumes trivia via skip and returns it as a RawString,
// regardless of whether anything is attached to it (used for a body's
// final trailing trivia, which belongs to no node).
func rawString(c *cursor, skip triviaFn) RawString {
	return rawStringFromSpan(skip(c))
}

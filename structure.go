package hcl

// Body/attribute/block parsing. Grounded on
// original_source/crates/hcl-edit/src/parser/structure.rs: a body is a
// sequence of (leading trivia, structure, trailing trivia, line ending)
// groups, threading a single per-body "seen attribute keys" set so that
// a redefinition is caught inline, before the attribute's value is even
// parsed — not as a later validation pass.

type bodyParser struct {
	c     *cursor
	input []byte
	seen  map[string]Span
}

func newBodyParser(c *cursor, input []byte) *bodyParser {
	return &bodyParser{c: c, input: input, seen: make(map[string]Span)}
}

func (bp *bodyParser) exprParser() *exprParser { return &exprParser{c: bp.c, input: bp.input} }

func (bp *bodyParser) errorf(context, message string, expected ...string) *ParseError {
	err := newParseError(bp.input, bp.c.pos, message, expected...)
	err.Context = []string{context}
	return err
}

// parseBody parses a body up to EOF or an enclosing '}' (the caller
// distinguishes the two cases: top-level bodies run to EOF, block
// bodies are delimited by parseBlockBody before this is ever called
// for their content).
func parseBody(c *cursor, input []byte) (*Body, error) {
	start := c.pos
	bp := newBodyParser(c, input)
	var items []Structure

	for {
		leadingWS := skipWS(c)
		if c.atEnd() || c.peek() == '}' {
			body := &Body{Items: items, Span: c.span(start)}
			body.Decor.Suffix = rawStringFromSpan(leadingWS)
			return body, nil
		}

		st, err := bp.parseStructure(leadingWS)
		if err != nil {
			return nil, wrapContext(err, "body")
		}
		items = append(items, st)

		trailingStart := c.pos
		skipSP(c)
		if c.peek() == '#' || (c.peek() == '/' && c.byteAt(1) == '/') {
			skipLineComment(c)
		}
		if c.atEnd() || c.peek() == '}' {
			setStructureTrailing(st, rawStringFromSpan(c.span(trailingStart)))
			continue
		}
		// The line ending terminating this structure belongs to no node
		// of its own; fold it into Trailing so every byte stays covered
		// by the lossless-cover partition (spec.md §8), including which
		// of LF/CRLF was used.
		if !skipLineEnding(c) {
			return nil, bp.errorf("body", "expected newline after attribute or block", "newline", "eof")
		}
		setStructureTrailing(st, rawStringFromSpan(c.span(trailingStart)))
	}
}

// parseStructure parses one Attribute or Block, dispatching on the byte
// following the leading identifier and its trailing horizontal
// whitespace.
func (bp *bodyParser) parseStructure(leadingWS Span) (Structure, error) {
	c := bp.c
	start := leadingWS.Start
	if !isIDStart(c.peek()) {
		return nil, bp.errorf("structure", "expected identifier", "identifier")
	}
	identSpan := scanIdent(c)
	name := string(bp.input[identSpan.Start:identSpan.End])
	suffix := skipSP(c)

	switch {
	case c.peek() == '=':
		if prior, redefined := bp.seen[name]; redefined {
			_ = prior
			return nil, bp.errorf("attribute", "unique attribute key required; found redefined attribute "+name)
		}
		bp.seen[name] = identSpan

		c.advance(1)
		valuePrefix := skipSP(c)
		ep := bp.exprParser()
		value, err := ep.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "attribute")
		}
		setExprDecorPrefix(value, rawStringFromSpan(valuePrefix))

		key := Decorated[Ident]{Value: Ident(name), Span: identSpan}
		key.Decor.Prefix = rawStringFromSpan(leadingWS)
		key.Decor.Suffix = rawStringFromSpan(suffix)
		return &Attribute{Key: key, Value: value, Span: c.span(start)}, nil

	case c.peek() == '{':
		body, onelineBody, err := bp.parseBlockBody()
		if err != nil {
			return nil, wrapContext(err, "block")
		}
		key := Decorated[Ident]{Value: Ident(name), Span: identSpan}
		key.Decor.Prefix = rawStringFromSpan(leadingWS)
		key.Decor.Suffix = rawStringFromSpan(suffix)
		return &Block{Ident: key, Body: body, OnelineBody: onelineBody, Span: c.span(start)}, nil

	case c.peek() == '"' || isIDStart(c.peek()):
		labels, err := bp.parseBlockLabels()
		if err != nil {
			return nil, wrapContext(err, "block")
		}
		body, onelineBody, err := bp.parseBlockBody()
		if err != nil {
			return nil, wrapContext(err, "block")
		}
		key := Decorated[Ident]{Value: Ident(name), Span: identSpan}
		key.Decor.Prefix = rawStringFromSpan(leadingWS)
		key.Decor.Suffix = rawStringFromSpan(suffix)
		return &Block{Ident: key, Labels: labels, Body: body, OnelineBody: onelineBody, Span: c.span(start)}, nil

	default:
		return nil, bp.errorf("structure", "expected '=', '{', a label, or a newline", "'='", "'{'", "'\"'", "identifier")
	}
}

func (bp *bodyParser) parseBlockLabels() ([]BlockLabel, error) {
	c := bp.c
	var labels []BlockLabel
	for c.peek() == '"' || isIDStart(c.peek()) {
		var label BlockLabel
		if c.peek() == '"' {
			ep := bp.exprParser()
			start := c.pos
			c.advance(1)
			end, hasInterp, err := ep.scanStringBody()
			if err != nil {
				return nil, wrapContext(err, "block label")
			}
			if hasInterp {
				return nil, bp.errorf("block label", "block labels may not contain interpolations")
			}
			text := string(bp.input[c.pos:end])
			c.pos = end
			c.advance(1)
			d := Decorated[string]{Value: text, Span: c.span(start)}
			d.Decor.Suffix = rawStringFromSpan(skipSP(c))
			label = StringBlockLabel{d}
		} else {
			start := c.pos
			identSpan := scanIdent(c)
			d := Decorated[Ident]{Value: Ident(bp.input[identSpan.Start:identSpan.End]), Span: c.span(start)}
			d.Decor.Suffix = rawStringFromSpan(skipSP(c))
			label = IdentBlockLabel{d}
		}
		labels = append(labels, label)
	}
	return labels, nil
}

// parseBlockBody parses the `{ ... }` following a block's identifier
// and labels, choosing the multi-line or one-line production per
// structure.rs's alt: multiline if a (possibly comment-trailing)
// newline follows '{' before any content, one-line otherwise.
func (bp *bodyParser) parseBlockBody() (multiline *Body, oneline *OnelineBody, err error) {
	c := bp.c
	if c.peek() != '{' {
		return nil, nil, bp.errorf("block body", "expected '{'", "'{'")
	}
	c.advance(1)

	save := c.pos
	skipSP(c)
	if c.peek() == '#' || (c.peek() == '/' && c.byteAt(1) == '/') {
		skipLineComment(c)
	}
	if skipLineEnding(c) {
		leading := c.span(save)
		body, err := parseBody(c, bp.input)
		if err != nil {
			return nil, nil, wrapContext(err, "block body")
		}
		if c.peek() != '}' {
			return nil, nil, bp.errorf("block body", "missing closing '}'", "'}'", "newline", "identifier")
		}
		c.advance(1)
		body.Decor.Prefix = rawStringFromSpan(leading)
		return body, nil, nil
	}
	if c.atEnd() {
		return nil, nil, bp.errorf("block body", "missing closing '}'", "'}'")
	}

	c.pos = save
	return bp.parseOnelineBody()
}

func (bp *bodyParser) parseOnelineBody() (*Body, *OnelineBody, error) {
	c := bp.c
	start := c.pos
	ob := &OnelineBody{}

	attrPrefix := skipSP(c)
	if isIDStart(c.peek()) {
		identSpan := scanIdent(c)
		name := string(bp.input[identSpan.Start:identSpan.End])
		suffix := skipSP(c)
		if c.peek() == '=' {
			c.advance(1)
			valuePrefix := skipSP(c)
			ep := bp.exprParser()
			value, err := ep.parseExprFull()
			if err != nil {
				return nil, nil, wrapContext(err, "attribute")
			}
			setExprDecorPrefix(value, rawStringFromSpan(valuePrefix))
			key := Decorated[Ident]{Value: Ident(name), Span: identSpan}
			key.Decor.Prefix = rawStringFromSpan(attrPrefix)
			key.Decor.Suffix = rawStringFromSpan(suffix)
			attr := &Attribute{Key: key, Value: value, Span: Span{Start: identSpan.Start, End: c.pos}}
			ob.Attribute = attr
		} else {
			return nil, nil, bp.errorf("block body", "expected '=' in one-line block body", "'='")
		}
	} else {
		c.pos -= attrPrefix.Len()
	}

	trailing := skipSP(c)
	ob.Decor.Suffix = rawStringFromSpan(trailing)
	if c.peek() != '}' {
		return nil, nil, bp.errorf("block body", "expected '}' to close one-line block body", "'}'")
	}
	c.advance(1)
	ob.Span = c.span(start)
	return nil, ob, nil
}

func setStructureTrailing(st Structure, trailing RawString) {
	switch v := st.(type) {
	case *Attribute:
		v.Trailing = trailing
	case *Block:
		v.Trailing = trailing
	}
}

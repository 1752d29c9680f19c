package hcl

// Public entry points. Each parses one complete production, requires
// the entire input to be consumed (trailing garbage past trivia is an
// error), and despans the result before returning it — callers never
// see a tree that still aliases the input buffer.

// ParseBody parses a complete HCL body (the contents of a .hcl file:
// a top-level sequence of attributes and blocks).
func ParseBody(input string) (*Body, error) {
	raw := []byte(input)
	if msg := validateUTF8(raw); msg != "" {
		return nil, newParseError(raw, 0, msg)
	}
	c := newCursor(raw)
	body, err := parseBody(c, raw)
	if err != nil {
		return nil, err
	}
	if !c.atEnd() {
		return nil, newParseError(raw, c.pos, "unexpected trailing input after body", "eof")
	}
	despanBody(body, raw)
	return body, nil
}

// ParseExpression parses a single complete expression, e.g. the right
// hand side of an attribute in isolation.
func ParseExpression(input string) (Expression, error) {
	raw := []byte(input)
	if msg := validateUTF8(raw); msg != "" {
		return nil, newParseError(raw, 0, msg)
	}
	c := newCursor(raw)
	p := &exprParser{c: c, input: raw}
	prefix := skipWS(c)
	expr, err := p.parseExprFull()
	if err != nil {
		return nil, err
	}
	setExprDecorPrefix(expr, rawStringFromSpan(prefix))
	suffix := skipWS(c)
	setExprDecorSuffix(expr, rawStringFromSpan(suffix))
	if !c.atEnd() {
		return nil, newParseError(raw, c.pos, "unexpected trailing input after expression", "eof")
	}
	despanExpr(expr, raw)
	return expr, nil
}

// ParseTemplate parses a bare template body (no surrounding quotes),
// e.g. the contents handed to a consumer that already stripped
// delimiters from a heredoc or quoted string.
func ParseTemplate(input string) (*Template, error) {
	raw := []byte(input)
	if msg := validateUTF8(raw); msg != "" {
		return nil, newParseError(raw, 0, msg)
	}
	c := newCursor(raw)
	p := &exprParser{c: c, input: raw}
	tmpl, err := p.parseTemplateElements(len(raw))
	if err != nil {
		return nil, err
	}
	if !c.atEnd() {
		return nil, newParseError(raw, c.pos, "unexpected trailing input after template", "eof")
	}
	despanTemplate(tmpl, raw)
	return tmpl, nil
}

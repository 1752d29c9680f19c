package hcl

// Quoted string / string-template dispatch, and heredoc parsing. Both
// ultimately hand their body off to the shared template element loop
// in template.go.

// scanStringBody scans from the cursor's current position (just past
// the opening quote) for the closing, unescaped '"', reporting whether
// a "${" or "%{" appears anywhere in the body, including in its escaped
// "$${"/"%%{" form — the signal that this is a Template rather than a
// plain String.
func (p *exprParser) scanStringBody() (end int, hasInterp bool, err error) {
	input := p.input
	bodyStart := p.c.pos
	i := p.c.pos
	for i < len(input) {
		switch {
		case input[i] == '"':
			if msg := validateStringText(string(input[bodyStart:i])); msg != "" {
				return i, hasInterp, newParseError(input, bodyStart, msg)
			}
			return i, hasInterp, nil
		case input[i] == '\\':
			i += 2
		case hasPrefixAt(input, i, "$${"), hasPrefixAt(input, i, "%%{"):
			hasInterp = true
			i += 3
		case hasPrefixAt(input, i, "${"), hasPrefixAt(input, i, "%{"):
			hasInterp = true
			i += 2
		case input[i] == '\n':
			return i, hasInterp, newParseError(input, i, "unterminated string literal", "'\"'")
		default:
			i++
		}
	}
	return i, hasInterp, newParseError(input, i, "unterminated string literal", "'\"'")
}

func hasPrefixAt(input []byte, i int, s string) bool {
	if i+len(s) > len(input) {
		return false
	}
	return string(input[i:i+len(s)]) == s
}

func (p *exprParser) parseQuotedStringLike() (Expression, error) {
	start := p.c.pos
	p.c.advance(1) // opening quote
	end, hasInterp, err := p.scanStringBody()
	if err != nil {
		return nil, wrapContext(err, "quoted string")
	}

	if hasInterp {
		tmpl, err := p.parseTemplateElements(end)
		if err != nil {
			return nil, wrapContext(err, "quoted string")
		}
		p.c.pos = end
		p.c.advance(1) // closing quote
		return &TemplateExpr{Template: tmpl, Span: p.c.span(start)}, nil
	}

	text := string(p.input[p.c.pos:end])
	p.c.pos = end
	p.c.advance(1) // closing quote
	return &StringExpr{Decorated[string]{Value: text, Span: p.c.span(start)}}, nil
}

// parseHeredoc parses `<<TAG\n ... \nTAG` / `<<-TAG\n ... \nTAG`. The
// identifier closing the heredoc must appear alone on its own line;
// spaces or tabs before it are accepted in either form.
func (p *exprParser) parseHeredoc() (Expression, error) {
	start := p.c.pos
	p.c.advance(1) // '<'
	if p.c.peek() != '<' {
		return nil, p.errorf("heredoc", "expected '<<'", "'<<'")
	}
	p.c.advance(1)
	indented := false
	if p.c.peek() == '-' {
		indented = true
		p.c.advance(1)
	}
	if !isIDStart(p.c.peek()) {
		return nil, p.errorf("heredoc", "expected heredoc delimiter identifier", "identifier")
	}
	delimSpan := scanIdent(p.c)
	delimiter := string(p.input[delimSpan.Start:delimSpan.End])

	if !skipLineEnding(p.c) {
		return nil, p.errorf("heredoc", "expected newline after heredoc delimiter", "newline")
	}

	bodyStart := p.c.pos
	bodyEnd, lineStart, err := p.findHeredocEnd(delimiter)
	if err != nil {
		return nil, wrapContext(err, "heredoc")
	}

	tmpl, err := p.parseTemplateElements(bodyEnd)
	if err != nil {
		return nil, wrapContext(err, "heredoc")
	}
	_ = bodyStart

	p.c.pos = lineStart
	closingIndent := skipSP(p.c) // the closing line's leading indentation, if any
	scanIdent(p.c)

	return &HeredocTemplateExpr{
		Delimiter:     delimiter,
		Indented:      indented,
		Template:      tmpl,
		ClosingIndent: rawStringFromSpan(closingIndent),
		Span:          p.c.span(start),
	}, nil
}

// findHeredocEnd scans line by line from the cursor's current position
// looking for a line whose only content (after optional leading
// whitespace) is the delimiter. It returns the offset the body ends at
// (the start of that line) and the offset the line itself starts at.
func (p *exprParser) findHeredocEnd(delimiter string) (bodyEnd, lineStart int, err error) {
	input := p.input
	pos := p.c.pos
	for pos <= len(input) {
		lineStart = pos
		i := pos
		for i < len(input) && isHorizontalWS(input[i]) {
			i++
		}
		if hasPrefixAt(input, i, delimiter) {
			after := i + len(delimiter)
			if after >= len(input) || input[after] == '\n' || input[after] == '\r' {
				return lineStart, lineStart, nil
			}
		}
		for i < len(input) && input[i] != '\n' {
			i++
		}
		if i >= len(input) {
			return 0, 0, newParseError(input, i, "unterminated heredoc: missing closing delimiter "+delimiter, "'"+delimiter+"'")
		}
		pos = i + 1
	}
	return 0, 0, newParseError(input, pos, "unterminated heredoc: missing closing delimiter "+delimiter, "'"+delimiter+"'")
}

package hcl

// Template element parsing, shared by quoted-string templates and
// heredoc templates. Both call parseTemplateElements with the absolute
// offset their body ends at; the loop stops either at that offset or
// when it peeks a directive closer/else belonging to an enclosing
// if/for (which the caller, not this loop, consumes).

var directiveKeywords = []string{"else", "endif", "endfor", "if", "for"}

// peekDirectiveKeyword looks ahead (without consuming) for a `%{` tag
// and classifies its keyword, tolerating whitespace and a leading `~`
// strip marker between `%{` and the keyword.
func (p *exprParser) peekDirectiveKeyword() (string, bool) {
	save := p.c.pos
	defer func() { p.c.pos = save }()

	if !p.c.hasPrefix("%{") {
		return "", false
	}
	p.c.advance(2)
	skipWS(p.c)
	if p.c.peek() == '~' {
		p.c.advance(1)
		skipWS(p.c)
	}
	for _, kw := range directiveKeywords {
		if p.c.hasPrefix(kw) && !isIDContinueAt(p.c, len(kw)) {
			return kw, true
		}
	}
	return "", false
}

func (p *exprParser) scanTemplateLiteral(end int) Span {
	start := p.c.pos
	for p.c.pos < end {
		if hasPrefixAt(p.input, p.c.pos, "$${") || hasPrefixAt(p.input, p.c.pos, "%%{") {
			p.c.advance(3)
			continue
		}
		if hasPrefixAt(p.input, p.c.pos, "${") || hasPrefixAt(p.input, p.c.pos, "%{") {
			break
		}
		if p.c.peek() == '\\' && p.c.pos+1 < end {
			p.c.advance(2)
			continue
		}
		p.c.advance(1)
	}
	return p.c.span(start)
}

func (p *exprParser) parseTemplateElements(end int) (*Template, error) {
	start := p.c.pos
	var elements []Element
	for p.c.pos < end {
		if kw, ok := p.peekDirectiveKeyword(); ok {
			switch kw {
			case "else", "endif", "endfor":
				return &Template{Elements: elements, Span: p.c.span(start)}, nil
			case "if":
				el, err := p.parseIfDirective(end)
				if err != nil {
					return nil, wrapContext(err, "template")
				}
				elements = append(elements, el)
				continue
			case "for":
				el, err := p.parseForDirective(end)
				if err != nil {
					return nil, wrapContext(err, "template")
				}
				elements = append(elements, el)
				continue
			}
		}
		if p.c.hasPrefix("${") {
			el, err := p.parseInterpolation()
			if err != nil {
				return nil, wrapContext(err, "template")
			}
			elements = append(elements, el)
			continue
		}
		litSpan := p.scanTemplateLiteral(end)
		if litSpan.Len() == 0 {
			break
		}
		elements = append(elements, &LiteralElement{newSpanned(string(p.input[litSpan.Start:litSpan.End]), litSpan)})
	}
	return &Template{Elements: elements, Span: p.c.span(start)}, nil
}

func (p *exprParser) parseInterpolation() (*InterpolationElement, error) {
	start := p.c.pos
	p.c.advance(2) // "${"
	skipWS(p.c)
	stripStart := false
	if p.c.peek() == '~' {
		stripStart = true
		p.c.advance(1)
	}
	prefix := skipWS(p.c)
	expr, err := p.parseExprFull()
	if err != nil {
		return nil, wrapContext(err, "interpolation")
	}
	setExprDecorPrefix(expr, rawStringFromSpan(prefix))

	suffix := skipWS(p.c)
	stripEnd := false
	if p.c.peek() == '~' {
		stripEnd = true
		p.c.advance(1)
		skipWS(p.c)
	}
	setExprDecorSuffix(expr, rawStringFromSpan(suffix))
	if p.c.peek() != '}' {
		return nil, p.errorf("interpolation", "missing closing '}' in interpolation", "'}'")
	}
	p.c.advance(1)
	return &InterpolationElement{Expr: expr, StripStart: stripStart, StripEnd: stripEnd, Span: p.c.span(start)}, nil
}

// consumeDirectiveOpenerKeyword consumes a `%{ [~] KEYWORD` opener that the
// caller has already confirmed via peekDirectiveKeyword, returning
// whether a leading strip marker was present.
func (p *exprParser) consumeDirectiveOpenerKeyword(keyword string) (stripStart bool) {
	p.c.advance(2) // "%{"
	skipWS(p.c)
	if p.c.peek() == '~' {
		stripStart = true
		p.c.advance(1)
		skipWS(p.c)
	}
	p.c.advance(len(keyword))
	return stripStart
}

// consumeDirectiveCloser consumes `[~] }` ending a directive tag.
func (p *exprParser) consumeDirectiveCloser() (stripEnd bool, err error) {
	skipWS(p.c)
	if p.c.peek() == '~' {
		stripEnd = true
		p.c.advance(1)
		skipWS(p.c)
	}
	if p.c.peek() != '}' {
		return false, p.errorf("directive", "missing closing '}' in directive tag", "'}'")
	}
	p.c.advance(1)
	return stripEnd, nil
}

func (p *exprParser) parseIfDirective(end int) (*IfDirective, error) {
	start := p.c.pos
	stripStart := p.consumeDirectiveOpenerKeyword("if")
	condPrefix := skipSP(p.c)
	cond, err := p.parseExprFull()
	if err != nil {
		return nil, wrapContext(err, "if directive")
	}
	setExprDecorPrefix(cond, rawStringFromSpan(condPrefix))
	condSuffix := skipSP(p.c)
	setExprDecorSuffix(cond, rawStringFromSpan(condSuffix))
	condStripEnd, err := p.consumeDirectiveCloser()
	if err != nil {
		return nil, wrapContext(err, "if directive")
	}

	thenTmpl, err := p.parseTemplateElements(end)
	if err != nil {
		return nil, wrapContext(err, "if directive")
	}

	d := &IfDirective{
		Cond:           cond,
		CondStripStart: stripStart,
		CondStripEnd:   condStripEnd,
		Then:           thenTmpl,
	}

	kw, ok := p.peekDirectiveKeyword()
	if !ok {
		return nil, p.errorf("if directive", "missing '%{ endif }' in if directive", "'%{ endif }'")
	}
	if kw == "else" {
		d.HasElse = true
		d.ElseStripStart = p.consumeDirectiveOpenerKeyword("else")
		stripEnd, err := p.consumeDirectiveCloser()
		if err != nil {
			return nil, wrapContext(err, "if directive")
		}
		d.ElseStripEnd = stripEnd
		elseTmpl, err := p.parseTemplateElements(end)
		if err != nil {
			return nil, wrapContext(err, "if directive")
		}
		d.Else = elseTmpl
		kw, ok = p.peekDirectiveKeyword()
		if !ok || kw != "endif" {
			return nil, p.errorf("if directive", "missing '%{ endif }' in if directive", "'%{ endif }'")
		}
	}
	if kw != "endif" {
		return nil, p.errorf("if directive", "missing '%{ endif }' in if directive", "'%{ endif }'")
	}
	d.EndifStripStart = p.consumeDirectiveOpenerKeyword("endif")
	stripEnd, err := p.consumeDirectiveCloser()
	if err != nil {
		return nil, wrapContext(err, "if directive")
	}
	d.EndifStripEnd = stripEnd
	d.Span = p.c.span(start)
	return d, nil
}

func (p *exprParser) parseForDirective(end int) (*ForDirective, error) {
	start := p.c.pos
	introStripStart := p.consumeDirectiveOpenerKeyword("for")

	afterFor := skipSP(p.c)
	first, err := p.parseIdentDecorated(afterFor)
	if err != nil {
		return nil, wrapContext(err, "for directive")
	}
	var keyVar *Decorated[Ident]
	var valueVar Decorated[Ident]
	afterFirst := skipSP(p.c)
	if p.c.peek() == ',' {
		p.c.advance(1)
		first.Decor.Suffix = rawStringFromSpan(afterFirst)
		keyVar = &first
		afterComma := skipSP(p.c)
		valueVar, err = p.parseIdentDecorated(afterComma)
		if err != nil {
			return nil, wrapContext(err, "for directive")
		}
	} else {
		valueVar = first
		valueVar.Decor.Suffix = rawStringFromSpan(afterFirst)
	}

	if keyVar != nil {
		afterSecond := skipSP(p.c)
		valueVar.Decor.Suffix = rawStringFromSpan(afterSecond)
	}
	if !p.c.hasPrefix("in") {
		return nil, p.errorf("for directive", "missing 'in' in for directive", "'in'")
	}
	p.c.advance(2)
	collPrefix := skipSP(p.c)
	collection, err := p.parseExprFull()
	if err != nil {
		return nil, wrapContext(err, "for directive")
	}
	setExprDecorPrefix(collection, rawStringFromSpan(collPrefix))
	collSuffix := skipSP(p.c)
	setExprDecorSuffix(collection, rawStringFromSpan(collSuffix))

	introStripEnd, err := p.consumeDirectiveCloser()
	if err != nil {
		return nil, wrapContext(err, "for directive")
	}

	body, err := p.parseTemplateElements(end)
	if err != nil {
		return nil, wrapContext(err, "for directive")
	}

	kw, ok := p.peekDirectiveKeyword()
	if !ok || kw != "endfor" {
		return nil, p.errorf("for directive", "missing '%{ endfor }' in for directive", "'%{ endfor }'")
	}
	endforStripStart := p.consumeDirectiveOpenerKeyword("endfor")
	endforStripEnd, err := p.consumeDirectiveCloser()
	if err != nil {
		return nil, wrapContext(err, "for directive")
	}

	return &ForDirective{
		KeyVar:           keyVar,
		ValueVar:         valueVar,
		Collection:       collection,
		IntroStripStart:  introStripStart,
		IntroStripEnd:    introStripEnd,
		Body:             body,
		EndforStripStart: endforStripStart,
		EndforStripEnd:   endforStripEnd,
		Span:             p.c.span(start),
	}, nil
}

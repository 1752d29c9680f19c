package hcl

// Array, object and for-expression parsing. Split out from expr.go
// because the for-comprehension lookahead and the object item
// terminator state machine are each substantial enough to want their
// own home, the way the teacher splits lexing/parsing/query/mutate
// into separate files for separate concerns.

func (p *exprParser) looksLikeForExpr() bool {
	save := p.c.pos
	defer func() { p.c.pos = save }()

	skipWS(p.c)
	if !p.c.hasPrefix("for") {
		return false
	}
	p.c.advance(3)
	if p.c.atEnd() {
		return false
	}
	switch p.c.peek() {
	case ' ', '\t', '#', '/':
		return true
	default:
		return false
	}
}

func (p *exprParser) parseArrayOrForArray() (Expression, error) {
	start := p.c.pos
	p.c.advance(1) // '['
	if p.looksLikeForExpr() {
		return p.parseForExpr(start, false)
	}
	return p.parseArrayItems(start)
}

func (p *exprParser) parseArrayItems(start int) (Expression, error) {
	var items []Expression
	trailingComma := false
	var innerTrailing RawString
	justSawComma := false
	for {
		prefix := skipWS(p.c)
		if p.c.peek() == ']' {
			if justSawComma {
				trailingComma = true
			}
			// Only reachable on the first pass (no items yet) or right
			// after a comma: either way prefix belongs to no item, so it
			// would otherwise vanish from the lossless-cover partition.
			innerTrailing = rawStringFromSpan(prefix)
			p.c.advance(1)
			break
		}
		item, err := p.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "array")
		}
		setExprDecorPrefix(item, rawStringFromSpan(prefix))
		items = append(items, item)
		justSawComma = false

		afterItem := skipWS(p.c)
		switch p.c.peek() {
		case ',':
			setExprDecorSuffix(item, rawStringFromSpan(afterItem))
			p.c.advance(1)
			justSawComma = true
			continue
		case ']':
			setExprDecorSuffix(item, rawStringFromSpan(afterItem))
			p.c.advance(1)
			return &ArrayExpr{Items: items, TrailingComma: false, Span: p.c.span(start)}, nil
		default:
			return nil, p.errorf("array", "missing ',' or ']' in array", "','", "']'")
		}
	}
	return &ArrayExpr{Items: items, TrailingComma: trailingComma, InnerTrailing: innerTrailing, Span: p.c.span(start)}, nil
}

func (p *exprParser) parseObjectOrForObject() (Expression, error) {
	start := p.c.pos
	p.c.advance(1) // '{'
	if p.looksLikeForExpr() {
		return p.parseForExpr(start, true)
	}
	return p.parseObjectItems(start)
}

func (p *exprParser) parseObjectItems(start int) (Expression, error) {
	var items []ObjectItem
	var innerTrailing RawString
	for {
		itemStart := p.c.pos
		prefix := skipWS(p.c)
		if p.c.peek() == '}' {
			// Reachable on the first pass (empty object) or after any
			// item's terminator (comma or bare newline): either way
			// prefix belongs to no item, so capture it here instead of
			// letting it vanish from the lossless-cover partition.
			innerTrailing = rawStringFromSpan(prefix)
			p.c.advance(1)
			break
		}

		key, keyIsIdent, err := p.parseObjectKey()
		if err != nil {
			return nil, wrapContext(err, "object item")
		}
		setExprDecorPrefix(key, rawStringFromSpan(prefix))

		afterKey := skipSP(p.c)
		var assignment ObjectValueAssignment
		switch p.c.peek() {
		case '=':
			assignment = ObjectAssignEquals
			p.c.advance(1)
		case ':':
			assignment = ObjectAssignColon
			p.c.advance(1)
		default:
			return nil, p.errorf("object item", "missing '=' or ':' after object key", "'='", "':'")
		}
		setExprDecorSuffix(key, rawStringFromSpan(afterKey))

		valuePrefix := skipSP(p.c)
		value, err := p.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "object item")
		}
		setExprDecorPrefix(value, rawStringFromSpan(valuePrefix))

		termWS := skipSP(p.c)
		terminator, err := p.parseObjectValueTerminator(value, termWS)
		if err != nil {
			return nil, wrapContext(err, "object item")
		}

		items = append(items, ObjectItem{
			Key:        key,
			KeyIsIdent: keyIsIdent,
			Assignment: assignment,
			Value:      value,
			Terminator: terminator,
			Span:       p.c.span(itemStart),
		})

		if terminator == ObjectTermNone {
			break
		}
	}
	return &ObjectExpr{Items: items, InnerTrailing: innerTrailing, Span: p.c.span(start)}, nil
}

// parseObjectValueTerminator consumes the bytes after an object item's
// value (already past any horizontal whitespace, recorded in termWS)
// and classifies + consumes the terminator, attaching a same-line
// trailing comment to the value's suffix decor per spec.md §4.3.
func (p *exprParser) parseObjectValueTerminator(value Expression, termWS Span) (ObjectValueTerminator, error) {
	if p.c.peek() == '}' {
		setExprDecorSuffix(value, rawStringFromSpan(termWS))
		p.c.advance(1)
		return ObjectTermNone, nil
	}
	if p.c.peek() == ',' {
		setExprDecorSuffix(value, rawStringFromSpan(termWS))
		p.c.advance(1)
		return ObjectTermComma, nil
	}
	if p.c.peek() == '#' || (p.c.peek() == '/' && p.c.byteAt(1) == '/') {
		commentStart := termWS.Start
		skipLineComment(p.c)
		if !skipLineEnding(p.c) && !p.c.atEnd() {
			return ObjectTermNone, p.errorf("object item", "expected newline after trailing comment", "newline")
		}
		setExprDecorSuffix(value, rawStringFromSpan(Span{Start: commentStart, End: p.c.pos}))
		return ObjectTermNewline, nil
	}
	if skipLineEnding(p.c) {
		setExprDecorSuffix(value, rawStringFromSpan(Span{Start: termWS.Start, End: p.c.pos}))
		return ObjectTermNewline, nil
	}
	if p.c.atEnd() {
		setExprDecorSuffix(value, rawStringFromSpan(termWS))
		return ObjectTermNewline, nil
	}
	return ObjectTermNone, p.errorf("object item", "missing newline, ',' or '}' after object value", "newline", "','", "'}'")
}

// parseObjectKey parses an object key. A key starting with an
// identifier byte is scanned as a bare identifier and reported as an
// identifier key, unless '(' follows, in which case it is a function
// call. Any other key (typically parenthesized or quoted) is parsed as a
// single expression term and accepted as-is.
func (p *exprParser) parseObjectKey() (Expression, bool, error) {
	if isIDStart(p.c.peek()) {
		start := p.c.pos
		identSpan := scanIdent(p.c)
		name := string(p.input[identSpan.Start:identSpan.End])
		if p.c.peek() == '(' {
			e, err := p.parseFuncCall(start, identSpan, name)
			if err != nil {
				return nil, false, wrapContext(err, "object item")
			}
			return e, false, nil
		}
		return &VariableExpr{Decorated[Ident]{Value: Ident(name), Span: p.c.span(start)}}, true, nil
	}
	e, err := p.parseExprTerm()
	if err != nil {
		return nil, false, wrapContext(err, "object item")
	}
	return e, false, nil
}

// parseForExpr parses `for K [, V] in COLLECTION : BODY [if COND]`,
// already past the opening '[' or '{' and the for-lookahead check.
func (p *exprParser) parseForExpr(start int, isObject bool) (Expression, error) {
	introPrefix := skipWS(p.c)
	if !p.c.hasPrefix("for") {
		return nil, p.errorf("for expression", "expected 'for'", "'for'")
	}
	p.c.advance(3)

	afterFor := skipSP(p.c)
	first, err := p.parseIdentDecorated(afterFor)
	if err != nil {
		return nil, wrapContext(err, "for expression")
	}

	var keyVar *Decorated[Ident]
	var valueVar Decorated[Ident]

	afterFirst := skipSP(p.c)
	if p.c.peek() == ',' {
		p.c.advance(1)
		first.Decor.Suffix = rawStringFromSpan(afterFirst)
		keyVar = &first
		afterComma := skipSP(p.c)
		second, err := p.parseIdentDecorated(afterComma)
		if err != nil {
			return nil, wrapContext(err, "for expression")
		}
		valueVar = second
	} else {
		valueVar = first
		valueVar.Decor.Suffix = rawStringFromSpan(afterFirst)
	}

	if keyVar != nil {
		afterSecond := skipSP(p.c)
		valueVar.Decor.Suffix = rawStringFromSpan(afterSecond)
	}

	if !p.c.hasPrefix("in") {
		return nil, p.errorf("for expression", "missing 'in' in for expression", "'in'")
	}
	p.c.advance(2)
	collPrefix := skipSP(p.c)
	collection, err := p.parseExprFull()
	if err != nil {
		return nil, wrapContext(err, "for expression")
	}
	setExprDecorPrefix(collection, rawStringFromSpan(collPrefix))

	colonPrefix := skipSP(p.c)
	if p.c.peek() != ':' {
		return nil, p.errorf("for expression", "missing ':' in for expression", "':'")
	}
	setExprDecorSuffix(collection, rawStringFromSpan(colonPrefix))
	p.c.advance(1)

	fe := &ForExpr{IntroTrivia: rawStringFromSpan(introPrefix), KeyVar: keyVar, ValueVar: valueVar, Collection: collection, IsObject: isObject}

	bodyPrefix := skipWS(p.c)
	if isObject {
		keyExpr, err := p.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "for expression")
		}
		setExprDecorPrefix(keyExpr, rawStringFromSpan(bodyPrefix))
		arrowPrefix := skipSP(p.c)
		if !p.c.hasPrefix("=>") {
			return nil, p.errorf("for expression", "missing '=>' in object for-expression", "'=>'")
		}
		setExprDecorSuffix(keyExpr, rawStringFromSpan(arrowPrefix))
		p.c.advance(2)
		valPrefix := skipSP(p.c)
		valExpr, err := p.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "for expression")
		}
		setExprDecorPrefix(valExpr, rawStringFromSpan(valPrefix))
		fe.KeyExpr = keyExpr
		fe.ValueExpr = valExpr

		groupingPrefix := skipSP(p.c)
		if p.c.peek() == '.' && p.c.byteAt(1) == '.' && p.c.byteAt(2) == '.' {
			setExprDecorSuffix(valExpr, rawStringFromSpan(groupingPrefix))
			p.c.advance(3)
			fe.Grouping = true
		} else {
			p.c.pos -= groupingPrefix.Len()
		}
	} else {
		valExpr, err := p.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "for expression")
		}
		setExprDecorPrefix(valExpr, rawStringFromSpan(bodyPrefix))
		fe.ValueExpr = valExpr
	}

	condPrefix := skipWS(p.c)
	if p.c.hasPrefix("if") && !isIDContinueAt(p.c, 2) {
		p.c.advance(2)
		setExprDecorSuffix(fe.ValueExpr, rawStringFromSpan(condPrefix))
		ifCondPrefix := skipSP(p.c)
		cond, err := p.parseExprFull()
		if err != nil {
			return nil, wrapContext(err, "for expression")
		}
		setExprDecorPrefix(cond, rawStringFromSpan(ifCondPrefix))
		fe.Cond = cond
	} else {
		p.c.pos -= condPrefix.Len()
	}

	closePrefix := skipWS(p.c)
	closer := byte('}')
	if !isObject {
		closer = ']'
	}
	if p.c.peek() != closer {
		return nil, p.errorf("for expression", "missing closing bracket in for expression")
	}
	if fe.Cond != nil {
		setExprDecorSuffix(fe.Cond, rawStringFromSpan(closePrefix))
	} else {
		setExprDecorSuffix(fe.ValueExpr, rawStringFromSpan(closePrefix))
	}
	p.c.advance(1)
	fe.Span = p.c.span(start)
	return fe, nil
}

func isIDContinueAt(c *cursor, offset int) bool {
	b := c.byteAt(offset)
	return isIDStart(b) || isDigit(b)
}

func (p *exprParser) parseIdentDecorated(prefix Span) (Decorated[Ident], error) {
	if !isIDStart(p.c.peek()) {
		return Decorated[Ident]{}, p.errorf("for expression", "expected identifier", "identifier")
	}
	identSpan := scanIdent(p.c)
	d := Decorated[Ident]{Value: Ident(p.input[identSpan.Start:identSpan.End]), Span: identSpan}
	d.Decor.Prefix = rawStringFromSpan(prefix)
	return d, nil
}

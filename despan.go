package hcl

// Despan pass: after a successful parse, every RawString (and every
// Formatted's Repr) still only remembers a byte range into the input.
// This file walks the whole tree once and materializes each of those
// ranges into an owned copy, so the tree no longer aliases the input
// buffer afterwards. Mirrors the separation in
// original_source/.../parser/mod.rs, where parse_body/parse_expr/
// parse_template each call body.despan(input) before returning.

func despanBody(b *Body, input []byte) {
	if b == nil {
		return
	}
	b.Decor.despan(input)
	for _, st := range b.Items {
		despanStructure(st, input)
	}
}

func despanStructure(st Structure, input []byte) {
	switch v := st.(type) {
	case *Attribute:
		despanAttribute(v, input)
	case *Block:
		despanBlock(v, input)
	}
}

func despanAttribute(a *Attribute, input []byte) {
	a.Key.despan(input, nil)
	despanExpr(a.Value, input)
	a.Trailing.despan(input)
}

func despanBlock(b *Block, input []byte) {
	b.Ident.despan(input, nil)
	for i := range b.Labels {
		despanBlockLabel(&b.Labels[i], input)
	}
	if b.Body != nil {
		despanBody(b.Body, input)
	}
	if b.OnelineBody != nil {
		despanOnelineBody(b.OnelineBody, input)
	}
	b.Trailing.despan(input)
}

func despanOnelineBody(ob *OnelineBody, input []byte) {
	if ob.Attribute != nil {
		despanAttribute(ob.Attribute, input)
	}
	ob.Decor.despan(input)
}

func despanBlockLabel(l *BlockLabel, input []byte) {
	switch v := (*l).(type) {
	case StringBlockLabel:
		v.despan(input, nil)
		*l = v
	case IdentBlockLabel:
		v.despan(input, nil)
		*l = v
	}
}

func despanExpr(e Expression, input []byte) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *NullExpr:
		v.despan(input, nil)
	case *BoolExpr:
		v.despan(input, nil)
	case *NumberExpr:
		v.despan(input)
	case *StringExpr:
		v.despan(input, nil)
	case *TemplateExpr:
		v.Decor.despan(input)
		despanTemplate(v.Template, input)
	case *HeredocTemplateExpr:
		v.Decor.despan(input)
		v.ClosingIndent.despan(input)
		despanTemplate(v.Template, input)
	case *VariableExpr:
		v.despan(input, nil)
	case *ParenthesisExpr:
		v.Decor.despan(input)
		despanExpr(v.Inner, input)
	case *ArrayExpr:
		v.Decor.despan(input)
		v.InnerTrailing.despan(input)
		for _, it := range v.Items {
			despanExpr(it, input)
		}
	case *ObjectExpr:
		v.Decor.despan(input)
		v.InnerTrailing.despan(input)
		for i := range v.Items {
			despanExpr(v.Items[i].Key, input)
			despanExpr(v.Items[i].Value, input)
		}
	case *ForExpr:
		v.Decor.despan(input)
		v.IntroTrivia.despan(input)
		if v.KeyVar != nil {
			v.KeyVar.despan(input, nil)
		}
		v.ValueVar.despan(input, nil)
		despanExpr(v.Collection, input)
		despanExpr(v.KeyExpr, input)
		despanExpr(v.ValueExpr, input)
		despanExpr(v.Cond, input)
	case *ConditionalExpr:
		v.Decor.despan(input)
		despanExpr(v.Cond, input)
		despanExpr(v.TrueExpr, input)
		despanExpr(v.FalseExpr, input)
	case *FuncCallExpr:
		v.Decor.despan(input)
		v.Name.despan(input, nil)
		v.ExpandTrivia.despan(input)
		for _, a := range v.Args {
			despanExpr(a, input)
		}
	case *UnaryOpExpr:
		v.Decor.despan(input)
		despanExpr(v.Operand, input)
	case *BinaryOpExpr:
		v.Decor.despan(input)
		despanExpr(v.LHS, input)
		despanExpr(v.RHS, input)
	case *TraversalExpr:
		v.Decor.despan(input)
		despanExpr(v.Expr, input)
		for i := range v.Operators {
			despanTraversalOperator(&v.Operators[i], input)
		}
	}
}

func despanTraversalOperator(op *TraversalOperator, input []byte) {
	switch v := (*op).(type) {
	case GetAttrOperator:
		v.despan(input, nil)
		*op = v
	case LegacyIndexOperator:
		v.despan(input, nil)
		*op = v
	case AttrSplatOperator:
		v.despan(input, nil)
		*op = v
	case FullSplatOperator:
		v.Decor.despan(input)
		v.StarSuffix.despan(input)
		*op = v
	case IndexOperator:
		v.Decor.despan(input)
		despanExpr(v.Expr, input)
		*op = v
	}
}

func despanTemplate(t *Template, input []byte) {
	if t == nil {
		return
	}
	for _, el := range t.Elements {
		despanElement(el, input)
	}
}

func despanElement(el Element, input []byte) {
	switch v := el.(type) {
	case *LiteralElement:
		// Spanned carries no decor of its own; its text is already an
		// owned Go string (materialized at parse time), nothing to do.
		_ = v
	case *InterpolationElement:
		despanExpr(v.Expr, input)
	case *IfDirective:
		despanExpr(v.Cond, input)
		despanTemplate(v.Then, input)
		if v.HasElse {
			despanTemplate(v.Else, input)
		}
	case *ForDirective:
		if v.KeyVar != nil {
			v.KeyVar.despan(input, nil)
		}
		v.ValueVar.despan(input, nil)
		despanExpr(v.Collection, input)
		despanTemplate(v.Body, input)
	}
}

package hcl

import (
	"strconv"
	"strings"
)

// Source rendering: turn a despanned tree back into text. Since every
// byte of valid input is accounted for by exactly one node span or one
// RawString decoration, rendering is just an in-order walk emitting
// each RawString's Text and each node's own fixed grammar punctuation
// ('=', '{', '?', ...) — no layout decisions of its own. Grounded on
// the teacher's Document.String()/serializeKeyValue family in toml.go:
// same "walk the node list, write leading trivia then the node's own
// text then its trailing trivia" shape, generalized from TOML's
// flat KeyValue/TableNode list to HCL's recursive Body/Block nesting.

// String renders b back to source text.
func (b *Body) String() string {
	var w strings.Builder
	writeBody(&w, b)
	return w.String()
}

func writeBody(w *strings.Builder, b *Body) {
	w.WriteString(b.Decor.Prefix.Text)
	for _, st := range b.Items {
		writeStructure(w, st)
	}
	w.WriteString(b.Decor.Suffix.Text)
}

func writeStructure(w *strings.Builder, st Structure) {
	switch v := st.(type) {
	case *Attribute:
		writeAttribute(w, v)
	case *Block:
		writeBlock(w, v)
	}
}

func writeAttribute(w *strings.Builder, a *Attribute) {
	writeIdent(w, a.Key)
	w.WriteByte('=')
	writeExpr(w, a.Value)
	w.WriteString(a.Trailing.Text)
}

func writeIdent(w *strings.Builder, d Decorated[Ident]) {
	w.WriteString(d.Decor.Prefix.Text)
	w.WriteString(string(d.Value))
	w.WriteString(d.Decor.Suffix.Text)
}

func writeBlock(w *strings.Builder, b *Block) {
	writeIdent(w, b.Ident)
	for _, l := range b.Labels {
		writeBlockLabel(w, l)
	}
	w.WriteByte('{')
	switch {
	case b.Body != nil:
		writeBody(w, b.Body)
		w.WriteByte('}')
	case b.OnelineBody != nil:
		writeOnelineBody(w, b.OnelineBody)
	}
	w.WriteString(b.Trailing.Text)
}

func writeBlockLabel(w *strings.Builder, l BlockLabel) {
	switch v := l.(type) {
	case StringBlockLabel:
		w.WriteByte('"')
		w.WriteString(v.Value)
		w.WriteByte('"')
		w.WriteString(v.Decor.Suffix.Text)
	case IdentBlockLabel:
		w.WriteString(string(v.Value))
		w.WriteString(v.Decor.Suffix.Text)
	}
}

func writeOnelineBody(w *strings.Builder, ob *OnelineBody) {
	if ob.Attribute != nil {
		writeAttribute(w, ob.Attribute)
	}
	w.WriteString(ob.Decor.Suffix.Text)
	w.WriteByte('}')
}

// writeExpr writes an expression's own surrounding decor plus its core
// rendering.
func writeExpr(w *strings.Builder, e Expression) {
	d := exprDecor(e)
	if d != nil {
		w.WriteString(d.Prefix.Text)
	}
	writeExprCore(w, e)
	if d != nil {
		w.WriteString(d.Suffix.Text)
	}
}

func writeExprCore(w *strings.Builder, e Expression) {
	switch v := e.(type) {
	case *NullExpr:
		w.WriteString("null")
	case *BoolExpr:
		w.WriteString(strconv.FormatBool(v.Value))
	case *NumberExpr:
		w.WriteString(v.Repr.Text)
	case *StringExpr:
		w.WriteByte('"')
		w.WriteString(v.Value)
		w.WriteByte('"')
	case *TemplateExpr:
		w.WriteByte('"')
		writeTemplate(w, v.Template)
		w.WriteByte('"')
	case *HeredocTemplateExpr:
		writeHeredoc(w, v)
	case *VariableExpr:
		w.WriteString(string(v.Value))
	case *ParenthesisExpr:
		w.WriteByte('(')
		writeExpr(w, v.Inner)
		w.WriteByte(')')
	case *ArrayExpr:
		writeArray(w, v)
	case *ObjectExpr:
		writeObject(w, v)
	case *ForExpr:
		writeForExpr(w, v)
	case *ConditionalExpr:
		writeExpr(w, v.Cond)
		w.WriteByte('?')
		writeExpr(w, v.TrueExpr)
		w.WriteByte(':')
		writeExpr(w, v.FalseExpr)
	case *FuncCallExpr:
		writeFuncCall(w, v)
	case *UnaryOpExpr:
		w.WriteString(v.Operator.Value.String())
		writeExpr(w, v.Operand)
	case *BinaryOpExpr:
		writeExpr(w, v.LHS)
		w.WriteString(string(v.Operator.Value))
		writeExpr(w, v.RHS)
	case *TraversalExpr:
		writeExpr(w, v.Expr)
		for _, op := range v.Operators {
			writeTraversalOperator(w, op)
		}
	}
}

func writeArray(w *strings.Builder, a *ArrayExpr) {
	w.WriteByte('[')
	for i, item := range a.Items {
		writeExpr(w, item)
		if i < len(a.Items)-1 || a.TrailingComma {
			w.WriteByte(',')
		}
	}
	w.WriteString(a.InnerTrailing.Text)
	w.WriteByte(']')
}

func writeObject(w *strings.Builder, o *ObjectExpr) {
	w.WriteByte('{')
	for _, item := range o.Items {
		writeExpr(w, item.Key)
		if item.Assignment == ObjectAssignColon {
			w.WriteByte(':')
		} else {
			w.WriteByte('=')
		}
		writeExpr(w, item.Value)
		if item.Terminator == ObjectTermComma {
			w.WriteByte(',')
		}
	}
	w.WriteString(o.InnerTrailing.Text)
	w.WriteByte('}')
}

func writeForExpr(w *strings.Builder, f *ForExpr) {
	if f.IsObject {
		w.WriteByte('{')
	} else {
		w.WriteByte('[')
	}
	w.WriteString(f.IntroTrivia.Text)
	w.WriteString("for")
	if f.KeyVar != nil {
		writeIdent(w, *f.KeyVar)
		w.WriteByte(',')
		writeIdent(w, f.ValueVar)
	} else {
		writeIdent(w, f.ValueVar)
	}
	w.WriteString("in")
	writeExpr(w, f.Collection)
	w.WriteByte(':')
	if f.IsObject {
		writeExpr(w, f.KeyExpr)
		w.WriteString("=>")
		writeExpr(w, f.ValueExpr)
		if f.Grouping {
			w.WriteString("...")
		}
	} else {
		writeExpr(w, f.ValueExpr)
	}
	if f.Cond != nil {
		w.WriteString("if")
		writeExpr(w, f.Cond)
	}
	if f.IsObject {
		w.WriteByte('}')
	} else {
		w.WriteByte(']')
	}
}

func writeFuncCall(w *strings.Builder, f *FuncCallExpr) {
	writeIdent(w, f.Name)
	w.WriteByte('(')
	for i, arg := range f.Args {
		writeExpr(w, arg)
		last := i == len(f.Args)-1
		if !last {
			w.WriteByte(',')
		} else if f.ExpandFinal {
			w.WriteString("...")
		}
	}
	w.WriteString(f.ExpandTrivia.Text)
	w.WriteByte(')')
}

func writeTraversalOperator(w *strings.Builder, op TraversalOperator) {
	switch v := op.(type) {
	case GetAttrOperator:
		w.WriteString(v.Decor.Prefix.Text)
		w.WriteByte('.')
		w.WriteString(string(v.Value))
	case LegacyIndexOperator:
		w.WriteString(v.Decor.Prefix.Text)
		w.WriteByte('.')
		w.WriteString(strconv.FormatUint(v.Value, 10))
	case AttrSplatOperator:
		w.WriteString(v.Decor.Prefix.Text)
		w.WriteString(".*")
	case FullSplatOperator:
		w.WriteString(v.Decor.Prefix.Text)
		w.WriteByte('[')
		w.WriteString(v.Decor.Suffix.Text)
		w.WriteByte('*')
		w.WriteString(v.StarSuffix.Text)
		w.WriteByte(']')
	case IndexOperator:
		w.WriteString(v.Decor.Prefix.Text)
		w.WriteByte('[')
		writeExpr(w, v.Expr)
		w.WriteByte(']')
	}
}

func writeTemplate(w *strings.Builder, t *Template) {
	if t == nil {
		return
	}
	for _, el := range t.Elements {
		writeElement(w, el)
	}
}

func writeElement(w *strings.Builder, el Element) {
	switch v := el.(type) {
	case *LiteralElement:
		w.WriteString(v.Value)
	case *InterpolationElement:
		w.WriteString("${")
		if v.StripStart {
			w.WriteByte('~')
		}
		writeExpr(w, v.Expr)
		if v.StripEnd {
			w.WriteByte('~')
		}
		w.WriteByte('}')
	case *IfDirective:
		w.WriteString("%{")
		if v.CondStripStart {
			w.WriteByte('~')
		}
		w.WriteString("if")
		writeExpr(w, v.Cond)
		if v.CondStripEnd {
			w.WriteByte('~')
		}
		w.WriteByte('}')
		writeTemplate(w, v.Then)
		if v.HasElse {
			w.WriteString("%{")
			if v.ElseStripStart {
				w.WriteByte('~')
			}
			w.WriteString("else")
			if v.ElseStripEnd {
				w.WriteByte('~')
			}
			w.WriteByte('}')
			writeTemplate(w, v.Else)
		}
		w.WriteString("%{")
		if v.EndifStripStart {
			w.WriteByte('~')
		}
		w.WriteString("endif")
		if v.EndifStripEnd {
			w.WriteByte('~')
		}
		w.WriteByte('}')
	case *ForDirective:
		w.WriteString("%{")
		if v.IntroStripStart {
			w.WriteByte('~')
		}
		w.WriteString("for")
		if v.KeyVar != nil {
			writeIdent(w, *v.KeyVar)
			w.WriteByte(',')
			writeIdent(w, v.ValueVar)
		} else {
			writeIdent(w, v.ValueVar)
		}
		w.WriteString("in")
		writeExpr(w, v.Collection)
		if v.IntroStripEnd {
			w.WriteByte('~')
		}
		w.WriteByte('}')
		writeTemplate(w, v.Body)
		w.WriteString("%{")
		if v.EndforStripStart {
			w.WriteByte('~')
		}
		w.WriteString("endfor")
		if v.EndforStripEnd {
			w.WriteByte('~')
		}
		w.WriteByte('}')
	}
}

func writeHeredoc(w *strings.Builder, h *HeredocTemplateExpr) {
	w.WriteString("<<")
	if h.Indented {
		w.WriteByte('-')
	}
	w.WriteString(h.Delimiter)
	w.WriteByte('\n')
	writeTemplate(w, h.Template)
	w.WriteString(h.ClosingIndent.Text)
	w.WriteString(h.Delimiter)
}

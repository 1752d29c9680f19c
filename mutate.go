package hcl

import "strconv"

// Tree mutation and constructor helpers. Generalized from the
// teacher's mutate.go (NewKeyValue/NewTable/NewString and
// Document/TableNode Append/InsertAt/Delete) to HCL's attribute/block
// shape: a new attribute or block is built fully decorated with
// standard one-space-around-'=' formatting so it renders sanely through
// Body.String (render.go).

// Append adds a structure to the end of the body.
func (b *Body) Append(st Structure) {
	b.Items = append(b.Items, st)
}

// InsertAt inserts a structure at position i in the body. A negative i
// inserts at the front; an i past the last item appends.
func (b *Body) InsertAt(i int, st Structure) {
	if i < 0 {
		i = 0
	}
	if i >= len(b.Items) {
		b.Items = append(b.Items, st)
		return
	}
	b.Items = append(b.Items[:i], append([]Structure{st}, b.Items[i:]...)...)
}

// RemoveAttribute removes the first attribute named name from the
// body. Reports whether anything was removed.
func (b *Body) RemoveAttribute(name string) bool {
	for i, st := range b.Items {
		if a, ok := st.(*Attribute); ok && string(a.Key.Value) == name {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveBlock removes the first block named typeName with the given
// labels from the body. Reports whether anything was removed.
func (b *Body) RemoveBlock(typeName string, labels ...string) bool {
	for i, st := range b.Items {
		if blk, ok := st.(*Block); ok && string(blk.Ident.Value) == typeName && blockLabelsEqual(blk, labels) {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return true
		}
	}
	return false
}

func ident(name string) Decorated[Ident] {
	d := Decorated[Ident]{Value: Ident(name)}
	d.Decor.Suffix = RawString{Text: " "}
	return d
}

// NewAttribute builds a new, already-decorated Attribute: "name = value\n".
func NewAttribute(name string, value Expression) *Attribute {
	setExprDecorPrefix(value, RawString{Text: " "})
	return &Attribute{Key: ident(name), Value: value, Trailing: RawString{Text: "\n"}}
}

// NewBlock builds a new, already-decorated multi-line Block: "name
// \"label\"... {\n}\n", with an empty body ready for Append/InsertAt.
func NewBlock(typeName string, labels ...string) *Block {
	blk := &Block{Ident: ident(typeName)}
	for _, l := range labels {
		d := Decorated[string]{Value: l}
		d.Decor.Suffix = RawString{Text: " "}
		blk.Labels = append(blk.Labels, StringBlockLabel{d})
	}
	blk.Body = &Body{Decor: Decor{Prefix: RawString{Text: "\n"}}}
	blk.Trailing = RawString{Text: "\n"}
	return blk
}

// NewStringExpr builds a plain quoted-string literal expression with
// no interpolation, escaping backslashes and quotes in value so the
// parser would recover it verbatim on a subsequent ParseExpression.
func NewStringExpr(value string) Expression {
	return &StringExpr{Decorated[string]{Value: escapeStringLiteral(value)}}
}

func escapeStringLiteral(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			out = append(out, '\\', '\\')
		case '"':
			out = append(out, '\\', '"')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// NewNumberExpr builds a number literal expression, rendering v with
// the shortest round-tripping decimal representation as its Repr.
func NewNumberExpr(v float64) Expression {
	text := formatNumber(v)
	return &NumberExpr{Formatted[Number]{Value: Number{f: v}, Repr: RawString{Text: text}}}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// NewBoolExpr builds a bool literal expression.
func NewBoolExpr(v bool) Expression {
	return &BoolExpr{Decorated[bool]{Value: v}}
}

// NewNullExpr builds a null literal expression.
func NewNullExpr() Expression {
	return &NullExpr{Decorated[Null]{}}
}

package hcl

// Mutable tree traversal. VisitMut is the Go analogue of the Rust
// original's VisitMut trait (original_source/.../visit_mut.rs): one
// hook per node kind, each overridable to customize or halt recursion,
// with a free VisitXMut function per hook doing the default recursion
// so an override can delegate back into it (mirroring the Rust
// example's `visit_expr_mut(self, expr)` call). Go has no trait
// default methods, so BaseVisitor supplies them instead: embed it and
// override only the hooks you need, the rest keep recursing.
//
// Where a node is held through an interface-typed slice element or
// field (Expression, Structure, BlockLabel, TraversalOperator,
// Element), the hook receives a pointer to that field so an override
// can replace the node outright, the way the Rust trait's `&'ast mut
// Expression` does.
type VisitMut interface {
	VisitIdentMut(node *Decorated[Ident])
	VisitNullMut(node *Decorated[Null])
	VisitBoolMut(node *Decorated[bool])
	VisitU64Mut(node *Decorated[uint64])
	VisitNumberMut(node *Formatted[Number])
	VisitStringMut(node *Decorated[string])
	VisitSplatMut(node *Decorated[Splat])
	VisitLiteralMut(node *Spanned[string])
	VisitUnaryOperatorMut(node *Spanned[UnaryOperator])
	VisitBinaryOperatorMut(node *Spanned[BinaryOperator])

	VisitBodyMut(node *Body)
	VisitStructureMut(node *Structure)
	VisitAttrMut(node *Attribute)
	VisitBlockMut(node *Block)
	VisitBlockLabelMut(node *BlockLabel)
	VisitOnelineBodyMut(node *OnelineBody)
	VisitExprMut(node *Expression)
	VisitArrayMut(node *ArrayExpr)
	VisitObjectMut(node *ObjectExpr)
	VisitObjectItemMut(item *ObjectItem)
	VisitParenthesisMut(node *ParenthesisExpr)
	VisitConditionalMut(node *ConditionalExpr)
	VisitUnaryOpMut(node *UnaryOpExpr)
	VisitBinaryOpMut(node *BinaryOpExpr)
	VisitTraversalMut(node *TraversalExpr)
	VisitTraversalOperatorMut(op *TraversalOperator)
	VisitFuncCallMut(node *FuncCallExpr)
	VisitForExprMut(node *ForExpr)
	VisitStringTemplateMut(node *TemplateExpr)
	VisitHeredocTemplateMut(node *HeredocTemplateExpr)
	VisitTemplateMut(node *Template)
	VisitElementMut(el *Element)
	VisitInterpolationMut(node *InterpolationElement)
	VisitIfDirectiveMut(node *IfDirective)
	VisitForDirectiveMut(node *ForDirective)
}

// BaseVisitor implements every VisitMut hook as the default recursion
// with no mutation of its own. Embed it in a custom visitor struct and
// override only the hooks you need.
type BaseVisitor struct{}

func (BaseVisitor) VisitIdentMut(node *Decorated[Ident])                   {}
func (BaseVisitor) VisitNullMut(node *Decorated[Null])                     {}
func (BaseVisitor) VisitBoolMut(node *Decorated[bool])                     {}
func (BaseVisitor) VisitU64Mut(node *Decorated[uint64])                    {}
func (BaseVisitor) VisitNumberMut(node *Formatted[Number])                 {}
func (BaseVisitor) VisitStringMut(node *Decorated[string])                 {}
func (BaseVisitor) VisitSplatMut(node *Decorated[Splat])                   {}
func (BaseVisitor) VisitLiteralMut(node *Spanned[string])                  {}
func (BaseVisitor) VisitUnaryOperatorMut(node *Spanned[UnaryOperator])     {}
func (BaseVisitor) VisitBinaryOperatorMut(node *Spanned[BinaryOperator])   {}

func (b BaseVisitor) VisitBodyMut(node *Body)                   { VisitBodyMut(b, node) }
func (b BaseVisitor) VisitStructureMut(node *Structure)          { VisitStructureMut(b, node) }
func (b BaseVisitor) VisitAttrMut(node *Attribute)               { VisitAttrMut(b, node) }
func (b BaseVisitor) VisitBlockMut(node *Block)                  { VisitBlockMut(b, node) }
func (b BaseVisitor) VisitBlockLabelMut(node *BlockLabel)        { VisitBlockLabelMut(b, node) }
func (b BaseVisitor) VisitOnelineBodyMut(node *OnelineBody)      { VisitOnelineBodyMut(b, node) }
func (b BaseVisitor) VisitExprMut(node *Expression)              { VisitExprMut(b, node) }
func (b BaseVisitor) VisitArrayMut(node *ArrayExpr)              { VisitArrayMut(b, node) }
func (b BaseVisitor) VisitObjectMut(node *ObjectExpr)            { VisitObjectMut(b, node) }
func (b BaseVisitor) VisitObjectItemMut(item *ObjectItem)        { VisitObjectItemMut(b, item) }
func (b BaseVisitor) VisitParenthesisMut(node *ParenthesisExpr)  { VisitParenthesisMut(b, node) }
func (b BaseVisitor) VisitConditionalMut(node *ConditionalExpr)  { VisitConditionalMut(b, node) }
func (b BaseVisitor) VisitUnaryOpMut(node *UnaryOpExpr)          { VisitUnaryOpMut(b, node) }
func (b BaseVisitor) VisitBinaryOpMut(node *BinaryOpExpr)        { VisitBinaryOpMut(b, node) }
func (b BaseVisitor) VisitTraversalMut(node *TraversalExpr)      { VisitTraversalMut(b, node) }
func (b BaseVisitor) VisitTraversalOperatorMut(op *TraversalOperator) {
	VisitTraversalOperatorMut(b, op)
}
func (b BaseVisitor) VisitFuncCallMut(node *FuncCallExpr) { VisitFuncCallMut(b, node) }
func (b BaseVisitor) VisitForExprMut(node *ForExpr)       { VisitForExprMut(b, node) }
func (b BaseVisitor) VisitStringTemplateMut(node *TemplateExpr) {
	VisitStringTemplateMut(b, node)
}
func (b BaseVisitor) VisitHeredocTemplateMut(node *HeredocTemplateExpr) {
	VisitHeredocTemplateMut(b, node)
}
func (b BaseVisitor) VisitTemplateMut(node *Template)             { VisitTemplateMut(b, node) }
func (b BaseVisitor) VisitElementMut(el *Element)                 { VisitElementMut(b, el) }
func (b BaseVisitor) VisitInterpolationMut(node *InterpolationElement) {
	VisitInterpolationMut(b, node)
}
func (b BaseVisitor) VisitIfDirectiveMut(node *IfDirective)   { VisitIfDirectiveMut(b, node) }
func (b BaseVisitor) VisitForDirectiveMut(node *ForDirective) { VisitForDirectiveMut(b, node) }

// --- default recursion, one function per non-leaf hook ---------------------

func VisitBodyMut(v VisitMut, node *Body) {
	for i := range node.Items {
		v.VisitStructureMut(&node.Items[i])
	}
}

func VisitStructureMut(v VisitMut, node *Structure) {
	switch (*node).(type) {
	case *Attribute:
		v.VisitAttrMut((*node).(*Attribute))
	case *Block:
		v.VisitBlockMut((*node).(*Block))
	}
}

func VisitAttrMut(v VisitMut, node *Attribute) {
	v.VisitIdentMut(&node.Key)
	v.VisitExprMut(&node.Value)
}

func VisitBlockMut(v VisitMut, node *Block) {
	v.VisitIdentMut(&node.Ident)
	for i := range node.Labels {
		v.VisitBlockLabelMut(&node.Labels[i])
	}
	if node.Body != nil {
		v.VisitBodyMut(node.Body)
	}
	if node.OnelineBody != nil {
		v.VisitOnelineBodyMut(node.OnelineBody)
	}
}

func VisitBlockLabelMut(v VisitMut, node *BlockLabel) {
	switch l := (*node).(type) {
	case StringBlockLabel:
		v.VisitStringMut(&l.Decorated)
		*node = l
	case IdentBlockLabel:
		v.VisitIdentMut(&l.Decorated)
		*node = l
	}
}

func VisitOnelineBodyMut(v VisitMut, node *OnelineBody) {
	if node.Attribute != nil {
		v.VisitAttrMut(node.Attribute)
	}
}

func VisitExprMut(v VisitMut, node *Expression) {
	switch e := (*node).(type) {
	case *NullExpr:
		v.VisitNullMut(&e.Decorated)
	case *BoolExpr:
		v.VisitBoolMut(&e.Decorated)
	case *NumberExpr:
		v.VisitNumberMut(&e.Formatted)
	case *StringExpr:
		v.VisitStringMut(&e.Decorated)
	case *TemplateExpr:
		v.VisitStringTemplateMut(e)
	case *HeredocTemplateExpr:
		v.VisitHeredocTemplateMut(e)
	case *VariableExpr:
		v.VisitIdentMut(&e.Decorated)
	case *ParenthesisExpr:
		v.VisitParenthesisMut(e)
	case *ArrayExpr:
		v.VisitArrayMut(e)
	case *ObjectExpr:
		v.VisitObjectMut(e)
	case *ForExpr:
		v.VisitForExprMut(e)
	case *ConditionalExpr:
		v.VisitConditionalMut(e)
	case *FuncCallExpr:
		v.VisitFuncCallMut(e)
	case *UnaryOpExpr:
		v.VisitUnaryOpMut(e)
	case *BinaryOpExpr:
		v.VisitBinaryOpMut(e)
	case *TraversalExpr:
		v.VisitTraversalMut(e)
	}
}

func VisitArrayMut(v VisitMut, node *ArrayExpr) {
	for i := range node.Items {
		v.VisitExprMut(&node.Items[i])
	}
}

func VisitObjectMut(v VisitMut, node *ObjectExpr) {
	for i := range node.Items {
		v.VisitObjectItemMut(&node.Items[i])
	}
}

func VisitObjectItemMut(v VisitMut, item *ObjectItem) {
	v.VisitExprMut(&item.Key)
	v.VisitExprMut(&item.Value)
}

func VisitParenthesisMut(v VisitMut, node *ParenthesisExpr) {
	v.VisitExprMut(&node.Inner)
}

func VisitConditionalMut(v VisitMut, node *ConditionalExpr) {
	v.VisitExprMut(&node.Cond)
	v.VisitExprMut(&node.TrueExpr)
	v.VisitExprMut(&node.FalseExpr)
}

func VisitUnaryOpMut(v VisitMut, node *UnaryOpExpr) {
	v.VisitUnaryOperatorMut(&node.Operator)
	v.VisitExprMut(&node.Operand)
}

func VisitBinaryOpMut(v VisitMut, node *BinaryOpExpr) {
	v.VisitExprMut(&node.LHS)
	v.VisitBinaryOperatorMut(&node.Operator)
	v.VisitExprMut(&node.RHS)
}

func VisitTraversalMut(v VisitMut, node *TraversalExpr) {
	v.VisitExprMut(&node.Expr)
	for i := range node.Operators {
		v.VisitTraversalOperatorMut(&node.Operators[i])
	}
}

func VisitTraversalOperatorMut(v VisitMut, op *TraversalOperator) {
	switch o := (*op).(type) {
	case GetAttrOperator:
		v.VisitIdentMut(&o.Decorated)
		*op = o
	case LegacyIndexOperator:
		v.VisitU64Mut(&o.Decorated)
		*op = o
	case AttrSplatOperator:
		v.VisitSplatMut(&o.Decorated)
		*op = o
	case FullSplatOperator:
		// no child node: the splat marker carries no value worth a hook
	case IndexOperator:
		v.VisitExprMut(&o.Expr)
		*op = o
	}
}

func VisitFuncCallMut(v VisitMut, node *FuncCallExpr) {
	v.VisitIdentMut(&node.Name)
	for i := range node.Args {
		v.VisitExprMut(&node.Args[i])
	}
}

func VisitForExprMut(v VisitMut, node *ForExpr) {
	if node.KeyVar != nil {
		v.VisitIdentMut(node.KeyVar)
	}
	v.VisitIdentMut(&node.ValueVar)
	v.VisitExprMut(&node.Collection)
	if node.KeyExpr != nil {
		v.VisitExprMut(&node.KeyExpr)
	}
	v.VisitExprMut(&node.ValueExpr)
	if node.Cond != nil {
		v.VisitExprMut(&node.Cond)
	}
}

func VisitStringTemplateMut(v VisitMut, node *TemplateExpr) {
	v.VisitTemplateMut(node.Template)
}

func VisitHeredocTemplateMut(v VisitMut, node *HeredocTemplateExpr) {
	v.VisitTemplateMut(node.Template)
}

func VisitTemplateMut(v VisitMut, node *Template) {
	for i := range node.Elements {
		v.VisitElementMut(&node.Elements[i])
	}
}

func VisitElementMut(v VisitMut, el *Element) {
	switch e := (*el).(type) {
	case *LiteralElement:
		v.VisitLiteralMut(&e.Spanned)
	case *InterpolationElement:
		v.VisitInterpolationMut(e)
	case *IfDirective:
		v.VisitIfDirectiveMut(e)
	case *ForDirective:
		v.VisitForDirectiveMut(e)
	}
}

func VisitInterpolationMut(v VisitMut, node *InterpolationElement) {
	v.VisitExprMut(&node.Expr)
}

func VisitIfDirectiveMut(v VisitMut, node *IfDirective) {
	v.VisitExprMut(&node.Cond)
	v.VisitTemplateMut(node.Then)
	if node.HasElse {
		v.VisitTemplateMut(node.Else)
	}
}

func VisitForDirectiveMut(v VisitMut, node *ForDirective) {
	if node.KeyVar != nil {
		v.VisitIdentMut(node.KeyVar)
	}
	v.VisitIdentMut(&node.ValueVar)
	v.VisitExprMut(&node.Collection)
	v.VisitTemplateMut(node.Body)
}

package hcl

// Tree query helpers: find an attribute by name or a block by type
// name (and optional labels) within a Body, and walk the whole tree
// read-only. Generalized from the teacher's dotted-path Document.Get/
// Document.Table (query.go): HCL has no dotted-path addressing across
// bodies the way TOML tables do, so lookups here are a single name (and
// for blocks, a label tuple) rather than a path split on '.'.

// GetAttribute returns the first top-level attribute named name, or
// nil if none exists.
func (b *Body) GetAttribute(name string) *Attribute {
	for _, st := range b.Items {
		if a, ok := st.(*Attribute); ok && string(a.Key.Value) == name {
			return a
		}
	}
	return nil
}

// Attributes returns every top-level attribute named name, in order.
func (b *Body) Attributes(name string) []*Attribute {
	var out []*Attribute
	for _, st := range b.Items {
		if a, ok := st.(*Attribute); ok && string(a.Key.Value) == name {
			out = append(out, a)
		}
	}
	return out
}

// FirstBlock returns the first top-level block named typeName whose
// labels equal labels exactly, or nil if none matches. Pass no labels
// to match any block of that type regardless of its own labels only
// when the block itself also has none; use Blocks to match by type
// alone.
func (b *Body) FirstBlock(typeName string, labels ...string) *Block {
	for _, st := range b.Items {
		if blk, ok := st.(*Block); ok && string(blk.Ident.Value) == typeName && blockLabelsEqual(blk, labels) {
			return blk
		}
	}
	return nil
}

// Blocks returns every top-level block named typeName, regardless of
// labels, in order.
func (b *Body) Blocks(typeName string) []*Block {
	var out []*Block
	for _, st := range b.Items {
		if blk, ok := st.(*Block); ok && string(blk.Ident.Value) == typeName {
			out = append(out, blk)
		}
	}
	return out
}

func blockLabelsEqual(blk *Block, labels []string) bool {
	if len(blk.Labels) != len(labels) {
		return false
	}
	for i, l := range blk.Labels {
		if blockLabelText(l) != labels[i] {
			return false
		}
	}
	return true
}

func blockLabelText(l BlockLabel) string {
	switch v := l.(type) {
	case StringBlockLabel:
		return v.Value
	case IdentBlockLabel:
		return string(v.Value)
	}
	return ""
}

// Walk visits every Attribute and Block in the body, depth-first and
// pre-order (a block is visited before its own body's items), calling
// visit for each. Walk stops and returns false as soon as visit
// returns false, propagating the stop outward.
func (b *Body) Walk(visit func(Structure) bool) bool {
	for _, st := range b.Items {
		if !visit(st) {
			return false
		}
		if blk, ok := st.(*Block); ok && blk.Body != nil {
			if !blk.Body.Walk(visit) {
				return false
			}
		}
		if blk, ok := st.(*Block); ok && blk.OnelineBody != nil && blk.OnelineBody.Attribute != nil {
			if !visit(blk.OnelineBody.Attribute) {
				return false
			}
		}
	}
	return true
}

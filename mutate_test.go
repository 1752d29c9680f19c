package hcl

import "testing"

func TestNewStringExpr(t *testing.T) {
	e := NewStringExpr("hello world")
	s := e.(*StringExpr)
	if s.Value != "hello world" {
		t.Fatalf("expected 'hello world', got %q", s.Value)
	}
}

func TestNewStringExpr_Escapes(t *testing.T) {
	e := NewStringExpr("line1\nline2")
	s := e.(*StringExpr)
	if s.Value != `line1\nline2` {
		t.Fatalf("expected escaped newline, got %q", s.Value)
	}
}

func TestNewStringExpr_QuotesInValue(t *testing.T) {
	e := NewStringExpr(`say "hello"`)
	s := e.(*StringExpr)
	if s.Value != `say \"hello\"` {
		t.Fatalf("unexpected value: %q", s.Value)
	}
}

func TestNewNumberExpr(t *testing.T) {
	e := NewNumberExpr(42)
	n := e.(*NumberExpr)
	if n.Repr.Text != "42" {
		t.Fatalf("expected '42', got %q", n.Repr.Text)
	}
}

func TestNewNumberExpr_Negative(t *testing.T) {
	e := NewNumberExpr(-100)
	n := e.(*NumberExpr)
	if n.Repr.Text != "-100" {
		t.Fatalf("expected '-100', got %q", n.Repr.Text)
	}
}

func TestNewBoolExpr(t *testing.T) {
	e := NewBoolExpr(true)
	b := e.(*BoolExpr)
	if b.Value != true {
		t.Fatal("expected true")
	}
}

func TestNewNullExpr(t *testing.T) {
	e := NewNullExpr()
	if _, ok := e.(*NullExpr); !ok {
		t.Fatalf("expected *NullExpr, got %T", e)
	}
}

func TestBody_Append(t *testing.T) {
	b, err := ParseBody("a = 1\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	b.Append(NewAttribute("b", NewNumberExpr(2)))
	if len(b.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(b.Items))
	}
	attr, ok := b.Items[1].(*Attribute)
	if !ok {
		t.Fatalf("expected *Attribute, got %T", b.Items[1])
	}
	if string(attr.Key.Value) != "b" {
		t.Fatalf("expected key 'b', got %q", attr.Key.Value)
	}
}

func TestBody_InsertAt(t *testing.T) {
	b, err := ParseBody("a = 1\nc = 3\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	b.InsertAt(1, NewAttribute("b", NewNumberExpr(2)))
	if len(b.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(b.Items))
	}
	attr, ok := b.Items[1].(*Attribute)
	if !ok || string(attr.Key.Value) != "b" {
		t.Fatalf("expected 'b' at index 1, got %v", b.Items[1])
	}
}

func TestBody_InsertAt_OutOfRange(t *testing.T) {
	b, err := ParseBody("a = 1\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	b.InsertAt(99, NewAttribute("b", NewNumberExpr(2)))
	if len(b.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(b.Items))
	}
}

func TestBody_RemoveAttribute(t *testing.T) {
	b, err := ParseBody("a = 1\nb = 2\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !b.RemoveAttribute("a") {
		t.Fatal("expected RemoveAttribute to report true")
	}
	if b.GetAttribute("a") != nil {
		t.Fatal("expected 'a' to be removed")
	}
	if b.GetAttribute("b") == nil {
		t.Fatal("expected 'b' to remain")
	}
}

func TestBody_RemoveAttribute_Nonexistent(t *testing.T) {
	b, err := ParseBody("a = 1\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if b.RemoveAttribute("missing") {
		t.Fatal("expected RemoveAttribute to report false for nonexistent key")
	}
}

func TestBody_RemoveBlock(t *testing.T) {
	b, err := ParseBody("resource \"a\" \"x\" {\n}\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !b.RemoveBlock("resource", "a", "x") {
		t.Fatal("expected RemoveBlock to report true")
	}
	if b.FirstBlock("resource", "a", "x") != nil {
		t.Fatal("expected block to be removed")
	}
}

func TestNewBlock(t *testing.T) {
	blk := NewBlock("resource", "aws_instance", "web")
	if string(blk.Ident.Value) != "resource" {
		t.Fatalf("expected ident 'resource', got %q", blk.Ident.Value)
	}
	if len(blk.Labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(blk.Labels))
	}
	if blk.Body == nil {
		t.Fatal("expected a non-nil empty body ready for Append")
	}
	blk.Body.Append(NewAttribute("ami", NewStringExpr("abc")))
	if blk.Body.GetAttribute("ami") == nil {
		t.Fatal("expected appended attribute to be retrievable")
	}
}

package hcl

import "testing"

func TestBody_GetAttribute(t *testing.T) {
	b, err := ParseBody("name = \"alice\"\nage = 30\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	a := b.GetAttribute("name")
	if a == nil {
		t.Fatal("expected to find attribute 'name'")
	}
	s, ok := a.Value.(*StringExpr)
	if !ok {
		t.Fatalf("expected StringExpr, got %T", a.Value)
	}
	if s.Value != "alice" {
		t.Fatalf("expected 'alice', got %q", s.Value)
	}
}

func TestBody_GetAttribute_Nonexistent(t *testing.T) {
	b, err := ParseBody("key = 1\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if b.GetAttribute("missing") != nil {
		t.Fatal("expected nil for nonexistent attribute")
	}
}

func TestBody_Attributes_Multiple(t *testing.T) {
	b, err := ParseBody("env {\n  FOO = 1\n}\nfoo = 1\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	// Top-level only matches the top-level "foo", not the nested block's FOO.
	got := b.Attributes("foo")
	if len(got) != 1 {
		t.Fatalf("expected 1 top-level attribute named foo, got %d", len(got))
	}
}

func TestBody_FirstBlock(t *testing.T) {
	b, err := ParseBody("resource \"aws_instance\" \"web\" {\n  ami = \"abc\"\n}\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	blk := b.FirstBlock("resource", "aws_instance", "web")
	if blk == nil {
		t.Fatal("expected to find block resource \"aws_instance\" \"web\"")
	}
	if blk.Body.GetAttribute("ami") == nil {
		t.Fatal("expected to find nested attribute 'ami'")
	}
}

func TestBody_FirstBlock_LabelMismatch(t *testing.T) {
	b, err := ParseBody("resource \"aws_instance\" \"web\" {\n}\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if b.FirstBlock("resource", "aws_instance", "db") != nil {
		t.Fatal("expected nil for mismatched labels")
	}
}

func TestBody_Blocks(t *testing.T) {
	b, err := ParseBody("resource \"a\" \"x\" {\n}\nresource \"b\" \"y\" {\n}\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	blocks := b.Blocks("resource")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestBody_Walk(t *testing.T) {
	b, err := ParseBody("outer {\n  inner {\n    x = 1\n  }\n}\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var names []string
	b.Walk(func(st Structure) bool {
		switch v := st.(type) {
		case *Block:
			names = append(names, string(v.Ident.Value))
		case *Attribute:
			names = append(names, string(v.Key.Value))
		}
		return true
	})
	want := []string{"outer", "inner", "x"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestBody_Walk_StopsEarly(t *testing.T) {
	b, err := ParseBody("a = 1\nb = 2\nc = 3\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var visited int
	b.Walk(func(st Structure) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("expected walk to stop after 2 visits, got %d", visited)
	}
}

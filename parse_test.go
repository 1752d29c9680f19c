package hcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty body", "", false},
		{"simple attribute", `key = "value"`, false},
		{"nested block", "a {\n  b {\n    c = 1\n  }\n}\n", false},
		{"redefined attribute", "a = 1\na = 2\n", true},
		{"missing equals", "a 1\n", true},
		{"unterminated string", "a = \"abc\n", true},
		{"unterminated heredoc", "a = <<EOT\nabc\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBody(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBody() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got == nil {
				t.Errorf("ParseBody() returned nil body")
			}
		})
	}
}

func TestParseBody_InvalidUTF8(t *testing.T) {
	_, err := ParseBody("a = \"\xff\"\n")
	if err == nil {
		t.Fatal("expected an error for invalid UTF-8")
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"number", "42", false},
		{"string", `"hello"`, false},
		{"array", "[1, 2, 3]", false},
		{"function call", "max(1, 2)", false},
		{"unterminated array", "[1, 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpression(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseExpression() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got == nil {
				t.Errorf("ParseExpression() returned nil expression")
			}
		})
	}
}

// attrSummary is a projection of an Attribute used to compare parsed
// trees without Span/Decor noise obscuring the diff.
type attrSummary struct {
	Key   string
	Value any
}

func summarizeValue(e Expression) any {
	switch v := e.(type) {
	case *NumberExpr:
		return v.Repr.Text
	case *StringExpr:
		return v.Value
	case *BoolExpr:
		return v.Value
	case *ArrayExpr:
		items := make([]any, len(v.Items))
		for i, it := range v.Items {
			items[i] = summarizeValue(it)
		}
		return items
	default:
		return nil
	}
}

func summarizeBody(b *Body) []attrSummary {
	var out []attrSummary
	for _, st := range b.Items {
		if a, ok := st.(*Attribute); ok {
			out = append(out, attrSummary{Key: string(a.Key.Value), Value: summarizeValue(a.Value)})
		}
	}
	return out
}

func TestParseBody_Structure(t *testing.T) {
	body, err := ParseBody("name = \"alice\"\nage = 30\nactive = true\ntags = [\"a\", \"b\"]\n")
	if err != nil {
		t.Fatalf("ParseBody() error = %v", err)
	}

	want := []attrSummary{
		{Key: "name", Value: "alice"},
		{Key: "age", Value: "30"},
		{Key: "active", Value: true},
		{Key: "tags", Value: []any{"a", "b"}},
	}
	got := summarizeBody(body)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsed attribute summary mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBody_RedefinedAttributeError(t *testing.T) {
	_, err := ParseBody("a = 1\na = 2\n")
	if err == nil {
		t.Fatal("expected an error for a redefined top-level attribute")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Message == "" {
		t.Fatal("expected a non-empty error message")
	}
}

package hcl

import "testing"

func TestStringExpr_Unescape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no escapes", `hello`, "hello", false},
		{"basic escapes", `a\nb\tc\"d`, "a\nb\tc\"d", false},
		{"escaped backslash", `a\\b`, `a\b`, false},
		{"escaped slash", `a\/b`, "a/b", false},
		{"unicode fixed width escape", `\u00e9`, "é", false},
		{"unicode braced escape", `\u{1F600}`, "\U0001F600", false},
		{"trailing backslash", `abc\`, "", true},
		{"invalid escape", `\q`, "", true},
		{"unterminated braced unicode", `\u{41`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseExpression(`"` + tt.input + `"`)
			if err != nil {
				t.Fatalf("ParseExpression() error = %v", err)
			}
			s, ok := expr.(*StringExpr)
			if !ok {
				t.Fatalf("ParseExpression() returned %T, want *StringExpr", expr)
			}
			got, err := s.Unescape()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unescape() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unescape() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLiteralElement_Unescape_TemplateMarkers(t *testing.T) {
	expr, err := ParseExpression(`"price: $${cents} and %%{percent}"`)
	if err != nil {
		t.Fatalf("ParseExpression() error = %v", err)
	}
	tmpl, ok := expr.(*TemplateExpr)
	if !ok {
		t.Fatalf("ParseExpression() returned %T, want *TemplateExpr", expr)
	}
	if len(tmpl.Template.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(tmpl.Template.Elements))
	}
	lit, ok := tmpl.Template.Elements[0].(*LiteralElement)
	if !ok {
		t.Fatalf("element is %T, want *LiteralElement", tmpl.Template.Elements[0])
	}
	got, err := lit.Unescape()
	if err != nil {
		t.Fatalf("Unescape() error = %v", err)
	}
	want := "price: ${cents} and %{percent}"
	if got != want {
		t.Errorf("Unescape() = %q, want %q", got, want)
	}
}

package hcl

import "testing"

// TestRoundTrip checks the lossless-cover invariant operationally:
// parsing then rendering a body must reproduce the input byte for
// byte, for inputs exercising every trivia-bearing construct in the
// grammar.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty body", ""},
		{"single attribute", `foo = "bar"`},
		{"attribute with comment", "foo = 1 # trailing\n"},
		{"attribute with slash comment", "foo = 1 // trailing\n"},
		{"blank lines and comments", "# leading\n\nfoo = 1\n\n# between\nbar = 2\n"},
		{"block with labels", "resource \"aws_instance\" \"web\" {\n  ami = \"abc\"\n}\n"},
		{"oneline block body", `foo "bar" { baz = 1 }` + "\n"},
		{"empty block", "foo {}\n"},
		{"nested blocks", "outer {\n  inner {\n    x = 1\n  }\n}\n"},
		{"array literal", "foo = [1, 2, 3]\n"},
		{"array trailing comma", "foo = [1, 2, 3, ]\n"},
		{"empty array", "foo = [ ]\n"},
		{"empty array no space", "foo = []\n"},
		{"object literal", `foo = { a = 1, b = 2 }` + "\n"},
		{"empty object", "foo = { }\n"},
		{"object newline terminator", "foo = {\n  a = 1\n  b = 2\n}\n"},
		{"for array comprehension", "foo = [for x in y : x]\n"},
		{"for array comprehension leading space", "foo = [ for x in y : x]\n"},
		{"for object comprehension key value", "foo = {for k, v in y : k => v}\n"},
		{"for comprehension with condition", "foo = [for x in y : x if x > 1]\n"},
		{"function call", "foo = max(1, 2, 3)\n"},
		{"function call expand", "foo = max(list...)\n"},
		{"function call expand trailing ws", "foo = max(list ...  )\n"},
		{"traversal chain", "foo = a.b.c\n"},
		{"legacy index traversal", "foo = a.0.b\n"},
		{"splat traversal", "foo = a.*.b\n"},
		{"full splat traversal", "foo = a[*].b\n"},
		{"index traversal", `foo = a["key"]` + "\n"},
		{"conditional expression", "foo = a ? b : c\n"},
		{"binary expression", "foo = 1 + 2 * 3\n"},
		{"unary negation", "foo = -1\n"},
		{"unary not", "foo = !a\n"},
		{"parenthesized expression", "foo = (1 + 2)\n"},
		{"quoted string template", `foo = "hello ${name}"` + "\n"},
		{"heredoc", "foo = <<EOT\nhello\nEOT\n"},
		{"indented heredoc", "foo = <<-EOT\n  hello\n  EOT\n"},
		{"if directive template", `foo = "%{if x}a%{else}b%{endif}"` + "\n"},
		{"for directive template", `foo = "%{for k, v in y}${v}%{endfor}"` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := ParseBody(tt.input)
			if err != nil {
				t.Fatalf("ParseBody() error = %v", err)
			}
			got := body.String()
			if got != tt.input {
				t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, tt.input)
			}
		})
	}
}

// TestRoundTripIdempotent checks that rendering twice in a row is
// stable: String() must be a pure function of the despanned tree, not
// of anything mutated by a prior call.
func TestRoundTripIdempotent(t *testing.T) {
	input := "resource \"aws_instance\" \"web\" {\n  ami = \"abc\" # note\n  count = [1, 2, ]\n}\n"
	body, err := ParseBody(input)
	if err != nil {
		t.Fatalf("ParseBody() error = %v", err)
	}
	first := body.String()
	second := body.String()
	if first != second {
		t.Errorf("String() not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
	if first != input {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", first, input)
	}
}

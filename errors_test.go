package hcl

import "testing"

func TestParseError_WithContext(t *testing.T) {
	e := newParseError([]byte("x"), 0, "boom", "thing")
	e.Context = []string{"innermost"}

	chained := e.WithContext("outer")

	if got, want := chained.Context, []string{"innermost", "outer"}; !stringSlicesEqual(got, want) {
		t.Errorf("Context = %v, want %v", got, want)
	}
	if e.Context[len(e.Context)-1] != "innermost" {
		t.Errorf("WithContext mutated the receiver's Context")
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestParseBody_ContextChain checks that an error raised several
// productions deep accumulates one Context entry per recursive-descent
// boundary it unwinds through, innermost first.
func TestParseBody_ContextChain(t *testing.T) {
	_, err := ParseBody("a {\n  b = [1, max(2, 3]\n}\n")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if len(perr.Context) < 3 {
		t.Errorf("Context = %v, want at least 3 entries for a nested failure", perr.Context)
	}
}

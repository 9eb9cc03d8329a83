package expr

import "testing"

func TestParsePrecedence(t *testing.T) {
	e, err := Parse("a and b or c")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if e.Kind != KindOr {
		t.Fatalf("expected top-level or, got %v", e.Kind)
	}
	if e.Children[0].Kind != KindAnd {
		t.Fatalf("expected left child to be and, got %v", e.Children[0].Kind)
	}
}

func TestParseImplicationIsRightAssociative(t *testing.T) {
	e, err := Parse("a -> b -> c")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if e.Kind != KindImplies {
		t.Fatalf("expected implies at top, got %v", e.Kind)
	}
	if e.Children[1].Kind != KindImplies {
		t.Fatalf("expected right-associative nesting, got %v", e.Children[1].Kind)
	}
}

func TestParseParentheses(t *testing.T) {
	e, err := Parse("(a or b) and c")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if e.Kind != KindAnd || e.Children[0].Kind != KindOr {
		t.Fatalf("parentheses did not override precedence: %s", e)
	}
}

func TestParseUnaryBindsTighterThanBinary(t *testing.T) {
	e, err := Parse("!a and b")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if e.Kind != KindAnd || e.Children[0].Kind != KindNot {
		t.Fatalf("expected not to bind to a alone, got %s", e)
	}
}

func TestParseTrailingGarbageIsAnError(t *testing.T) {
	if _, err := Parse("a and b )"); err == nil {
		t.Fatalf("expected an error for unconsumed input")
	}
}

func TestParseMismatchedParenIsAnError(t *testing.T) {
	if _, err := Parse("(a and b"); err == nil {
		t.Fatalf("expected an error for an unclosed paren")
	}
}

func TestEvalMatchesExpectedTruthTable(t *testing.T) {
	e, err := Parse("a and (b or !c)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cases := []struct {
		a, b, c bool
		want    bool
	}{
		{true, true, true, true},
		{true, false, true, false},
		{true, false, false, true},
		{false, true, true, false},
	}
	for _, cs := range cases {
		got := e.Eval(map[string]bool{"a": cs.a, "b": cs.b, "c": cs.c})
		if got != cs.want {
			t.Fatalf("eval(a=%v,b=%v,c=%v) = %v, want %v", cs.a, cs.b, cs.c, got, cs.want)
		}
	}
}

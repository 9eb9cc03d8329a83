package expr

import "testing"

func TestLexBasicOperators(t *testing.T) {
	toks := NewLexer("a and !b -> c <-> d").Lex()
	want := []TokenType{TokenVariable, TokenAnd, TokenNot, TokenVariable, TokenImplies, TokenVariable, TokenIff, TokenVariable, TokenEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLexSymbolicOperators(t *testing.T) {
	toks := NewLexer("¬a ∧ b ∨ c ⊕ d → e ↔ f").Lex()
	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	want := []TokenType{TokenNot, TokenVariable, TokenAnd, TokenVariable, TokenOr, TokenVariable, TokenXor, TokenVariable, TokenImplies, TokenVariable, TokenIff, TokenVariable, TokenEOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(kinds), len(want))
	}
	for i, tt := range want {
		if kinds[i] != tt {
			t.Fatalf("token %d: got %s, want %s", i, kinds[i], tt)
		}
	}
}

func TestLexConstants(t *testing.T) {
	toks := NewLexer("true and false").Lex()
	if toks[0].Type != TokenConstant || toks[2].Type != TokenConstant {
		t.Fatalf("expected constant tokens, got %v", toks)
	}
}

func TestLexUnknownCharacterProducesErrorToken(t *testing.T) {
	toks := NewLexer("a % b").Lex()
	found := false
	for _, tok := range toks {
		if tok.Type == TokenError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error token for unrecognized character")
	}
}

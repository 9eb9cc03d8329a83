package expr

import (
	"fmt"

	"github.com/xDarkicex/satcore/core"
)

// Parser is a recursive-descent parser over a token stream, binding
// operators from loosest to tightest: iff, implies, or/nor, xor, and/nand,
// not, primary.
type Parser struct {
	tokens   []Token
	position int
}

// NewParser returns a Parser over tokens (as produced by Lexer.Lex).
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a full expression and returns it, or a *core.Error if the
// token stream is malformed or left unconsumed input behind.
func Parse(input string) (*Expr, error) {
	tokens := NewLexer(input).Lex()
	for _, tok := range tokens {
		if tok.Type == TokenError {
			return nil, core.NewPositionalError("expr", "lex", fmt.Sprintf("unexpected character %q", tok.Value), tok.Position)
		}
	}
	p := NewParser(tokens)
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, core.NewPositionalError("expr", "parse", fmt.Sprintf("unexpected token %q", p.current().Value), p.current().Position)
	}
	return e, nil
}

func (p *Parser) current() Token {
	if p.position >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.position]
}

func (p *Parser) advance() Token {
	tok := p.current()
	if p.position < len(p.tokens) {
		p.position++
	}
	return tok
}

func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.current()
	if tok.Type != tt {
		return tok, core.NewPositionalError("expr", "parse", fmt.Sprintf("expected %s, got %q", tt, tok.Value), tok.Position)
	}
	return p.advance(), nil
}

func (p *Parser) parseExpression() (*Expr, error) {
	return p.parseIff()
}

func (p *Parser) parseIff() (*Expr, error) {
	left, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenIff {
		p.advance()
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		left = Iff(left, right)
	}
	return left, nil
}

func (p *Parser) parseImplication() (*Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current().Type == TokenImplies {
		p.advance()
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		return Implies(left, right), nil
	}
	return left, nil
}

func (p *Parser) parseOr() (*Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenOr || p.current().Type == TokenNor {
		nor := p.current().Type == TokenNor
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		if nor {
			left = Nor(left, right)
		} else {
			left = Or(left, right)
		}
	}
	return left, nil
}

func (p *Parser) parseXor() (*Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenXor {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Xor(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (*Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenAnd || p.current().Type == TokenNand {
		nand := p.current().Type == TokenNand
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if nand {
			left = Nand(left, right)
		} else {
			left = And(left, right)
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (*Expr, error) {
	if p.current().Type == TokenNot {
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(child), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*Expr, error) {
	tok := p.current()
	switch tok.Type {
	case TokenVariable:
		p.advance()
		return Var(tok.Value), nil
	case TokenConstant:
		p.advance()
		return Const(isTrueLiteral(tok.Value)), nil
	case TokenLeftParen:
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, core.NewPositionalError("expr", "parse", fmt.Sprintf("unexpected token %q", tok.Value), tok.Position)
	}
}

func isTrueLiteral(value string) bool {
	switch value {
	case "true", "True", "TRUE", "t", "T", "1":
		return true
	default:
		return false
	}
}

package cnf

import "fmt"

// Literal is a variable or its negation. Two literals compare equal when
// both their Variable and Neg fields match, which makes Literal usable
// directly as a map key.
type Literal struct {
	Var Variable
	Neg bool
}

// Pos builds the positive literal for v.
func Pos(v Variable) Literal {
	return Literal{Var: v}
}

// Neg builds the negative literal for v.
func Neg(v Variable) Literal {
	return Literal{Var: v, Neg: true}
}

// IsNegated reports whether the literal is the negative occurrence of its
// variable.
func (l Literal) IsNegated() bool {
	return l.Neg
}

// Negated returns a copy of l with polarity flipped.
func (l Literal) Negated() Literal {
	return Literal{Var: l.Var, Neg: !l.Neg}
}

// Negate flips l's polarity in place.
func (l *Literal) Negate() {
	l.Neg = !l.Neg
}

// MakingTruth is the Truth that must be assigned to l's variable for l to
// be satisfied: True for a positive literal, False for a negative one.
func (l Literal) MakingTruth() Truth {
	return FromBool(!l.Neg)
}

func (l Literal) String() string {
	if l.Neg {
		return fmt.Sprintf("¬%s", l.Var)
	}
	return string(l.Var)
}

// Less gives literals a total order: by Variable, then positive before
// negative. Used wherever iteration order must be deterministic, including
// the most_occurred_literal tie-break.
func (l Literal) Less(other Literal) bool {
	if l.Var != other.Var {
		return l.Var < other.Var
	}
	return !l.Neg && other.Neg
}

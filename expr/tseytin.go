package expr

import (
	"fmt"

	"github.com/xDarkicex/satcore/cnf"
)

// tseytin carries the fresh-variable counter across a single transformation.
type tseytin struct {
	next    int
	clauses []*cnf.Clause
}

func (t *tseytin) fresh() cnf.Variable {
	v := cnf.Variable(fmt.Sprintf("x_%d", t.next))
	t.next++
	return v
}

func (t *tseytin) emit(lits ...cnf.Literal) {
	t.clauses = append(t.clauses, cnf.NewClause(lits...))
}

// ToCNF applies the Tseytin transformation to e: every subexpression other
// than a variable (which stands for itself) gets its own fresh auxiliary
// variable x_<n> constrained to be equivalent to
// that subexpression, and the returned CNF additionally asserts the
// variable standing for the whole of e. The result is equisatisfiable
// with e, not logically equivalent to it, by construction.
func ToCNF(e *Expr) *cnf.CNF {
	t := &tseytin{}
	top := t.convert(e)
	t.emit(cnf.Pos(top))
	return cnf.FromClauses(t.clauses)
}

// convert returns the variable equivalent to subexpression e, emitting the
// clauses that constrain it along the way.
func (t *tseytin) convert(e *Expr) cnf.Variable {
	switch e.Kind {
	case KindVariable:
		return cnf.Variable(e.Name)
	case KindConstant:
		v := t.fresh()
		if e.Value {
			t.emit(cnf.Pos(v))
		} else {
			t.emit(cnf.Neg(v))
		}
		return v
	case KindNot:
		a := t.convert(e.Children[0])
		v := t.fresh()
		// v <-> !a
		t.emit(cnf.Neg(v), cnf.Neg(a))
		t.emit(cnf.Pos(v), cnf.Pos(a))
		return v
	case KindAnd:
		return t.convertAnd(e, false)
	case KindNand:
		return t.convertAnd(e, true)
	case KindOr:
		return t.convertOr(e, false)
	case KindNor:
		return t.convertOr(e, true)
	case KindXor:
		return t.convertXor(e, false)
	case KindIff:
		return t.convertXor(e, true)
	case KindImplies:
		return t.convertImplies(e)
	default:
		panic(fmt.Sprintf("expr: unhandled node kind %v in Tseytin transform", e.Kind))
	}
}

// convertAnd introduces v <-> (a & b), or v <-> !(a & b) when negate is set.
func (t *tseytin) convertAnd(e *Expr, negate bool) cnf.Variable {
	a := t.convert(e.Children[0])
	b := t.convert(e.Children[1])
	v := t.fresh()
	if !negate {
		t.emit(cnf.Neg(v), cnf.Pos(a))
		t.emit(cnf.Neg(v), cnf.Pos(b))
		t.emit(cnf.Pos(v), cnf.Neg(a), cnf.Neg(b))
	} else {
		t.emit(cnf.Pos(v), cnf.Pos(a))
		t.emit(cnf.Pos(v), cnf.Pos(b))
		t.emit(cnf.Neg(v), cnf.Neg(a), cnf.Neg(b))
	}
	return v
}

// convertOr introduces v <-> (a | b), or v <-> !(a | b) when negate is set.
func (t *tseytin) convertOr(e *Expr, negate bool) cnf.Variable {
	a := t.convert(e.Children[0])
	b := t.convert(e.Children[1])
	v := t.fresh()
	if !negate {
		t.emit(cnf.Pos(v), cnf.Neg(a))
		t.emit(cnf.Pos(v), cnf.Neg(b))
		t.emit(cnf.Neg(v), cnf.Pos(a), cnf.Pos(b))
	} else {
		t.emit(cnf.Neg(v), cnf.Neg(a))
		t.emit(cnf.Neg(v), cnf.Neg(b))
		t.emit(cnf.Pos(v), cnf.Pos(a), cnf.Pos(b))
	}
	return v
}

// convertXor introduces v <-> (a xor b), or v <-> (a iff b) when iff is set
// (iff is xor's negation).
func (t *tseytin) convertXor(e *Expr, iff bool) cnf.Variable {
	a := t.convert(e.Children[0])
	b := t.convert(e.Children[1])
	v := t.fresh()
	if !iff {
		t.emit(cnf.Neg(v), cnf.Neg(a), cnf.Neg(b))
		t.emit(cnf.Neg(v), cnf.Pos(a), cnf.Pos(b))
		t.emit(cnf.Pos(v), cnf.Neg(a), cnf.Pos(b))
		t.emit(cnf.Pos(v), cnf.Pos(a), cnf.Neg(b))
	} else {
		t.emit(cnf.Pos(v), cnf.Neg(a), cnf.Neg(b))
		t.emit(cnf.Pos(v), cnf.Pos(a), cnf.Pos(b))
		t.emit(cnf.Neg(v), cnf.Neg(a), cnf.Pos(b))
		t.emit(cnf.Neg(v), cnf.Pos(a), cnf.Neg(b))
	}
	return v
}

// convertImplies introduces v <-> (a -> b), which is v <-> (!a | b).
func (t *tseytin) convertImplies(e *Expr) cnf.Variable {
	a := t.convert(e.Children[0])
	b := t.convert(e.Children[1])
	v := t.fresh()
	t.emit(cnf.Pos(v), cnf.Pos(a))
	t.emit(cnf.Pos(v), cnf.Neg(b))
	t.emit(cnf.Neg(v), cnf.Neg(a), cnf.Pos(b))
	return v
}

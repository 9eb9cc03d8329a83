package cdcl_test

import (
	"testing"

	"github.com/xDarkicex/satcore/cdcl"
	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/dpll"
)

func lit(name string) cnf.Literal {
	if len(name) > 0 && name[0] == '-' {
		return cnf.Neg(cnf.Variable(name[1:]))
	}
	return cnf.Pos(cnf.Variable(name))
}

func clause(lits ...string) *cnf.Clause {
	ls := make([]cnf.Literal, len(lits))
	for i, l := range lits {
		ls[i] = lit(l)
	}
	return cnf.NewClause(ls...)
}

func TestSolverAgreesWithDPLLOnSatisfiableFormula(t *testing.T) {
	c := cnf.FromClauses([]*cnf.Clause{
		clause("a"),
		clause("-a", "b"),
		clause("-b", "c"),
	})
	s := cdcl.NewSolver()
	a, sat := s.Solve(c)
	if !sat {
		t.Fatalf("expected satisfiable")
	}
	if cnf.Eval(c, a) != cnf.True {
		t.Fatalf("CDCL assignment %v does not satisfy the formula", a)
	}

	_, dpllSat := dpll.Solve(c)
	if dpllSat != sat {
		t.Fatalf("cdcl and dpll disagree on satisfiability")
	}
}

// TestFourClauseContradictionIsUnsatisfiable is the worked conflict-driven
// trace: {a∨b, ¬a∨b, a∨¬b, ¬a∨¬b} has no satisfying assignment over two
// variables, and every branch of CDCL's search should learn its way back
// to the empty clause.
func TestFourClauseContradictionIsUnsatisfiable(t *testing.T) {
	c := cnf.FromClauses([]*cnf.Clause{
		clause("a", "b"),
		clause("-a", "b"),
		clause("a", "-b"),
		clause("-a", "-b"),
	})
	s := cdcl.NewSolver()
	_, sat := s.Solve(c)
	if sat {
		t.Fatalf("expected unsatisfiable")
	}
}

func TestSolverAgreesWithDPLLOnUnsatisfiableFormula(t *testing.T) {
	c := cnf.FromClauses([]*cnf.Clause{
		clause("a", "b"),
		clause("-a", "b"),
		clause("a", "-b"),
		clause("-a", "-b"),
	})
	_, dpllSat := dpll.Solve(c)
	s := cdcl.NewSolver()
	_, cdclSat := s.Solve(c)
	if dpllSat != cdclSat {
		t.Fatalf("cdcl and dpll disagree: dpll=%v cdcl=%v", dpllSat, cdclSat)
	}
}

func TestEmptyFormulaIsSatisfiable(t *testing.T) {
	s := cdcl.NewSolver()
	_, sat := s.Solve(cnf.New())
	if !sat {
		t.Fatalf("empty formula must be satisfiable")
	}
}

func TestSingleEmptyClauseIsUnsatisfiable(t *testing.T) {
	s := cdcl.NewSolver()
	c := cnf.FromClauses([]*cnf.Clause{clause()})
	_, sat := s.Solve(c)
	if sat {
		t.Fatalf("a formula with an empty clause must be unsatisfiable")
	}
}

func TestLargerSatisfiableFormula(t *testing.T) {
	c := cnf.FromClauses([]*cnf.Clause{
		clause("a", "b", "c"),
		clause("-a", "b"),
		clause("-b", "c"),
		clause("-c", "d"),
	})
	s := cdcl.NewSolver()
	a, sat := s.Solve(c)
	if !sat {
		t.Fatalf("expected satisfiable")
	}
	if cnf.Eval(c, a) != cnf.True {
		t.Fatalf("assignment %v does not satisfy formula", a)
	}
}

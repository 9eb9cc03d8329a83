// Package dpll implements the Davis-Putnam-Logemann-Loveland search: unit
// propagation and pure literal elimination interleaved with a recursive
// branch-and-backtrack over the formula's variables.
package dpll

import "github.com/xDarkicex/satcore/cnf"

// Solve searches for a satisfying assignment of c. It clones c before
// simplifying, so the caller's formula is left untouched.
func Solve(c *cnf.CNF) (cnf.Assignment, bool) {
	return solve(c.Clone())
}

func solve(c *cnf.CNF) (cnf.Assignment, bool) {
	if c.IsEmpty() {
		return cnf.NewAssignment(), true
	}
	if c.HasEmptyClause() {
		return nil, false
	}

	local := cnf.NewAssignment()

	// If every remaining literal is pure, assigning each one to satisfy
	// its clauses satisfies the whole formula in one step.
	if impure := c.ImpureLiterals(); len(impure) == 0 {
		for _, l := range c.Literals() {
			local.AssignTrue(l)
		}
		return local, true
	}

	// Unit propagation: every currently-unit clause forces its literal.
	for _, u := range unitLiterals(c) {
		local.AssignTrue(u)
		c.SimplifyTrueLiteral(u)
	}

	// Pure literal elimination on whatever remains after propagation.
	impure := c.ImpureLiterals()
	var pure []cnf.Literal
	for _, l := range c.Literals() {
		if _, isImpure := impure[l]; !isImpure {
			pure = append(pure, l)
		}
	}
	for _, l := range pure {
		local.AssignTrue(l)
		c.SimplifyTrueLiteral(l)
	}

	lit, ok := c.MostOccurredLiteral()
	if !ok {
		res, sat := solve(c)
		if !sat {
			return nil, false
		}
		res.Extend(local)
		return res, true
	}

	branch := c.Clone()
	branch.SimplifyTrueLiteral(lit)
	if res, sat := solve(branch); sat {
		res.Extend(local)
		res.AssignTrue(lit)
		return res, true
	}

	other := c.Clone()
	other.SimplifyTrueLiteral(lit.Negated())
	if res, sat := solve(other); sat {
		res.Extend(local)
		res.AssignTrue(lit.Negated())
		return res, true
	}

	return nil, false
}

// unitLiterals snapshots the literals of every currently-unit clause
// before any of them are simplified away.
func unitLiterals(c *cnf.CNF) []cnf.Literal {
	var out []cnf.Literal
	for _, cl := range c.UnitClauses() {
		u, _ := cl.Unit()
		out = append(out, u)
	}
	return out
}

package cnf

// Eval evaluates c under the (possibly partial) assignment a. An
// unassigned variable is treated optimistically: a literal over an
// unassigned variable is taken as satisfied, so Eval returns True unless
// some clause is assigned False by every one of its literals.
func Eval(c *CNF, a Assignment) Truth {
	for _, cl := range c.AllClauses() {
		if EvalClause(cl, a) == False {
			return False
		}
	}
	return True
}

// EvalClause evaluates a single clause the same way Eval does: True
// unless every literal is assigned and every one of them is false.
func EvalClause(cl *Clause, a Assignment) Truth {
	for _, l := range cl.Literals() {
		t, assigned := a.Get(l.Var)
		if !assigned {
			return True
		}
		if t == l.MakingTruth() {
			return True
		}
	}
	return False
}

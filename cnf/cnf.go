package cnf

import "iter"

// CNF is the solver-facing view over a Clauses database: a conjunction of
// clauses that both DPLL and CDCL simplify in place as they assign
// literals.
type CNF struct {
	db *Clauses
}

// New returns an empty CNF.
func New() *CNF {
	return &CNF{db: newClauses()}
}

// FromClauses builds a CNF from an initial clause set.
func FromClauses(clauses []*Clause) *CNF {
	return &CNF{db: clausesFromSlice(clauses)}
}

// AddClause inserts a clause and returns its ID.
func (c *CNF) AddClause(cl *Clause) ClauseID {
	return c.db.Add(cl)
}

// Get looks up a clause by ID.
func (c *CNF) Get(id ClauseID) (*Clause, bool) {
	return c.db.Get(id)
}

// IsEmpty reports whether the formula has no clauses left: every clause
// has been satisfied and removed. An empty CNF is satisfiable.
func (c *CNF) IsEmpty() bool {
	return c.db.IsEmpty()
}

// HasEmptyClause reports whether some clause has had every literal
// simplified away without being satisfied. A CNF with an empty clause is
// unsatisfiable under the current partial assignment.
func (c *CNF) HasEmptyClause() bool {
	return c.db.HasEmptyClause()
}

// AllClauses iterates every live clause in ascending ID order.
func (c *CNF) AllClauses() iter.Seq2[ClauseID, *Clause] {
	return c.db.All()
}

// UnitClauses iterates clauses with exactly one remaining literal.
func (c *CNF) UnitClauses() iter.Seq2[ClauseID, *Clause] {
	return c.db.Unit()
}

// EmptyClauses iterates clauses with no remaining literals.
func (c *CNF) EmptyClauses() iter.Seq2[ClauseID, *Clause] {
	return c.db.Empty()
}

// FirstUnit returns an arbitrary unit clause, if one exists.
func (c *CNF) FirstUnit() (ClauseID, *Clause, bool) {
	return c.db.FirstUnit()
}

// Literals returns every literal with at least one live occurrence, in
// deterministic (Variable, polarity) order.
func (c *CNF) Literals() []Literal {
	return c.db.Literals()
}

// SimplifyTrueLiteral records that l has been assigned true: every clause
// containing l is now satisfied and removed, and ¬l is stripped out of
// every clause that still contains it.
func (c *CNF) SimplifyTrueLiteral(l Literal) {
	c.db.RemoveClausesWith(l)
	c.db.RemoveLiterals(l.Negated())
}

// MostOccurredLiteral returns the literal appearing in the most live
// clauses. Ties are broken deterministically: the lowest Variable name
// lexicographically, then the positive literal before the negated one.
// Both dpll and cdcl use this as their sole branching heuristic.
func (c *CNF) MostOccurredLiteral() (Literal, bool) {
	best := Literal{}
	bestCount := -1
	for _, l := range c.Literals() {
		n := c.db.Occurrences(l)
		if n > bestCount {
			bestCount = n
			best = l
		}
	}
	if bestCount < 0 {
		return Literal{}, false
	}
	return best, true
}

// ImpureLiterals returns the set of literals whose negation also occurs
// somewhere in the formula. A literal absent from this set is pure: it
// occurs with only one polarity, so assigning it to satisfy every clause
// it appears in can never conflict with another clause.
func (c *CNF) ImpureLiterals() map[Literal]struct{} {
	out := make(map[Literal]struct{})
	for _, l := range c.Literals() {
		if c.db.Occurrences(l.Negated()) > 0 {
			out[l] = struct{}{}
		}
	}
	return out
}

// Clone deep-copies the formula so the caller can simplify the copy
// without disturbing the original — the basis for DPLL's branch-and-
// backtrack and CDCL's per-level working formula.
func (c *CNF) Clone() *CNF {
	return &CNF{db: c.db.clone()}
}

// Validate checks the underlying clause database's invariants.
func (c *CNF) Validate() error {
	return c.db.Validate()
}

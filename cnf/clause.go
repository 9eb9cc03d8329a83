package cnf

import (
	"sort"
	"strings"
)

// ClauseID is a stable, never-reused handle into a Clauses database.
type ClauseID int

// Clause is a disjunction of literals with duplicates collapsed. A clause
// tracks two literal sets: Original, the full literal set it was built
// with (immutable, kept for CDCL's antecedent bookkeeping), and a mutable
// current set that shrinks as the surrounding CNF is simplified by
// SimplifyTrueLiteral.
type Clause struct {
	original []Literal
	current  map[Literal]struct{}
	learned  bool
}

// NewClause builds a clause from lits, discarding duplicates.
func NewClause(lits ...Literal) *Clause {
	c := &Clause{current: make(map[Literal]struct{}, len(lits))}
	seen := make(map[Literal]struct{}, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		c.original = append(c.original, l)
		c.current[l] = struct{}{}
	}
	return c
}

// NewLearnedClause is NewClause with Learned set, for clauses produced by
// CDCL's conflict diagnosis rather than supplied by the caller.
func NewLearnedClause(lits ...Literal) *Clause {
	c := NewClause(lits...)
	c.learned = true
	return c
}

// Learned reports whether this clause was derived by conflict diagnosis.
func (c *Clause) Learned() bool {
	return c.learned
}

// Original returns the clause's literal set as it was first constructed,
// unaffected by any later simplification.
func (c *Clause) Original() []Literal {
	out := make([]Literal, len(c.original))
	copy(out, c.original)
	return out
}

// Len returns the number of literals currently in the clause.
func (c *Clause) Len() int {
	return len(c.current)
}

// IsEmpty reports whether every literal has been simplified away.
func (c *Clause) IsEmpty() bool {
	return len(c.current) == 0
}

// IsUnit reports whether exactly one literal remains.
func (c *Clause) IsUnit() bool {
	return len(c.current) == 1
}

// Unit returns the clause's sole remaining literal. ok is false unless
// IsUnit() holds.
func (c *Clause) Unit() (lit Literal, ok bool) {
	if !c.IsUnit() {
		return Literal{}, false
	}
	for l := range c.current {
		return l, true
	}
	return Literal{}, false
}

// Contains reports whether l is still present in the clause's current
// literal set.
func (c *Clause) Contains(l Literal) bool {
	_, ok := c.current[l]
	return ok
}

// Literals returns the clause's current literal set in deterministic
// (Variable, polarity) order.
func (c *Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.current))
	for l := range c.current {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// removeLiteral deletes l from the current set. It reports whether the
// clause was unit before the removal (and is therefore now empty).
func (c *Clause) removeLiteral(l Literal) (wasUnit bool) {
	wasUnit = c.IsUnit()
	delete(c.current, l)
	return wasUnit
}

// clone deep-copies the current set; the original slice is immutable and
// safe to share.
func (c *Clause) clone() *Clause {
	cur := make(map[Literal]struct{}, len(c.current))
	for l := range c.current {
		cur[l] = struct{}{}
	}
	return &Clause{
		original: c.original,
		current:  cur,
		learned:  c.learned,
	}
}

func (c *Clause) String() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, " ∨ ") + "}"
}

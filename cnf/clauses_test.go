package cnf

import "testing"

func clause(vars ...string) *Clause {
	lits := make([]Literal, len(vars))
	for i, v := range vars {
		if len(v) > 0 && v[0] == '-' {
			lits[i] = Neg(Variable(v[1:]))
		} else {
			lits[i] = Pos(Variable(v))
		}
	}
	return NewClause(lits...)
}

func TestClausesBuckets(t *testing.T) {
	db := clausesFromSlice([]*Clause{
		clause("a", "b"),
		clause("a"),
		clause(),
	})
	if len(db.normal) != 1 || len(db.unit) != 1 || len(db.empty) != 1 {
		t.Fatalf("unexpected bucket sizes: normal=%d unit=%d empty=%d", len(db.normal), len(db.unit), len(db.empty))
	}
	if err := db.Validate(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
}

func TestRemoveClausesWith(t *testing.T) {
	db := clausesFromSlice([]*Clause{
		clause("a", "b"),
		clause("-a", "b"),
	})
	db.RemoveClausesWith(Pos("a"))
	if !db.HasEmptyClause() && db.IsEmpty() {
		t.Fatalf("expected one clause to remain")
	}
	if _, ok := db.Get(0); ok {
		t.Fatalf("clause containing a should have been removed")
	}
	if err := db.Validate(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
}

func TestRemoveLiterals(t *testing.T) {
	db := clausesFromSlice([]*Clause{
		clause("-a", "b"),
	})
	db.RemoveLiterals(Neg("a"))
	c, ok := db.Get(0)
	if !ok {
		t.Fatalf("clause missing")
	}
	if !c.IsUnit() {
		t.Fatalf("expected clause to shrink to a unit clause, got %v", c)
	}
	lit, _ := c.Unit()
	if lit != Pos("b") {
		t.Fatalf("expected remaining literal b, got %v", lit)
	}
	if err := db.Validate(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
}

func TestRemoveLiteralsToEmpty(t *testing.T) {
	db := clausesFromSlice([]*Clause{
		clause("a"),
	})
	db.RemoveLiterals(Pos("a"))
	c, ok := db.Get(0)
	if !ok {
		t.Fatalf("clause missing")
	}
	if !c.IsEmpty() {
		t.Fatalf("expected clause to become empty")
	}
	if !db.HasEmptyClause() {
		t.Fatalf("expected HasEmptyClause to be true")
	}
	if err := db.Validate(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
}

func TestClauseIDsNeverReused(t *testing.T) {
	db := newClauses()
	id1 := db.Add(clause("a"))
	db.RemoveClausesWith(Pos("a"))
	id2 := db.Add(clause("b"))
	if id1 == id2 {
		t.Fatalf("clause ID %d reused after deletion", id1)
	}
}

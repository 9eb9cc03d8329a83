package cnf

import "sort"

// Table indexes which clauses currently contain each literal. It is kept
// in lockstep with a Clauses database: every add/remove of a literal from
// a clause's current set is mirrored here.
type Table struct {
	index map[Literal]map[ClauseID]struct{}
}

func newTable() *Table {
	return &Table{index: make(map[Literal]map[ClauseID]struct{})}
}

func (t *Table) register(l Literal, id ClauseID) {
	ids, ok := t.index[l]
	if !ok {
		ids = make(map[ClauseID]struct{})
		t.index[l] = ids
	}
	ids[id] = struct{}{}
}

func (t *Table) unregister(l Literal, id ClauseID) {
	ids, ok := t.index[l]
	if !ok {
		return
	}
	delete(ids, id)
	if len(ids) == 0 {
		delete(t.index, l)
	}
}

// unregisterAll drops l from the table entirely, regardless of which
// clauses still reference it in memory.
func (t *Table) unregisterAll(l Literal) {
	delete(t.index, l)
}

// idsFor returns a snapshot of the clause IDs currently containing l, in
// ascending order. The slice is a copy: safe to range over while mutating
// the table.
func (t *Table) idsFor(l Literal) []ClauseID {
	ids, ok := t.index[l]
	if !ok {
		return nil
	}
	out := make([]ClauseID, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// occurrences reports how many clauses currently contain l.
func (t *Table) occurrences(l Literal) int {
	return len(t.index[l])
}

// literals returns every literal the table currently tracks, in
// deterministic order.
func (t *Table) literals() []Literal {
	out := make([]Literal, 0, len(t.index))
	for l, ids := range t.index {
		if len(ids) > 0 {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (t *Table) clone() *Table {
	nt := newTable()
	for l, ids := range t.index {
		cp := make(map[ClauseID]struct{}, len(ids))
		for id := range ids {
			cp[id] = struct{}{}
		}
		nt.index[l] = cp
	}
	return nt
}

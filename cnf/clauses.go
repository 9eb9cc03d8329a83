package cnf

import (
	"fmt"
	"iter"
	"sort"
)

type bucket int

const (
	bucketNormal bucket = iota
	bucketUnit
	bucketEmpty
)

// Clauses is the bucketed clause database. Every live clause sits in
// exactly one of three buckets keyed by its current literal count: normal
// (2+ literals), unit (exactly 1) or empty (0). The invariants maintained
// at every observable point are:
//
//   - D1: every clause ID appears in exactly one bucket.
//   - D2: a clause's bucket always matches its current literal count.
//   - D3: clause IDs are assigned once, monotonically, and never reused.
//
// Clauses owns a Table mapping each literal still in play to the IDs of
// the clauses that currently contain it.
type Clauses struct {
	byID   map[ClauseID]*Clause
	bucket map[ClauseID]bucket
	normal map[ClauseID]struct{}
	unit   map[ClauseID]struct{}
	empty  map[ClauseID]struct{}
	table  *Table
	nextID ClauseID
}

func newClauses() *Clauses {
	return &Clauses{
		byID:   make(map[ClauseID]*Clause),
		bucket: make(map[ClauseID]bucket),
		normal: make(map[ClauseID]struct{}),
		unit:   make(map[ClauseID]struct{}),
		empty:  make(map[ClauseID]struct{}),
		table:  newTable(),
	}
}

// clausesFromSlice builds a Clauses database from an initial clause set,
// assigning each one a fresh ID in order.
func clausesFromSlice(clauses []*Clause) *Clauses {
	db := newClauses()
	for _, c := range clauses {
		db.insert(c)
	}
	return db
}

func (db *Clauses) bucketFor(c *Clause) bucket {
	switch {
	case c.IsEmpty():
		return bucketEmpty
	case c.IsUnit():
		return bucketUnit
	default:
		return bucketNormal
	}
}

func (db *Clauses) bucketSet(b bucket) map[ClauseID]struct{} {
	switch b {
	case bucketUnit:
		return db.unit
	case bucketEmpty:
		return db.empty
	default:
		return db.normal
	}
}

func (db *Clauses) insert(c *Clause) ClauseID {
	id := db.nextID
	db.nextID++
	db.byID[id] = c
	b := db.bucketFor(c)
	db.bucket[id] = b
	db.bucketSet(b)[id] = struct{}{}
	for l := range c.current {
		db.table.register(l, id)
	}
	return id
}

// Add inserts a new clause and returns its ID.
func (db *Clauses) Add(c *Clause) ClauseID {
	return db.insert(c)
}

// Get looks up a clause by ID.
func (db *Clauses) Get(id ClauseID) (*Clause, bool) {
	c, ok := db.byID[id]
	return c, ok
}

// IsEmpty reports whether no clauses remain in any bucket.
func (db *Clauses) IsEmpty() bool {
	return len(db.byID) == 0
}

// HasEmptyClause reports whether the empty bucket is non-empty.
func (db *Clauses) HasEmptyClause() bool {
	return len(db.empty) > 0
}

func (db *Clauses) moveBucket(id ClauseID, to bucket) {
	from := db.bucket[id]
	if from == to {
		return
	}
	delete(db.bucketSet(from), id)
	db.bucketSet(to)[id] = struct{}{}
	db.bucket[id] = to
}

// RemoveClausesWith deletes every clause that currently contains l: each
// one is satisfied once l is forced true. Every other literal still
// referenced by a deleted clause is unregistered from the table, and
// finally l itself is dropped from the table entirely.
func (db *Clauses) RemoveClausesWith(l Literal) {
	ids := db.table.idsFor(l)
	for _, id := range ids {
		c, ok := db.byID[id]
		if !ok {
			continue
		}
		for _, other := range c.Literals() {
			if other == l {
				continue
			}
			db.table.unregister(other, id)
		}
		delete(db.bucketSet(db.bucket[id]), id)
		delete(db.bucket, id)
		delete(db.byID, id)
	}
	db.table.unregisterAll(l)
}

// RemoveLiterals strips l out of every clause that currently contains it:
// l has been falsified. A clause that was unit on l becomes empty; a
// clause that shrinks to one literal moves from normal to unit. l is
// dropped from the table entirely once every clause has been updated.
func (db *Clauses) RemoveLiterals(l Literal) {
	ids := db.table.idsFor(l)
	for _, id := range ids {
		c, ok := db.byID[id]
		if !ok {
			continue
		}
		wasUnit := c.removeLiteral(l)
		if wasUnit {
			db.moveBucket(id, bucketEmpty)
		} else if c.IsUnit() {
			db.moveBucket(id, bucketUnit)
		}
	}
	db.table.unregisterAll(l)
}

// All iterates every live clause, in ascending ID order.
func (db *Clauses) All() iter.Seq2[ClauseID, *Clause] {
	return db.bucketIter(db.allIDs())
}

// Unit iterates unit clauses, in ascending ID order.
func (db *Clauses) Unit() iter.Seq2[ClauseID, *Clause] {
	return db.bucketIter(sortedIDs(db.unit))
}

// Empty iterates empty clauses, in ascending ID order.
func (db *Clauses) Empty() iter.Seq2[ClauseID, *Clause] {
	return db.bucketIter(sortedIDs(db.empty))
}

// FirstUnit returns an arbitrary (lowest-ID) unit clause, if any exist.
func (db *Clauses) FirstUnit() (ClauseID, *Clause, bool) {
	ids := sortedIDs(db.unit)
	if len(ids) == 0 {
		return 0, nil, false
	}
	return ids[0], db.byID[ids[0]], true
}

func (db *Clauses) allIDs() []ClauseID {
	out := make([]ClauseID, 0, len(db.byID))
	for id := range db.byID {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedIDs(set map[ClauseID]struct{}) []ClauseID {
	out := make([]ClauseID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (db *Clauses) bucketIter(ids []ClauseID) iter.Seq2[ClauseID, *Clause] {
	return func(yield func(ClauseID, *Clause) bool) {
		for _, id := range ids {
			c, ok := db.byID[id]
			if !ok {
				continue
			}
			if !yield(id, c) {
				return
			}
		}
	}
}

// Literals returns every literal with at least one live occurrence.
func (db *Clauses) Literals() []Literal {
	return db.table.literals()
}

// Occurrences reports how many live clauses currently contain l.
func (db *Clauses) Occurrences(l Literal) int {
	return db.table.occurrences(l)
}

func (db *Clauses) clone() *Clauses {
	nc := &Clauses{
		byID:   make(map[ClauseID]*Clause, len(db.byID)),
		bucket: make(map[ClauseID]bucket, len(db.bucket)),
		normal: make(map[ClauseID]struct{}, len(db.normal)),
		unit:   make(map[ClauseID]struct{}, len(db.unit)),
		empty:  make(map[ClauseID]struct{}, len(db.empty)),
		table:  db.table.clone(),
		nextID: db.nextID,
	}
	for id, c := range db.byID {
		nc.byID[id] = c.clone()
	}
	for id, b := range db.bucket {
		nc.bucket[id] = b
	}
	for id := range db.normal {
		nc.normal[id] = struct{}{}
	}
	for id := range db.unit {
		nc.unit[id] = struct{}{}
	}
	for id := range db.empty {
		nc.empty[id] = struct{}{}
	}
	return nc
}

// Validate checks invariants D1 and D2, plus that every table entry points
// at a live clause that still contains the literal, and returns the first
// violation found, if any. D3 holds by construction in insert and is not
// checked here. It is not called on any hot path; tests use it to assert
// the database stays internally consistent through simplification.
func (db *Clauses) Validate() error {
	seen := make(map[ClauseID]bucket)
	for id := range db.normal {
		seen[id] = bucketNormal
	}
	for id := range db.unit {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("clause %d present in more than one bucket", id)
		}
		seen[id] = bucketUnit
	}
	for id := range db.empty {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("clause %d present in more than one bucket", id)
		}
		seen[id] = bucketEmpty
	}
	if len(seen) != len(db.byID) {
		return fmt.Errorf("bucket membership count %d does not match clause count %d", len(seen), len(db.byID))
	}
	for id, c := range db.byID {
		want := db.bucketFor(c)
		if seen[id] != want {
			return fmt.Errorf("clause %d has %d literals but sits in bucket %d, want %d", id, c.Len(), seen[id], want)
		}
	}
	for l, ids := range db.table.index {
		for id := range ids {
			c, ok := db.byID[id]
			if !ok {
				return fmt.Errorf("table references deleted clause %d via literal %s", id, l)
			}
			if !c.Contains(l) {
				return fmt.Errorf("table references clause %d via literal %s it no longer contains", id, l)
			}
		}
	}
	return nil
}

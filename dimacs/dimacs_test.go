package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xDarkicex/satcore/cnf"
)

func TestParseBasic(t *testing.T) {
	src := `c a sample formula
p cnf 3 2
1 -2 0
2 3 0
`
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var count int
	for range c.AllClauses() {
		count++
	}
	if count != 2 {
		t.Fatalf("expected 2 clauses, got %d", count)
	}
}

func TestParseRejectsClauseBeforeProblemLine(t *testing.T) {
	if _, err := Parse(strings.NewReader("1 2 0\np cnf 2 1\n")); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestParseRejectsMismatchedClauseCount(t *testing.T) {
	src := "p cnf 2 2\n1 2 0\n"
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an error for declared-vs-actual clause count mismatch")
	}
}

func TestParseRejectsZeroBeforeEndOfLine(t *testing.T) {
	src := "p cnf 2 1\n1 0 2 0\n"
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an error for an embedded zero terminator")
	}
}

func TestParseRejectsOutOfRangeVariable(t *testing.T) {
	src := "p cnf 2 1\n1 3 0\n"
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an error for a literal outside 1..num_vars")
	}
}

func TestParseRejectsMissingZeroTerminator(t *testing.T) {
	src := "p cnf 2 1\n1 2\n"
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an error for a clause with no 0 terminator")
	}
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	original := cnf.FromClauses([]*cnf.Clause{
		cnf.NewClause(cnf.Pos("v1"), cnf.Neg("v2")),
		cnf.NewClause(cnf.Pos("v2"), cnf.Pos("v3")),
		cnf.NewClause(cnf.Neg("v1"), cnf.Neg("v3")),
	})

	var buf bytes.Buffer
	if err := WriteCNF(&buf, original); err != nil {
		t.Fatalf("write error: %v", err)
	}

	roundTripped, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	originalSet := clauseLiteralSets(original)
	roundTrippedSet := clauseLiteralSets(roundTripped)
	if diff := cmp.Diff(originalSet, roundTrippedSet); diff != "" {
		t.Fatalf("round trip changed the formula (-original +roundtrip):\n%s", diff)
	}
}

func clauseLiteralSets(c *cnf.CNF) [][]cnf.Literal {
	var out [][]cnf.Literal
	for _, cl := range c.AllClauses() {
		out = append(out, cl.Literals())
	}
	return out
}

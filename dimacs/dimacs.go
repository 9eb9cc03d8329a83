// Package dimacs reads and writes the DIMACS CNF text format, mapping
// between its 1-based integer literals and the named Literals that
// satcore's cnf package works with.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/core"
)

// variableName returns the v<k> name a DIMACS variable index k maps to.
func variableName(k int) cnf.Variable {
	return cnf.Variable(fmt.Sprintf("v%d", k))
}

// Builder receives callbacks as a DIMACS file is scanned, in file order.
type Builder interface {
	// Problem processes the problem line: nVars variables, nClauses clauses.
	Problem(nVars, nClauses int)
	// Clause processes one clause line. tmpClause is a shared buffer valid
	// only for the duration of the call.
	Clause(tmpClause []int)
	// Comment processes a comment line, including its leading "c".
	Comment(line string)
}

// Parse reads a DIMACS CNF file from r and returns the formula as a *cnf.CNF
// whose variables are named v1..vN per the problem line.
func Parse(r io.Reader) (*cnf.CNF, error) {
	var b cnfBuilder
	if err := ReadBuilder(r, &b); err != nil {
		return nil, err
	}
	clauses := make([]*cnf.Clause, 0, len(b.rawClauses))
	for _, raw := range b.rawClauses {
		lits := make([]cnf.Literal, len(raw))
		for i, l := range raw {
			if l < 0 {
				lits[i] = cnf.Neg(variableName(-l))
			} else {
				lits[i] = cnf.Pos(variableName(l))
			}
		}
		clauses = append(clauses, cnf.NewClause(lits...))
	}
	return cnf.FromClauses(clauses), nil
}

type cnfBuilder struct {
	numVars    int
	rawClauses [][]int
}

func (b *cnfBuilder) Problem(nVars, nClauses int) {
	b.numVars = nVars
	b.rawClauses = make([][]int, 0, nClauses)
}

func (b *cnfBuilder) Clause(tmpClause []int) {
	c := make([]int, len(tmpClause))
	copy(c, tmpClause)
	b.rawClauses = append(b.rawClauses, c)
}

func (b *cnfBuilder) Comment(string) {}

// ReadBuilder scans a DIMACS CNF file from r, invoking b's methods in file
// order. It returns a *core.Error for any malformed line.
func ReadBuilder(r io.Reader, b Builder) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	foundProblem := false
	nVars, nClauses, parsedClauses := 0, 0, 0
	clauseBuf := make([]int, 0, 32)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			b.Comment(line)
		case 'p':
			if foundProblem {
				return core.NewPositionalError("dimacs", "parse", "duplicate problem line", lineNo)
			}
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return core.NewPositionalError("dimacs", "parse", fmt.Sprintf("malformed problem line %q", line), lineNo)
			}
			var err error
			nVars, err = strconv.Atoi(parts[2])
			if err != nil {
				return core.NewPositionalError("dimacs", "parse", "invalid variable count", lineNo)
			}
			nClauses, err = strconv.Atoi(parts[3])
			if err != nil {
				return core.NewPositionalError("dimacs", "parse", "invalid clause count", lineNo)
			}
			b.Problem(nVars, nClauses)
			foundProblem = true
		default:
			if !foundProblem {
				return core.NewPositionalError("dimacs", "parse", "clause line found before problem line", lineNo)
			}
			if parsedClauses >= nClauses {
				return core.NewPositionalError("dimacs", "parse", fmt.Sprintf("more clauses than declared (%d)", nClauses), lineNo)
			}
			clauseBuf = clauseBuf[:0]
			parts := strings.Fields(line)
			terminated := false
			for i, p := range parts {
				lit, err := strconv.Atoi(p)
				if err != nil {
					return core.NewPositionalError("dimacs", "parse", fmt.Sprintf("invalid literal %q", p), lineNo)
				}
				if lit == 0 {
					if i != len(parts)-1 {
						return core.NewPositionalError("dimacs", "parse", "zero terminator before end of clause", lineNo)
					}
					terminated = true
					break
				}
				if lit > nVars || lit < -nVars {
					return core.NewPositionalError("dimacs", "parse", fmt.Sprintf("variable %d out of declared range 1..%d", lit, nVars), lineNo)
				}
				clauseBuf = append(clauseBuf, lit)
			}
			if !terminated {
				return core.NewPositionalError("dimacs", "parse", "clause missing 0 terminator", lineNo)
			}
			b.Clause(clauseBuf)
			parsedClauses++
		}
	}

	if err := scanner.Err(); err != nil {
		return core.NewError("dimacs", "parse", err.Error())
	}
	if !foundProblem {
		return core.NewError("dimacs", "parse", "no problem line found")
	}
	if parsedClauses != nClauses {
		return core.NewError("dimacs", "parse", fmt.Sprintf("declared %d clauses, found %d", nClauses, parsedClauses))
	}
	return nil
}

// WriteCNF writes c to w in DIMACS CNF format. Variables are numbered 1..N
// in lexicographic name order, and the mapping is written as comment
// lines. Parse reads the output back with the same variable names only
// when that numbering sends each v<k> to k, that is when the variables are
// exactly v1..vN with N at most 9; other names are renamed to v<k>.
func WriteCNF(w io.Writer, c *cnf.CNF) error {
	names := variableNames(c)
	index := make(map[cnf.Variable]int, len(names))
	for i, n := range names {
		index[n] = i + 1
		if _, err := fmt.Fprintf(w, "c %d %s\n", i+1, n); err != nil {
			return err
		}
	}

	var ids []cnf.ClauseID
	clauseLits := map[cnf.ClauseID][]cnf.Literal{}
	for id, cl := range c.AllClauses() {
		ids = append(ids, id)
		clauseLits[id] = cl.Literals()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(names), len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		var parts []string
		for _, l := range clauseLits[id] {
			n := index[l.Var]
			if l.IsNegated() {
				n = -n
			}
			parts = append(parts, strconv.Itoa(n))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

func variableNames(c *cnf.CNF) []cnf.Variable {
	seen := map[cnf.Variable]struct{}{}
	for _, l := range c.Literals() {
		seen[l.Var] = struct{}{}
	}
	names := make([]cnf.Variable, 0, len(seen))
	for v := range seen {
		names = append(names, v)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

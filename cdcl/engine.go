// Package cdcl implements conflict-driven clause learning: the same
// unit-propagation-or-branch step as dpll, but every assignment is
// recorded in an implication graph so that a conflict can be diagnosed
// into a learned clause and the search can jump back non-chronologically
// instead of backtracking one variable at a time.
package cdcl

import (
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/xDarkicex/satcore/cnf"
)

// Solver runs the CDCL search. The zero value is ready to use; set Logger
// to trace decisions, conflicts and learned clauses at Trace/Debug level.
type Solver struct {
	Logger hclog.Logger
}

// NewSolver returns a Solver with no logger attached.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve searches for a satisfying assignment of c, learning a clause for
// every conflict it resolves. It clones c before simplifying.
func (s *Solver) Solve(c *cnf.CNF) (cnf.Assignment, bool) {
	return search(c.Clone(), NewGraph(), s.Logger)
}

// frame holds one decision level's state: the formula as it was handed to
// this level (entry, used to rebuild on retry), the formula as currently
// simplified by this level's own step (working), and the assignment made
// at or after this level.
type frame struct {
	level   int
	entry   *cnf.CNF
	working *cnf.CNF
	local   cnf.Assignment
}

func newFrame(level int, entry *cnf.CNF, learned []*cnf.Clause) *frame {
	f := &frame{level: level, entry: entry}
	rebuildFrame(f, learned)
	return f
}

func rebuildFrame(f *frame, learned []*cnf.Clause) {
	wf := f.entry.Clone()
	for _, lc := range learned {
		wf.AddClause(lc)
	}
	f.working = wf
	f.local = cnf.NewAssignment()
}

// search drives the Decide/Deduce/Diagnose/Retry state machine as an
// explicit loop over a push-down stack of frames, one per decision level,
// rather than a recursive function call per level.
func search(root *cnf.CNF, graph *Graph, logger hclog.Logger) (cnf.Assignment, bool) {
	var learned []*cnf.Clause
	frames := []*frame{newFrame(0, root, learned)}

	for len(frames) > 0 {
		top := frames[len(frames)-1]
		wf := top.working

		if wf.IsEmpty() {
			result := top.local
			frames = frames[:len(frames)-1]
			for len(frames) > 0 {
				parent := frames[len(frames)-1]
				parent.local.Extend(result)
				result = parent.local
				frames = frames[:len(frames)-1]
			}
			return result, true
		}

		if wf.HasEmptyClause() {
			bl, induced := diagnose(wf, top.level, graph)
			learned = append(learned, induced)
			if logger != nil {
				logger.Debug("conflict", "level", top.level, "backjump", bl, "learned", induced.String())
			}
			if bl != top.level || top.level == 0 {
				graph.Erase(top.level)
				frames = frames[:len(frames)-1]
				var ok bool
				frames, ok = bubbleConflict(frames, bl, learned, graph)
				if !ok {
					return nil, false
				}
				continue
			}
			graph.Erase(top.level)
			rebuildFrame(top, learned)
			continue
		}

		var u cnf.Literal
		var preds []NodeID
		if _, unitClause, ok := wf.FirstUnit(); ok {
			u, _ = unitClause.Unit()
			preds = antecedentsOf(unitClause, u, graph)
		} else {
			lit, ok := wf.MostOccurredLiteral()
			if !ok {
				// wf is non-empty and has no empty clause, so it must
				// have at least one literal; unreachable in practice.
				return nil, false
			}
			u = lit
		}

		id := graph.MakeDecision(u.Var, u.MakingTruth(), top.level, preds)
		if logger != nil {
			logger.Trace("assign", "var", u.Var, "truth", u.MakingTruth(), "level", top.level, "node", id, "antecedents", len(preds))
		}
		top.local.AssignTrue(u)
		wf.SimplifyTrueLiteral(u)

		if wf.IsEmpty() || wf.HasEmptyClause() {
			continue
		}

		frames = append(frames, newFrame(top.level+1, wf.Clone(), learned))
	}

	return nil, false
}

// bubbleConflict pops frames whose level doesn't match the backjump
// target bl, erasing each one's graph nodes as it goes, until it finds
// the target and retries it in place, or the stack is exhausted (the
// conflict reaches past the root, meaning the formula is unsatisfiable).
func bubbleConflict(frames []*frame, bl int, learned []*cnf.Clause, graph *Graph) ([]*frame, bool) {
	for {
		if len(frames) == 0 {
			return frames, false
		}
		top := frames[len(frames)-1]
		if top.level == bl {
			graph.Erase(top.level)
			rebuildFrame(top, learned)
			return frames, true
		}
		graph.Erase(top.level)
		frames = frames[:len(frames)-1]
	}
}

// antecedentsOf gathers the decision nodes that forced clause c's other
// original literals false, which is what made u the clause's sole
// remaining (and therefore forced) literal.
func antecedentsOf(c *cnf.Clause, u cnf.Literal, g *Graph) []NodeID {
	var preds []NodeID
	for _, other := range c.Original() {
		if other == u {
			continue
		}
		if id, ok := g.FindDecision(other.Var, cnf.FromBool(other.IsNegated())); ok {
			preds = append(preds, id)
		}
	}
	return preds
}

// diagnose scans every empty clause's original literals back to the
// decision nodes that falsified them, expanding any cause still at the
// current level to its own predecessors until only causes from strictly
// earlier levels remain. It returns the backjump level (the deepest
// level among those boundary causes) and the clause they induce.
func diagnose(c *cnf.CNF, level int, g *Graph) (int, *cnf.Clause) {
	direct := map[NodeID]struct{}{}
	for _, cl := range c.EmptyClauses() {
		for _, l := range cl.Original() {
			if id, ok := g.FindDecision(l.Var, cnf.FromBool(l.IsNegated())); ok {
				direct[id] = struct{}{}
			}
		}
	}

	boundary := map[NodeID]struct{}{}
	visited := map[NodeID]bool{}
	var expand func(NodeID)
	expand = func(id NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		n, ok := g.Node(id)
		if !ok {
			return
		}
		if n.Level < level {
			boundary[id] = struct{}{}
			return
		}
		for _, p := range n.Preds {
			expand(p)
		}
	}
	for _, id := range sortedNodeIDs(direct) {
		expand(id)
	}

	bl := 0
	lits := make([]cnf.Literal, 0, len(boundary))
	for _, id := range sortedNodeIDs(boundary) {
		n, _ := g.Node(id)
		if n.Level > bl {
			bl = n.Level
		}
		lits = append(lits, cnf.Literal{Var: n.Var, Neg: n.Truth.Bool()})
	}
	return bl, cnf.NewLearnedClause(lits...)
}

func sortedNodeIDs(set map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

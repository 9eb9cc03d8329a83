package cdcl

import "github.com/xDarkicex/satcore/cnf"

// NodeID is a stable handle into a Graph's arena, returned by MakeDecision
// and used as a predecessor reference by later nodes.
type NodeID int

// Node is one vertex of the implication graph: a variable assignment made
// either freely (a decision, no predecessors) or forced by unit
// propagation (an implication, with the antecedent clause's other
// literals as predecessors).
type Node struct {
	ID    NodeID
	Var   cnf.Variable
	Truth cnf.Truth
	Level int
	Preds []NodeID
}

// Graph is the implication graph built up over a CDCL search. Nodes are
// addressed by stable integer handles so that Erase can drop an entire
// decision level's nodes without invalidating handles held elsewhere.
type Graph struct {
	nodes  map[NodeID]*Node
	index  map[cnf.Variable]map[cnf.Truth]NodeID
	nextID NodeID
}

// NewGraph returns an empty implication graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		index: make(map[cnf.Variable]map[cnf.Truth]NodeID),
	}
}

// MakeDecision records a new node for v := t at the given level, with
// preds as its antecedents (nil for a free decision), and returns its ID.
func (g *Graph) MakeDecision(v cnf.Variable, t cnf.Truth, level int, preds []NodeID) NodeID {
	id := g.nextID
	g.nextID++
	g.nodes[id] = &Node{ID: id, Var: v, Truth: t, Level: level, Preds: preds}
	byTruth, ok := g.index[v]
	if !ok {
		byTruth = make(map[cnf.Truth]NodeID)
		g.index[v] = byTruth
	}
	byTruth[t] = id
	return id
}

// FindDecision looks up the node that assigned v := t, if one is still
// live in the graph.
func (g *Graph) FindDecision(v cnf.Variable, t cnf.Truth) (NodeID, bool) {
	byTruth, ok := g.index[v]
	if !ok {
		return 0, false
	}
	id, ok := byTruth[t]
	return id, ok
}

// Node looks up a node by its ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Predecessors returns the antecedent node IDs for id.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.Preds
}

// Erase removes every node at the given level from the graph, along with
// its index entries. Called when a decision level is discarded, either by
// backjumping past it or by retrying it.
func (g *Graph) Erase(level int) {
	for id, n := range g.nodes {
		if n.Level != level {
			continue
		}
		if byTruth, ok := g.index[n.Var]; ok {
			if byTruth[n.Truth] == id {
				delete(byTruth, n.Truth)
				if len(byTruth) == 0 {
					delete(g.index, n.Var)
				}
			}
		}
		delete(g.nodes, id)
	}
}

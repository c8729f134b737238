package algo

import (
	lvcore "github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// priorityGraph is the PBS priority DAG over agent identifiers: an edge
// u->v means "u has priority over v". It is backed by lvlath's directed
// core.Graph; dfs.TopologicalSort both detects a cycle (a proposed edge
// that closes one) and, on success, produces exactly the replan order PBS
// needs, so a single call covers both jobs this component is responsible
// for.
type priorityGraph struct {
	g *lvcore.Graph
}

func newPriorityGraph(agents []core.AgentID) *priorityGraph {
	p := &priorityGraph{g: lvcore.NewGraph(lvcore.WithDirected(true))}
	// Every agent must be a vertex from the start, even one with no
	// priority edges yet, so that TopologicalSort's order always covers
	// all agents.
	for _, id := range agents {
		_ = p.g.AddVertex(vertexName(id))
	}
	return p
}

func vertexName(id core.AgentID) string { return string(id) }

// clone returns an independent copy, for building a PBS child without
// mutating its parent's graph.
func (p *priorityGraph) clone() *priorityGraph {
	return &priorityGraph{g: p.g.Clone()}
}

// hasEdge reports whether u already has priority over v.
func (p *priorityGraph) hasEdge(u, v core.AgentID) bool {
	return p.g.HasEdge(vertexName(u), vertexName(v))
}

// withEdge returns a clone of p with the edge u->v added, along with the
// topological order induced by that edge. ok is false if the edge already
// existed or would close a cycle, in which case the returned graph and
// order are unusable and the caller should reject the PBS child.
func (p *priorityGraph) withEdge(u, v core.AgentID) (next *priorityGraph, order []core.AgentID, ok bool) {
	if p.hasEdge(u, v) {
		return nil, nil, false
	}
	next = p.clone()
	if _, err := next.g.AddEdge(vertexName(u), vertexName(v), 0); err != nil {
		return nil, nil, false
	}

	names, err := dfs.TopologicalSort(next.g)
	if err != nil {
		return nil, nil, false
	}

	order = make([]core.AgentID, len(names))
	for i, n := range names {
		order[i] = core.AgentID(n[0])
	}
	return next, order, true
}

// predecessorsOf returns, given a topological order, every agent ordered
// strictly before target. This prefix contains all of target's direct and
// transitive predecessors, and also any agent the order happens to place
// earlier without a priority edge connecting it to target.
func predecessorsOf(order []core.AgentID, target core.AgentID) []core.AgentID {
	var preds []core.AgentID
	for _, id := range order {
		if id == target {
			break
		}
		preds = append(preds, id)
	}
	return preds
}

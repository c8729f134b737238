package algo

import (
	"container/heap"

	"github.com/edaniels/golog"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// Idea is a PBS search node: a candidate Route for every agent, plus the
// priority DAG those routes were planned under.
type Idea struct {
	routes map[core.AgentID]core.Route
	graph  *priorityGraph
	cost   int
}

func ideaCost(routes map[core.AgentID]core.Route) int {
	total := 0
	for _, r := range routes {
		total += r.Duration()
	}
	return total
}

// ideaEntry is a frontier slot: seq is the insertion order, used as the
// tie-break when two ideas have equal cost (the earlier-inserted child,
// i.e. the a->b orientation, wins).
type ideaEntry struct {
	idea  *Idea
	seq   int
	index int
}

type ideaHeap []*ideaEntry

func (h ideaHeap) Len() int { return len(h) }
func (h ideaHeap) Less(i, j int) bool {
	if h[i].idea.cost != h[j].idea.cost {
		return h[i].idea.cost < h[j].idea.cost
	}
	return h[i].seq < h[j].seq
}
func (h ideaHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *ideaHeap) Push(x any) {
	e := x.(*ideaEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *ideaHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return e
}

// PlanAgent plans a single agent's Route against row. An agent with no
// assigned goal never moves: it holds its start cell forever, which is
// exactly what a one-Location Route already means to RightOfWay.Merge (the
// sole Location is both first and last, so it becomes a permanent
// reservation). Exported so callers outside this package (the
// pre-PBS "dump conflicted plan" debugging aid) can compute the same
// unconstrained per-agent plan PBS itself starts from.
func PlanAgent(grid *core.Grid, agent *core.Agent, row *core.RightOfWay, logger golog.Logger) (core.Route, error) {
	if !agent.HasGoal {
		return core.Route{{Pos: agent.Start, Time: 0}}, nil
	}
	return SpaceTimeAStar(grid, agent.ID, agent.Start, agent.Goal, row, logger)
}

// replanAll recomputes every agent's Route in topological order, each
// against the RightOfWay formed by merging the (already recomputed) routes
// of every agent before it in order (see predecessorsOf). Every agent is
// replanned, not only the new edge's transitive downstream set.
func replanAll(grid *core.Grid, byID map[core.AgentID]*core.Agent, order []core.AgentID, logger golog.Logger) (map[core.AgentID]core.Route, bool) {
	routes := make(map[core.AgentID]core.Route, len(order))
	for _, id := range order {
		preds := predecessorsOf(order, id)
		predAgents := make([]*core.Agent, len(preds))
		for i, p := range preds {
			predAgents[i] = &core.Agent{ID: p, Route: routes[p]}
		}
		row := core.RightOfWayFor(predAgents)

		route, err := PlanAgent(grid, byID[id], row, logger)
		if err != nil {
			return nil, false
		}
		routes[id] = route
	}
	return routes, true
}

// conflictingPair adapts the (agentID -> Route) snapshot a PBS node carries
// into the []*core.Agent shape FindConflictingPair expects, without
// mutating the real agents' Route fields.
func conflictingPair(ids []core.AgentID, routes map[core.AgentID]core.Route) *Conflict {
	snapshot := make([]*core.Agent, len(ids))
	for i, id := range ids {
		snapshot[i] = &core.Agent{ID: id, Route: routes[id]}
	}
	return FindConflictingPair(snapshot)
}

// PBS runs Priority-Based Search to completion, returning a conflict-free
// Route for every agent or core.ErrOutOfIdeas if no priority ordering
// admits one. A root-level planning failure (an agent with no reachable
// route at all, regardless of priority) is returned directly rather than
// folded into ErrOutOfIdeas, since no amount of reordering fixes it.
func PBS(grid *core.Grid, agents []*core.Agent, logger golog.Logger) (map[core.AgentID]core.Route, error) {
	ids := make([]core.AgentID, len(agents))
	byID := make(map[core.AgentID]*core.Agent, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
		byID[a.ID] = a
	}

	rootRoutes := make(map[core.AgentID]core.Route, len(agents))
	for _, a := range agents {
		route, err := PlanAgent(grid, a, core.NewRightOfWay(), logger)
		if err != nil {
			return nil, err
		}
		rootRoutes[a.ID] = route
	}

	frontier := &ideaHeap{}
	heap.Init(frontier)
	seq := 0
	push := func(idea *Idea) {
		heap.Push(frontier, &ideaEntry{idea: idea, seq: seq})
		seq++
	}

	push(&Idea{routes: rootRoutes, graph: newPriorityGraph(ids), cost: ideaCost(rootRoutes)})

	expansions := 0
	for frontier.Len() > 0 {
		entry := heap.Pop(frontier).(*ideaEntry)
		node := entry.idea
		expansions++

		conflict := conflictingPair(ids, node.routes)
		if conflict == nil {
			if logger != nil {
				logger.Infow("pbs: solution found", "expansions", expansions, "cost", node.cost)
			}
			return node.routes, nil
		}

		for _, orientation := range [2][2]core.AgentID{{conflict.A, conflict.B}, {conflict.B, conflict.A}} {
			u, v := orientation[0], orientation[1]
			nextGraph, order, ok := node.graph.withEdge(u, v)
			if !ok {
				continue
			}
			routes, ok := replanAll(grid, byID, order, logger)
			if !ok {
				continue
			}
			child := &Idea{routes: routes, graph: nextGraph, cost: ideaCost(routes)}
			if logger != nil {
				logger.Infow("pbs: branch accepted", "edge", u.String()+"->"+v.String(), "cost", child.cost)
			}
			push(child)
		}
	}

	return nil, core.ErrOutOfIdeas
}

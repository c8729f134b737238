// Package algo implements the two-layer MAPF planner: space-time A* for a
// single agent under a set of reservations, and Priority-Based Search
// (PBS) driving it across a handful of agents.
package algo

import (
	"container/heap"

	"github.com/edaniels/golog"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// state is a search node's (position, time): the space-time A* state space.
type state struct {
	pos core.Vertex
	t   int
}

// parentEntry is a side-table record of the state and action that first
// reached a given state at its best-known cost. Recording the predecessor
// this way, rather than a pointer on each open-set node, avoids building a
// deeply nested ownership chain while the open set is large.
type parentEntry struct {
	from   state
	action core.Action
}

// astarNode is an open-set entry.
type astarNode struct {
	state  state
	g      int
	f      int
	action core.Action // action taken to reach this node, for cost chaining
	index  int
}

type astarHeap []*astarNode

func (h astarHeap) Len() int           { return len(h) }
func (h astarHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h astarHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *astarHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *astarHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// heuristic is the squared-Euclidean distance to goal: non-admissible in
// general but consistent in practice with the 1/1/2 step costs on grids of
// the sizes this planner targets.
func heuristic(pos, goal core.Vertex) int {
	return pos.DistSquared(goal)
}

// violates reports whether moving from fromPos to toPos between fromT and
// toT conflicts with row: either a vertex conflict (row reserves toPos at
// toT) or an edge-swap (row holds toPos at fromT while being vacated to
// fromPos at the same moment we'd occupy it).
func violates(row *core.RightOfWay, fromPos, toPos core.Vertex, fromT, toT int) bool {
	if v, ok := row.At(toT); ok && v == toPos {
		return true
	}
	if v, ok := row.At(fromT); ok && v == toPos {
		if v2, ok2 := row.At(toT); ok2 && v2 == fromPos {
			return true
		}
	}
	return false
}

// SpaceTimeAStar finds an optimal Route for a single agent from start to
// goal on grid, respecting row's reservations. logger may be nil. Returns
// a *core.RouteNotFoundError if the open set is exhausted before reaching
// goal, or if start or goal is blocked.
func SpaceTimeAStar(grid *core.Grid, agent core.AgentID, start, goal core.Vertex, row *core.RightOfWay, logger golog.Logger) (core.Route, error) {
	notFound := &core.RouteNotFoundError{Agent: agent, Start: start, Goal: goal}

	if grid.IsBlocked(start) || grid.IsBlocked(goal) {
		return nil, notFound
	}
	if start == goal {
		return core.Route{{Pos: start, Time: 0}}, nil
	}

	open := &astarHeap{}
	heap.Init(open)

	parent := make(map[state]parentEntry)
	bestG := make(map[state]int)

	startState := state{pos: start, t: 0}
	bestG[startState] = 0
	heap.Push(open, &astarNode{state: startState, g: 0, f: heuristic(start, goal), action: core.ActionWait})

	maxTime := grid.FreeCellCount()
	expansions := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)
		expansions++

		if current.state.pos == goal {
			if logger != nil {
				logger.Debugw("astar: route found", "agent", string(agent), "expansions", expansions, "duration", current.state.t)
			}
			return reconstructRoute(current.state, parent), nil
		}

		// Exhaustion bound: any path longer than the number of free cells is
		// waiting forever or cycling and cannot be part of an optimal
		// route. Skipping such a node (rather than terminating the whole
		// search) still guarantees termination: a skipped node generates no
		// successors, so no state lies past maxTime+1, and a state is only
		// pushed again with a strictly lower g.
		if current.state.t > maxTime {
			continue
		}

		for _, a := range core.Actions() {
			nextPos := current.state.pos.Add(a.Delta())
			nextT := current.state.t + 1

			if grid.IsBlocked(nextPos) {
				continue
			}
			if violates(row, current.state.pos, nextPos, current.state.t, nextT) {
				continue
			}

			nextState := state{pos: nextPos, t: nextT}
			g := current.g + a.Cost(current.action)

			if prevBest, seen := bestG[nextState]; seen && prevBest <= g {
				continue
			}
			bestG[nextState] = g
			parent[nextState] = parentEntry{from: current.state, action: a}

			heap.Push(open, &astarNode{
				state:  nextState,
				g:      g,
				f:      g + heuristic(nextPos, goal),
				action: a,
			})
		}
	}

	if logger != nil {
		logger.Debugw("astar: open set exhausted", "agent", string(agent), "expansions", expansions)
	}
	return nil, notFound
}

func reconstructRoute(goal state, parent map[state]parentEntry) core.Route {
	var route core.Route
	for s, ok := goal, true; ok; {
		route = append(core.Route{{Pos: s.pos, Time: s.t}}, route...)
		var p parentEntry
		p, ok = parent[s]
		s = p.from
	}
	return route
}

package core

import (
	"errors"
	"fmt"
)

// ErrOutOfIdeas is returned by the PBS meta-planner when its frontier of
// priority-graph branches empties without finding a conflict-free set of
// routes. For the agent counts and map sizes this planner targets this
// means the instance genuinely has no solution, not that search gave up
// early.
var ErrOutOfIdeas = errors.New("mapf: exhausted all priority orderings without finding a conflict-free solution")

// RouteNotFoundError reports that space-time A* exhausted its open set
// before reaching Goal from Start. Span fields are filled in by the caller
// from the spans the parser (internal/parse) records (see cmd/mapfgrid) so
// a diagnostic can point back into the map file; they are left zero when planning was not driven by a parsed
// map (e.g. in unit tests).
type RouteNotFoundError struct {
	Agent       AgentID
	Start, Goal Vertex

	StartLine, StartCol int
	GoalLine, GoalCol   int
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route found for agent %s from %v to %v", e.Agent, e.Start, e.Goal)
}

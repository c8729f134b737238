// Package solve provides the Solver façade: a single entry point that
// takes an unsolved World and returns it with every agent's Route filled
// in by Priority-Based Search, returning (value, error) since this
// planner's failure modes (RouteNotFoundError, core.ErrOutOfIdeas) are
// meaningful to callers rather than a bare nil.
package solve

import (
	"github.com/edaniels/golog"

	"github.com/elektrokombinacija/mapf-grid-research/internal/algo"
	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// Solve runs PBS starting from each agent's unconstrained plan and
// returns world with every Agent.Route set to its conflict-free solution.
// world itself is mutated and returned for convenience; on error it is
// returned unmodified alongside the error.
func Solve(world *core.World, logger golog.Logger) (*core.World, error) {
	routes, err := algo.PBS(world.Grid, world.Agents, logger)
	if err != nil {
		return world, err
	}
	for _, a := range world.Agents {
		a.Route = routes[a.ID]
	}
	return world, nil
}

// UnconstrainedPlans returns each agent's Route as if it were alone on
// the grid, ignoring every other agent — the pre-PBS snapshot `--dump-
// conflicted` renders, and the starting point algo.PBS itself computes
// internally. Conflicts between these routes are expected and are not
// errors here.
func UnconstrainedPlans(world *core.World, logger golog.Logger) (map[core.AgentID]core.Route, error) {
	plans := make(map[core.AgentID]core.Route, len(world.Agents))
	for _, a := range world.Agents {
		route, err := algo.PlanAgent(world.Grid, a, core.NewRightOfWay(), logger)
		if err != nil {
			return nil, err
		}
		plans[a.ID] = route
	}
	return plans, nil
}

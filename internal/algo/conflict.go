package algo

import "github.com/elektrokombinacija/mapf-grid-research/internal/core"

// Conflict identifies a pair of agents whose current routes collide.
type Conflict struct {
	A, B core.AgentID
}

// FindConflictingPair scans agents for any pair whose routes conflict
// (core.Route.Conflicts, which covers all three collision classes: vertex,
// goal-hold, and edge-swap). Returns nil if the set of routes is already
// conflict-free. Agents are compared in a stable order so that, given the
// same input, the same pair is always reported first.
func FindConflictingPair(agents []*core.Agent) *Conflict {
	for i := 0; i < len(agents); i++ {
		for j := i + 1; j < len(agents); j++ {
			if agents[i].Route.Conflicts(agents[j].Route) {
				return &Conflict{A: agents[i].ID, B: agents[j].ID}
			}
		}
	}
	return nil
}

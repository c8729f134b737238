package algo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/elektrokombinacija/mapf-grid-research/internal/algo"
	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// PBSSuite exercises the meta-planner's richer invariants -- acyclicity
// is internal and covered in priority_test.go, so this suite asserts on
// what PBS promises its callers: conflict-freedom across the whole
// returned plan, or ErrOutOfIdeas when no priority ordering can deliver
// that.
type PBSSuite struct {
	suite.Suite
}

func (s *PBSSuite) agent(id byte, start, goal core.Vertex) *core.Agent {
	return &core.Agent{ID: core.AgentID(id), Start: start, Goal: goal, HasGoal: true}
}

func (s *PBSSuite) assertConflictFree(routes map[core.AgentID]core.Route) {
	ids := make([]core.AgentID, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			s.Require().Falsef(routes[a].Conflicts(routes[b]), "agents %c and %c conflict", a, b)
		}
	}
}

func (s *PBSSuite) TestSideStepCorridorFindsConflictFreePlan() {
	grid := core.NewGrid(10, 3, nil)
	agents := []*core.Agent{
		s.agent('A', core.Vertex{X: 0, Y: 0}, core.Vertex{X: 9, Y: 0}),
		s.agent('B', core.Vertex{X: 9, Y: 0}, core.Vertex{X: 0, Y: 0}),
	}
	routes, err := algo.PBS(grid, agents, nil)
	require.NoError(s.T(), err)
	s.assertConflictFree(routes)
}

func (s *PBSSuite) TestNarrowCorridorIsOutOfIdeas() {
	grid := core.NewGrid(10, 1, nil)
	agents := []*core.Agent{
		s.agent('A', core.Vertex{X: 0, Y: 0}, core.Vertex{X: 9, Y: 0}),
		s.agent('B', core.Vertex{X: 9, Y: 0}, core.Vertex{X: 0, Y: 0}),
	}
	_, err := algo.PBS(grid, agents, nil)
	require.True(s.T(), errors.Is(err, core.ErrOutOfIdeas))
}

func (s *PBSSuite) TestSharedGoalIsOutOfIdeas() {
	grid := core.NewGrid(5, 5, nil)
	agents := []*core.Agent{
		s.agent('A', core.Vertex{X: 0, Y: 0}, core.Vertex{X: 2, Y: 2}),
		s.agent('B', core.Vertex{X: 4, Y: 4}, core.Vertex{X: 2, Y: 2}),
	}
	_, err := algo.PBS(grid, agents, nil)
	require.True(s.T(), errors.Is(err, core.ErrOutOfIdeas))
}

func (s *PBSSuite) TestIdempotentOnAlreadySolvedRoutes() {
	grid := core.NewGrid(10, 3, nil)
	agents := []*core.Agent{
		s.agent('A', core.Vertex{X: 0, Y: 0}, core.Vertex{X: 9, Y: 0}),
		s.agent('B', core.Vertex{X: 9, Y: 0}, core.Vertex{X: 0, Y: 0}),
	}
	first, err := algo.PBS(grid, agents, nil)
	require.NoError(s.T(), err)

	firstCost := 0
	for _, r := range first {
		firstCost += r.Duration()
	}
	for _, a := range agents {
		a.Route = first[a.ID]
	}

	second, err := algo.PBS(grid, agents, nil)
	require.NoError(s.T(), err)
	secondCost := 0
	for _, r := range second {
		secondCost += r.Duration()
	}

	require.Equal(s.T(), firstCost, secondCost)
}

func (s *PBSSuite) TestGoallessAgentHoldsItsStart() {
	grid := core.NewGrid(5, 5, nil)
	agents := []*core.Agent{
		{ID: 'A', Start: core.Vertex{X: 2, Y: 2}},
		s.agent('B', core.Vertex{X: 0, Y: 0}, core.Vertex{X: 4, Y: 4}),
	}
	routes, err := algo.PBS(grid, agents, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), routes['A'], 1)
	require.Equal(s.T(), core.Vertex{X: 2, Y: 2}, routes['A'][0].Pos)
}

func TestPBSSuite(t *testing.T) {
	suite.Run(t, new(PBSSuite))
}

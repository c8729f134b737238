// Package sim replays a solved World tick by tick. It keeps a
// config-struct-plus-result-struct shape, scoped down to plain
// step/duration semantics: no field integration, no wall-clock pacing, no
// task/deadline/energy bookkeeping, since none of that survives into a
// world with one goal per agent and no task layer. Wall-clock pacing
// (the --fps flag) is the CLI's job, not the core's.
package sim

import "github.com/elektrokombinacija/mapf-grid-research/internal/core"

// Config selects what Simulator plays back.
type Config struct {
	World *core.World
}

// Simulator replays a solved World one tick at a time.
type Simulator struct {
	world *core.World
	tick  int
}

// NewSimulator returns a Simulator positioned at tick 0.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{world: cfg.World}
}

// Tick returns the current simulation tick.
func (s *Simulator) Tick() int { return s.tick }

// Duration returns the maximum route duration across every agent: the
// last tick of the plan. Done reports true after this many Step calls,
// which return ticks 0 through Duration()-1.
func (s *Simulator) Duration() int { return s.world.Duration() }

// Done reports whether every agent has reached the end of its route.
func (s *Simulator) Done() bool { return s.tick >= s.Duration() }

// Step returns every agent's position at the current tick, then advances
// the simulator by one tick. An agent whose route has already ended stays at its last
// (goal) position; an agent with no route at all stays put.
func (s *Simulator) Step() map[core.AgentID]core.Vertex {
	positions := make(map[core.AgentID]core.Vertex, len(s.world.Agents))
	for _, a := range s.world.Agents {
		if pos, ok := a.Route.At(s.tick); ok {
			positions[a.ID] = pos
		} else {
			positions[a.ID] = a.Start
		}
	}
	s.tick++
	return positions
}

// Reset rewinds the simulator to tick 0.
func (s *Simulator) Reset() { s.tick = 0 }

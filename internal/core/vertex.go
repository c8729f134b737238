// Package core defines the domain model for grid-based multi-agent
// path-finding: vertices, actions, the grid, routes, and the time-indexed
// right-of-way reservations that let one agent's route constrain another's.
package core

// Vertex is an integer grid coordinate. There are no implicit bounds on a
// Vertex; whether a coordinate is in range or blocked is a property of the
// Grid, not of the Vertex itself.
type Vertex struct {
	X, Y int
}

// Add returns the translation of v by delta.
func (v Vertex) Add(delta Vertex) Vertex {
	return Vertex{X: v.X + delta.X, Y: v.Y + delta.Y}
}

// Sub returns the unit-step Action whose delta equals v - w (the step that
// would take w to v), or ActionWait if v == w. Callers only use this for adjacent vertices; for non-adjacent
// pairs the result is meaningless.
func (v Vertex) Sub(w Vertex) Action {
	dx, dy := v.X-w.X, v.Y-w.Y
	for _, a := range allActions {
		if d := a.Delta(); d.X == dx && d.Y == dy {
			return a
		}
	}
	return ActionWait
}

// DistSquared returns the squared Euclidean distance between v and w, used
// as the space-time A* heuristic (see heuristic in astar.go).
func (v Vertex) DistSquared(w Vertex) int {
	dx, dy := v.X-w.X, v.Y-w.Y
	return dx*dx + dy*dy
}

package core

// AgentID names an agent; the map file format restricts this to 'A'..'D'.
type AgentID byte

// Agent is a mobile entity with a start cell, an optional goal cell, and
// (once planned) a Route from one to the other.
type Agent struct {
	ID    AgentID
	Start Vertex
	Goal  Vertex
	// HasGoal distinguishes an agent with no assigned goal (Boundary case:
	// such an agent never needs to move) from one whose goal happens to be
	// its start.
	HasGoal bool
	Route   Route
}

func (id AgentID) String() string { return string(rune(id)) }

// RightOfWayFor builds the RightOfWay an agent with the given direct and
// transitive predecessors should plan against: the merge of all of their
// current routes, in the order given.
func RightOfWayFor(predecessors []*Agent) *RightOfWay {
	row := NewRightOfWay()
	for _, p := range predecessors {
		row.Merge(p.Route)
	}
	return row
}

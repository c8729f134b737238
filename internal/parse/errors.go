package parse

import "fmt"

// ErrorKind distinguishes the four ways a map file can be malformed.
type ErrorKind int

const (
	// InvalidCell is raised on any glyph other than space, an obstacle
	// glyph, an uppercase start letter A-D, or a lowercase goal letter a-d.
	InvalidCell ErrorKind = iota
	// DuplicateAgent is raised when the same start letter appears twice.
	DuplicateAgent
	// DuplicateGoal is raised when the same goal letter appears twice.
	DuplicateGoal
	// NoAgentForGoal is raised when a goal letter has no matching start.
	NoAgentForGoal
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCell:
		return "invalid cell"
	case DuplicateAgent:
		return "duplicate agent"
	case DuplicateGoal:
		return "duplicate goal"
	case NoAgentForGoal:
		return "goal without matching agent"
	default:
		return "unknown parse error"
	}
}

// Error reports a malformed map file. Line and Col are 0-based and,
// for InvalidCell, point at the offending glyph; for the duplicate kinds,
// they point at the second (conflicting) occurrence; for NoAgentForGoal,
// they point at the goal glyph.
type Error struct {
	Kind    ErrorKind
	Line    int
	Col     int
	Glyph   rune
	AgentID byte
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCell:
		return fmt.Sprintf("parse: invalid cell %q at line %d, col %d", e.Glyph, e.Line, e.Col)
	case DuplicateAgent:
		return fmt.Sprintf("parse: duplicate agent %q at line %d, col %d", e.AgentID, e.Line, e.Col)
	case DuplicateGoal:
		return fmt.Sprintf("parse: duplicate goal %q at line %d, col %d", e.AgentID, e.Line, e.Col)
	case NoAgentForGoal:
		return fmt.Sprintf("parse: goal %q at line %d, col %d has no matching agent", e.AgentID, e.Line, e.Col)
	default:
		return fmt.Sprintf("parse: %s at line %d, col %d", e.Kind, e.Line, e.Col)
	}
}

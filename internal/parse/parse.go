// Package parse reads the text map file format into a core.Grid and a
// set of core.Agents. It follows a typed, specific-error philosophy —
// one sentinel or typed error per failure kind, never a bare
// fmt.Errorf("bad input") — matching lvlath's own errors.go files.
package parse

import (
	"bufio"
	"io"
	"unicode"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// obstacleASCII and obstacleBlock are the two ways a map file may spell "blocked": an
// ASCII '#' for editors that can't type the Unicode block glyph.
const (
	obstacleASCII = '#'
	obstacleBlock = '█'
)

// Span is a 0-based (line, col) location in the source map file, kept
// alongside a parsed Agent so a later RouteNotFoundError can point back
// into the file that produced it.
type Span struct {
	Line, Col int
}

// Result is everything Parse recovers from a map file.
type Result struct {
	Grid   *core.Grid
	Agents []*core.Agent

	StartSpan map[core.AgentID]Span
	GoalSpan  map[core.AgentID]Span
}

// Parse reads a map file from r. The grid's width is the longest row's
// length plus one (ragged rows are implicitly padded with free cells);
// its height is the number of rows.
func Parse(r io.Reader) (*Result, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	runeLines := make([][]rune, len(lines))
	for i, line := range lines {
		runeLines[i] = []rune(line)
	}

	width := 0
	for _, line := range runeLines {
		if len(line) > width {
			width = len(line)
		}
	}
	width++
	height := len(lines)

	blocked := make(map[core.Vertex]struct{})
	starts := make(map[core.AgentID]core.Vertex)
	goals := make(map[core.AgentID]core.Vertex)
	startSpan := make(map[core.AgentID]Span)
	goalSpan := make(map[core.AgentID]Span)

	for y, line := range runeLines {
		for x, ch := range line {
			v := core.Vertex{X: x, Y: y}

			switch {
			case ch == ' ':
				// free cell

			case ch == obstacleASCII || ch == obstacleBlock:
				blocked[v] = struct{}{}

			case unicode.IsUpper(ch) && isAgentLetter(ch):
				id := core.AgentID(unicode.ToUpper(ch))
				if _, dup := starts[id]; dup {
					return nil, &Error{Kind: DuplicateAgent, Line: y, Col: x, AgentID: byte(id)}
				}
				starts[id] = v
				startSpan[id] = Span{Line: y, Col: x}

			case unicode.IsLower(ch) && isAgentLetter(ch):
				id := core.AgentID(unicode.ToUpper(ch))
				if _, dup := goals[id]; dup {
					return nil, &Error{Kind: DuplicateGoal, Line: y, Col: x, AgentID: byte(id)}
				}
				goals[id] = v
				goalSpan[id] = Span{Line: y, Col: x}

			default:
				return nil, &Error{Kind: InvalidCell, Line: y, Col: x, Glyph: ch}
			}
		}
	}

	for _, id := range sortedAgentIDs(goals) {
		if _, ok := starts[id]; !ok {
			sp := goalSpan[id]
			return nil, &Error{Kind: NoAgentForGoal, Line: sp.Line, Col: sp.Col, AgentID: byte(id)}
		}
	}

	grid := core.NewGrid(width, height, blocked)

	agents := make([]*core.Agent, 0, len(starts))
	for _, id := range sortedAgentIDs(starts) {
		goal, hasGoal := goals[id]
		agents = append(agents, &core.Agent{
			ID:      id,
			Start:   starts[id],
			Goal:    goal,
			HasGoal: hasGoal,
		})
	}

	return &Result{
		Grid:      grid,
		Agents:    agents,
		StartSpan: startSpan,
		GoalSpan:  goalSpan,
	}, nil
}

func isAgentLetter(ch rune) bool {
	u := unicode.ToUpper(ch)
	return u >= 'A' && u <= 'D'
}

func sortedAgentIDs(m map[core.AgentID]core.Vertex) []core.AgentID {
	ids := make([]core.AgentID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

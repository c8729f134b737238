// Package render draws a World to a terminal, using plain text plus
// github.com/fatih/color: a fixed color per semantic element, here one
// color per agent letter.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

// obstacleGlyph and freeGlyph are the two background glyphs; agent
// glyphs overwrite them cell by cell.
const (
	obstacleGlyph = '█'
	freeGlyph     = '.'
)

// palette assigns each agent letter a fixed terminal color, cycling if
// there were ever more agents than colors (there never are, at
// core.MaxAgents = 4).
var palette = []*color.Color{
	color.New(color.FgRed, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgCyan, color.Bold),
}

func colorFor(id core.AgentID, agents []*core.Agent) *color.Color {
	for i, a := range agents {
		if a.ID == id {
			return palette[i%len(palette)]
		}
	}
	return color.New(color.FgWhite)
}

// Frame writes one tick's grid state to w: every agent drawn at the
// given positions, obstacles as solid blocks, everything else free.
func Frame(w io.Writer, grid *core.Grid, agents []*core.Agent, positions map[core.AgentID]core.Vertex) {
	occupied := make(map[core.Vertex]core.AgentID, len(positions))
	for id, v := range positions {
		occupied[v] = id
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			v := core.Vertex{X: x, Y: y}
			if id, ok := occupied[v]; ok {
				colorFor(id, agents).Fprint(w, string(rune(id)))
				continue
			}
			if grid.IsBlocked(v) {
				fmt.Fprint(w, string(rune(obstacleGlyph)))
				continue
			}
			fmt.Fprint(w, string(rune(freeGlyph)))
		}
		fmt.Fprintln(w)
	}
}

// World renders world's final, solved state: every agent at its Goal, or
// at its Start if it has no goal.
func World(w io.Writer, world *core.World) {
	positions := make(map[core.AgentID]core.Vertex, len(world.Agents))
	for _, a := range world.Agents {
		if a.HasGoal {
			positions[a.ID] = a.Goal
		} else {
			positions[a.ID] = a.Start
		}
	}
	Frame(w, world.Grid, world.Agents, positions)
}

// UnconstrainedPlans renders the pre-PBS per-agent plans overlaid on one
// frame, highlighting any cell more than one agent occupies at the same
// tick. t is the tick to render.
func UnconstrainedPlans(w io.Writer, grid *core.Grid, agents []*core.Agent, plans map[core.AgentID]core.Route, t int) {
	positions := make(map[core.AgentID]core.Vertex, len(plans))
	counts := make(map[core.Vertex]int, len(plans))
	for id, route := range plans {
		if pos, ok := route.At(t); ok {
			positions[id] = pos
			counts[pos]++
		}
	}

	conflictMarker := color.New(color.FgWhite, color.BgRed, color.Bold)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			v := core.Vertex{X: x, Y: y}
			if counts[v] > 1 {
				conflictMarker.Fprint(w, "*")
				continue
			}
			if id, ok := vertexAgent(v, positions); ok {
				colorFor(id, agents).Fprint(w, string(rune(id)))
				continue
			}
			if grid.IsBlocked(v) {
				fmt.Fprint(w, string(rune(obstacleGlyph)))
				continue
			}
			fmt.Fprint(w, string(rune(freeGlyph)))
		}
		fmt.Fprintln(w)
	}
}

func vertexAgent(v core.Vertex, positions map[core.AgentID]core.Vertex) (core.AgentID, bool) {
	for id, pos := range positions {
		if pos == v {
			return id, true
		}
	}
	return 0, false
}

package sim

import (
	"testing"

	"github.com/elektrokombinacija/mapf-grid-research/internal/core"
)

func straightRoute(start core.Vertex, dx, dy, n int) core.Route {
	r := make(core.Route, 0, n+1)
	for t := 0; t <= n; t++ {
		r = append(r, core.Location{Pos: core.Vertex{X: start.X + dx*t, Y: start.Y + dy*t}, Time: t})
	}
	return r
}

func TestStepAdvancesAndHoldsAtGoal(t *testing.T) {
	grid := core.NewGrid(5, 1, nil)
	a := &core.Agent{ID: 'A', Start: core.Vertex{X: 0, Y: 0}, Goal: core.Vertex{X: 2, Y: 0}, HasGoal: true, Route: straightRoute(core.Vertex{X: 0, Y: 0}, 1, 0, 2)}
	world, err := core.NewWorld(grid, []*core.Agent{a})
	if err != nil {
		t.Fatal(err)
	}

	sim := NewSimulator(Config{World: world})
	if got := sim.Duration(); got != 2 {
		t.Fatalf("Duration() = %d, want 2", got)
	}

	want := []core.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}}
	for i, w := range want {
		got := sim.Step()
		if got['A'] != w {
			t.Errorf("tick %d: position = %v, want %v", i, got['A'], w)
		}
	}
}

func TestDoneAfterDuration(t *testing.T) {
	grid := core.NewGrid(3, 1, nil)
	a := &core.Agent{ID: 'A', Start: core.Vertex{X: 0, Y: 0}, Goal: core.Vertex{X: 1, Y: 0}, HasGoal: true, Route: straightRoute(core.Vertex{X: 0, Y: 0}, 1, 0, 1)}
	world, _ := core.NewWorld(grid, []*core.Agent{a})
	sim := NewSimulator(Config{World: world})

	if sim.Done() {
		t.Fatal("Done() true before any Step")
	}
	sim.Step()
	if !sim.Done() {
		t.Error("Done() false after reaching duration")
	}
	sim.Reset()
	if sim.Done() {
		t.Error("Done() true after Reset")
	}
}

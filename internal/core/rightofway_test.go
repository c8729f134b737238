package core

import "testing"

func TestRightOfWayRoundTrip(t *testing.T) {
	r := straight(Vertex{X: 0, Y: 0}, 1, 0, 4)
	row := NewRightOfWayFromRoute(r)

	for t2 := 0; t2 <= r.Duration(); t2++ {
		want, _ := r.At(t2)
		got, ok := row.At(t2)
		if !ok || got != want {
			t.Errorf("At(%d) = %v, %v; want %v", t2, got, ok, want)
		}
	}
}

func TestRightOfWayPermanentTail(t *testing.T) {
	r := straight(Vertex{X: 0, Y: 0}, 1, 0, 2) // ends at (2,0) at t=2
	row := NewRightOfWayFromRoute(r)

	v, ok := row.At(100)
	if !ok || v != (Vertex{X: 2, Y: 0}) {
		t.Errorf("At(100) = %v, %v; want permanent goal-hold at (2,0)", v, ok)
	}
}

func TestRightOfWayMergeLastWriteWins(t *testing.T) {
	row := NewRightOfWay()
	row.Merge(Route{
		{Pos: Vertex{X: 0, Y: 0}, Time: 0},
		{Pos: Vertex{X: 1, Y: 0}, Time: 1},
	})
	row.Merge(Route{
		{Pos: Vertex{X: 5, Y: 5}, Time: 0},
		{Pos: Vertex{X: 6, Y: 6}, Time: 1},
	})

	v, ok := row.At(0)
	if !ok || v != (Vertex{X: 5, Y: 5}) {
		t.Errorf("At(0) after merge = %v, %v; want the later route's entry", v, ok)
	}
}

package grid

import (
	"math"
	"testing"

	"github.com/DilaraLiyanage/forestplanner/pkg/geo"
)

func mustGrid(t *testing.T, w, h int, halfExtent float64) Grid {
	t.Helper()
	g, err := New(w, h, halfExtent)
	if err != nil {
		t.Fatalf("New(%d, %d, %f): %v", w, h, halfExtent, err)
	}
	return g
}

func TestNewRejectsDegenerateDimensions(t *testing.T) {
	cases := []struct {
		w, h       int
		halfExtent float64
	}{
		{0, 50, 10},
		{50, 0, 10},
		{-1, 50, 10},
		{50, 50, 0},
		{50, 50, -10},
	}
	for _, c := range cases {
		if _, err := New(c.w, c.h, c.halfExtent); err == nil {
			t.Errorf("New(%d, %d, %f): expected error", c.w, c.h, c.halfExtent)
		}
	}
}

func TestToWorldCorners(t *testing.T) {
	g := mustGrid(t, 50, 50, 10)
	origin := g.ToWorld(Cell{0, 0})
	if origin.X != -10 || origin.Z != -10 {
		t.Errorf("cell (0,0) expected world (-10,-10), got (%f,%f)", origin.X, origin.Z)
	}
	center := g.ToWorld(g.Center())
	if center.X != 0 || center.Z != 0 {
		t.Errorf("center cell expected world (0,0), got (%f,%f)", center.X, center.Z)
	}
}

func TestRoundTripAllCells(t *testing.T) {
	g := mustGrid(t, 50, 50, 10)
	for gx := 0; gx < g.Width; gx++ {
		for gy := 0; gy < g.Height; gy++ {
			c := Cell{X: gx, Y: gy}
			back := g.ToGrid(g.ToWorld(c))
			if back != c {
				t.Fatalf("round trip failed: %v -> %v", c, back)
			}
		}
	}
}

func TestToGridClampsOutOfBounds(t *testing.T) {
	g := mustGrid(t, 50, 50, 10)
	c := g.ToGrid(geo.Pt(100, -100))
	if c.X != 49 || c.Y != 0 {
		t.Errorf("expected clamped cell (49,0), got %v", c)
	}
}

func TestCellWorldSize(t *testing.T) {
	g := mustGrid(t, 50, 50, 10)
	if math.Abs(g.CellWorldSize()-0.4) > 1e-9 {
		t.Errorf("expected cell size 0.4, got %f", g.CellWorldSize())
	}
}

func TestCellSet(t *testing.T) {
	s := NewCellSet()
	s.Add(Cell{3, 4})
	s.Add(Cell{3, 4})
	if !s.Has(Cell{3, 4}) {
		t.Error("expected set to contain (3,4)")
	}
	if s.Has(Cell{4, 3}) {
		t.Error("expected set not to contain (4,3)")
	}
	if s.Len() != 1 {
		t.Errorf("expected len 1, got %d", s.Len())
	}
}

// --- Line rasterization tests ---

func TestLineEndpoints(t *testing.T) {
	cases := []struct{ a, b Cell }{
		{Cell{0, 0}, Cell{10, 3}},
		{Cell{10, 3}, Cell{0, 0}},
		{Cell{5, 5}, Cell{5, 5}},
		{Cell{0, 0}, Cell{0, 9}},
		{Cell{49, 0}, Cell{25, 25}},
		{Cell{-3, 7}, Cell{12, -4}},
	}
	for _, c := range cases {
		cells := Line(c.a, c.b)
		if cells[0] != c.a {
			t.Errorf("line %v->%v starts at %v", c.a, c.b, cells[0])
		}
		if cells[len(cells)-1] != c.b {
			t.Errorf("line %v->%v ends at %v", c.a, c.b, cells[len(cells)-1])
		}
	}
}

func TestLineStepAndLength(t *testing.T) {
	cases := []struct{ a, b Cell }{
		{Cell{0, 0}, Cell{10, 3}},
		{Cell{7, 2}, Cell{-5, 20}},
		{Cell{0, 0}, Cell{0, 0}},
		{Cell{3, 3}, Cell{3, 12}},
	}
	for _, c := range cases {
		cells := Line(c.a, c.b)
		wantLen := max(abs(c.b.X-c.a.X), abs(c.b.Y-c.a.Y)) + 1
		if len(cells) != wantLen {
			t.Errorf("line %v->%v length %d, expected %d", c.a, c.b, len(cells), wantLen)
		}
		for i := 1; i < len(cells); i++ {
			dx := abs(cells[i].X - cells[i-1].X)
			dy := abs(cells[i].Y - cells[i-1].Y)
			if dx > 1 || dy > 1 {
				t.Errorf("line %v->%v jumps from %v to %v", c.a, c.b, cells[i-1], cells[i])
			}
			if dx == 0 && dy == 0 {
				t.Errorf("line %v->%v repeats cell %v", c.a, c.b, cells[i])
			}
		}
	}
}

// Package grid maps a discrete design grid onto a continuous world plane.
//
// The design grid is a W×H array of cells; the world is a fixed square
// [-S, S]² in the XZ plane. Path routing and tree placement both work
// through this mapping so that discrete rasterized features and
// continuously sampled features stay aligned.
package grid

import (
	"fmt"
	"math"

	"github.com/DilaraLiyanage/forestplanner/pkg/geo"
)

// Cell is a discrete design-grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid defines the design grid dimensions and the world half-extent.
type Grid struct {
	Width      int
	Height     int
	HalfExtent float64
}

// New creates a grid, rejecting degenerate dimensions.
func New(width, height int, halfExtent float64) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if halfExtent <= 0 {
		return Grid{}, fmt.Errorf("world half-extent must be positive, got %f", halfExtent)
	}
	return Grid{Width: width, Height: height, HalfExtent: halfExtent}, nil
}

// Span returns the full world span (2S).
func (g Grid) Span() float64 {
	return 2 * g.HalfExtent
}

// CellWorldSize returns the world-space size of one grid cell along X.
func (g Grid) CellWorldSize() float64 {
	return g.Span() / float64(g.Width)
}

// Center returns the center cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether c lies within grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Clamp clamps c to grid bounds.
func (g Grid) Clamp(c Cell) Cell {
	if c.X < 0 {
		c.X = 0
	}
	if c.X > g.Width-1 {
		c.X = g.Width - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y > g.Height-1 {
		c.Y = g.Height - 1
	}
	return c
}

// ToWorld maps a grid cell to its world-space position.
func (g Grid) ToWorld(c Cell) geo.Point2D {
	span := g.Span()
	return geo.Point2D{
		X: float64(c.X)/float64(g.Width)*span - g.HalfExtent,
		Z: float64(c.Y)/float64(g.Height)*span - g.HalfExtent,
	}
}

// ToGrid maps a world-space position to the nearest grid cell, clamped to
// bounds. It is the rounded inverse of ToWorld.
func (g Grid) ToGrid(p geo.Point2D) Cell {
	span := g.Span()
	gx := int(math.Round((p.X + g.HalfExtent) / span * float64(g.Width)))
	gy := int(math.Round((p.Z + g.HalfExtent) / span * float64(g.Height)))
	return g.Clamp(Cell{X: gx, Y: gy})
}

// CellSet is a lookup set of grid cells.
type CellSet map[Cell]struct{}

// NewCellSet creates an empty cell set.
func NewCellSet() CellSet {
	return make(CellSet)
}

// Add inserts c into the set.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int {
	return len(s)
}

// Package routing generates the discrete path network: straight paths
// rasterized on the design grid from scattered start cells to the central
// hub cell.
package routing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/DilaraLiyanage/forestplanner/pkg/grid"
	"github.com/DilaraLiyanage/forestplanner/pkg/validation"
)

// PathSegment represents one routed path as its ordered endpoint cells.
// Clear is reserved for future obstruction marking and is always true for
// now.
type PathSegment struct {
	A     grid.Cell `json:"a"`
	B     grid.Cell `json:"b"`
	Clear bool      `json:"clear"`
}

// maxStartAttempts bounds the random start-cell sampling before falling
// back to the deterministic edge construction.
const maxStartAttempts = 4000

// Route generates count paths from sampled start cells to the hub cell.
// Start cells are sampled uniformly; a cell failing the outside test is
// rejected. If no valid start is found within the attempt budget, a
// deterministic fallback projects a random angle to the far edge of the
// grid and clamps to bounds, so paths are always produced.
//
// It returns the path segments plus the set of all rasterized cells, which
// the placement engine uses for exclusion.
func Route(count int, g grid.Grid, hub grid.Cell, outside func(grid.Cell) bool, rng *rand.Rand) ([]PathSegment, grid.CellSet, *validation.Report) {
	report := validation.NewReport()

	paths := make([]PathSegment, 0, count)
	pathCells := grid.NewCellSet()

	for i := 0; i < count; i++ {
		start := sampleStart(g, hub, outside, rng)
		for _, c := range grid.Line(start, hub) {
			pathCells.Add(c)
		}
		paths = append(paths, PathSegment{A: start, B: hub, Clear: true})
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelSpatial,
		Message: fmt.Sprintf("routed %d paths to hub (%d,%d), %d grid cells rasterized",
			len(paths), hub.X, hub.Y, pathCells.Len()),
	})
	return paths, pathCells, report
}

// sampleStart picks a start cell outside the exclusion boundary. Random
// sampling first; on exhaustion, project a random angle from the hub to
// the far edge of the grid and clamp.
func sampleStart(g grid.Grid, hub grid.Cell, outside func(grid.Cell) bool, rng *rand.Rand) grid.Cell {
	for attempt := 0; attempt < maxStartAttempts; attempt++ {
		cand := grid.Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		if outside == nil || outside(cand) {
			return cand
		}
	}

	ang := rng.Float64() * 2 * math.Pi
	r := float64(max(hub.X, g.Width-1-hub.X, hub.Y, g.Height-1-hub.Y)) - 1
	cand := grid.Cell{
		X: hub.X + int(math.Round(r*math.Cos(ang))),
		Y: hub.Y + int(math.Round(r*math.Sin(ang))),
	}
	return g.Clamp(cand)
}

package layout

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/DilaraLiyanage/forestplanner/pkg/geo"
	"github.com/DilaraLiyanage/forestplanner/pkg/grid"
	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
	"github.com/DilaraLiyanage/forestplanner/pkg/validation"
)

// TreeSize classifies a planted tree.
type TreeSize int

const (
	SizeSmall TreeSize = iota
	SizeMedium
	SizeTall
)

func (s TreeSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeTall:
		return "tall"
	}
	return "unknown"
}

// MarshalJSON emits the size as its lowercase name.
func (s TreeSize) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Tree is one placed tree. OuterMargin and HubGap record the radial
// clearances at placement time; rescaling preserves them.
type Tree struct {
	ID          string      `json:"id"`
	Position    geo.Point2D `json:"position"`
	Size        TreeSize    `json:"size"`
	OuterMargin float64     `json:"outer_margin"`
	HubGap      float64     `json:"hub_gap"`
}

// placementGap is the extra radial clearance beyond the unscaled outer
// hedge radius.
const placementGap = 0.20

const (
	placementPasses      = 8
	attemptsPerTreeTotal = 600
)

// PlaceTrees scatters targets.Total() trees over the world via rejection
// sampling. A candidate is rejected when it falls in a forbidden hedge
// region, closer to the hub than the fixed placement floor, on a path
// cell, or within the minimum spacing of an already placed tree. Sizes
// fill greedily small, then medium, then tall. Spacing stays constant
// across all passes.
//
// If the attempt budget runs out short of the target, the shortfall is
// reported as a warning and the partial result stands.
func PlaceTrees(targets spec.TreesDef, g grid.Grid, pathCells grid.CellSet, hedges *Hedges, hubFootprint float64, rng *rand.Rand) ([]Tree, *validation.Report) {
	report := validation.NewReport()

	targetTotal := targets.Total()
	trees := make([]Tree, 0, targetTotal)

	minR := hedges.BaseOuterRadius() + placementGap
	spacing := targets.Spacing
	half := g.HalfExtent
	span := g.Span()

	sPlaced, mPlaced := 0, 0
	for pass := 0; pass < placementPasses && len(trees) < targetTotal; pass++ {
		maxAttempts := targetTotal * attemptsPerTreeTotal
		for attempts := 0; len(trees) < targetTotal && attempts < maxAttempts; attempts++ {
			p := geo.Pt(rng.Float64()*span-half, rng.Float64()*span-half)
			if hedges.Forbidden(p) {
				continue
			}
			r := p.Length()
			if r < minR {
				continue
			}
			if pathCells.Has(g.ToGrid(p)) {
				continue
			}
			if tooClose(trees, p, spacing) {
				continue
			}

			size := SizeTall
			switch {
			case sPlaced < targets.Small:
				size = SizeSmall
				sPlaced++
			case mPlaced < targets.Medium:
				size = SizeMedium
				mPlaced++
			}

			trees = append(trees, Tree{
				ID:          uuid.NewString(),
				Position:    p,
				Size:        size,
				OuterMargin: max0(r - hedges.OuterRadius()),
				HubGap:      max0(r - hubFootprint),
			})
		}
	}

	tPlaced := len(trees) - sPlaced - mPlaced
	report.AddInfo(validation.Result{
		Level: validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d trees (small=%d medium=%d tall=%d) at spacing %.2f",
			len(trees), sPlaced, mPlaced, tPlaced, spacing),
	})
	if len(trees) < targetTotal {
		report.AddWarning(validation.Result{
			Level: validation.LevelSpatial,
			Message: fmt.Sprintf("constraints left %d of %d trees unplaced",
				targetTotal-len(trees), targetTotal),
			Suggestions: []string{"reduce tree spacing or tree counts", "shrink the hedge rings"},
		})
	}
	return trees, report
}

func tooClose(trees []Tree, p geo.Point2D, spacing float64) bool {
	s2 := spacing * spacing
	for _, t := range trees {
		d := t.Position.Sub(p)
		if d.X*d.X+d.Z*d.Z < s2 {
			return true
		}
	}
	return false
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

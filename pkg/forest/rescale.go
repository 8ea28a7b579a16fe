package forest

import (
	"math"

	"github.com/DilaraLiyanage/forestplanner/pkg/layout"
)

// ScaleResult reports the outcome of a hub rescale.
type ScaleResult struct {
	Requested  float64 `json:"requested"`
	Applied    float64 `json:"applied"`
	Clamped    bool    `json:"clamped"`
	TreesMoved int     `json:"trees_moved"`
}

// ApplyHubScale sets the hub scale to target, clamping it to the allowed
// range and away from the inner hedge ring, then rebuilds the hedge
// geometry and annulus and slides every tree along its radial direction so
// each keeps both its recorded hub gap and its outer hedge margin.
func (s *Session) ApplyHubScale(target float64) ScaleResult {
	res := ScaleResult{Requested: target}

	applied := target
	if applied < hubScaleMin {
		applied = hubScaleMin
		res.Clamped = true
	} else if applied > hubScaleMax {
		applied = hubScaleMax
		res.Clamped = true
	}

	// Keep the hub footprint clear of the scaled inner hedge ring.
	hedgeScale := applied * hedgeScaleFactor
	innerScaled := s.cfg.Hedges.Inner.RadiusFrom * s.cfg.Hub.FootprintRadius * hedgeScale
	foot := s.hubRadius * applied * footprintFactor
	if foot >= innerScaled*hubClearFrac {
		applied = math.Max(hubScaleMin, innerScaled*hubClearFrac/(s.hubRadius*footprintFactor))
		res.Clamped = true
	}

	s.hubScale = applied
	res.Applied = applied

	s.hedges = layout.NewHedges(s.cfg.Hedges, s.cfg.Hub.FootprintRadius, s.hubScale*hedgeScaleFactor)
	s.rebuildAnnulus()
	res.TreesMoved = s.repositionTrees()
	return res
}

// Bounds for the hub base radius control.
const (
	hubRadiusMin = 0.05
	hubRadiusMax = 8.0
)

// AdjustHubRadius steps the hub base radius by delta and reflows the
// dependent geometry the same way a rescale does.
func (s *Session) AdjustHubRadius(delta float64) ScaleResult {
	r := s.hubRadius + delta
	if r < hubRadiusMin {
		r = hubRadiusMin
	} else if r > hubRadiusMax {
		r = hubRadiusMax
	}
	s.hubRadius = r
	return s.ApplyHubScale(s.hubScale)
}

// repositionTrees slides each tree along its existing radial direction to
// the radius that preserves its recorded hub gap, or its outer hedge
// margin when that lies further out. Trees at the exact center have no
// direction and stay put. Returns how many trees moved.
func (s *Session) repositionTrees() int {
	newFoot := s.HubFootprint()
	newOuter := s.hedges.OuterRadius()

	moved := 0
	for i := range s.trees {
		p := s.trees[i].Position
		r := p.Length()
		if r <= 1e-5 {
			continue
		}
		desired := newFoot + s.trees[i].HubGap
		if hedgeDesired := newOuter + s.trees[i].OuterMargin; hedgeDesired > desired {
			desired = hedgeDesired
		}
		if math.Abs(desired-r) > 1e-9 {
			moved++
		}
		s.trees[i].Position = p.Scale(desired / r)
	}
	return moved
}

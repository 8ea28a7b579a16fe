// Package forest orchestrates a full layout session: it maps the design
// grid into world space, routes paths to the hub, builds the hedge rings
// and annulus band, places the trees and keeps everything consistent under
// hub rescaling.
package forest

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DilaraLiyanage/forestplanner/pkg/grid"
	"github.com/DilaraLiyanage/forestplanner/pkg/layout"
	"github.com/DilaraLiyanage/forestplanner/pkg/routing"
	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
	"github.com/DilaraLiyanage/forestplanner/pkg/validation"
)

const (
	// hedgeScaleFactor keeps the hedge rings slightly smaller than the
	// hub's own scale.
	hedgeScaleFactor = 0.8

	// footprintFactor pads the hub base radius into its ground footprint.
	footprintFactor = 1.1

	// hubScaleMin and hubScaleMax bound the hub scale.
	hubScaleMin = 0.2
	hubScaleMax = 3.0

	// hubClearFrac is how close the hub footprint may get to the scaled
	// inner hedge ring before the scale is clamped back.
	hubClearFrac = 0.95

	// annulusEdgeGap shrinks the annulus outer edge just inside the hedge
	// ring; annulusMinWidth keeps the band from collapsing.
	annulusEdgeGap  = 0.02
	annulusMinWidth = 0.05
)

// Session owns all layout state for one forest. It is not safe for
// concurrent use; callers serialize access.
type Session struct {
	cfg *spec.ForestSpec

	grid    grid.Grid
	hubCell grid.Cell

	paths     []routing.PathSegment
	pathCells grid.CellSet
	hedges    *layout.Hedges
	annulus   *layout.Annulus
	trees     []layout.Tree

	hubRadius float64
	hubScale  float64

	rng    *rand.Rand
	report *validation.Report
}

// NewSession validates the configuration, builds the session and runs the
// initial generation. A configuration failing schema validation returns
// the report alongside the error.
func NewSession(cfg *spec.ForestSpec) (*Session, *validation.Report, error) {
	report := validation.ValidateSchema(cfg)
	if !report.Valid {
		return nil, report, fmt.Errorf("invalid forest spec: %s", report.Summary)
	}

	g, err := grid.New(cfg.Grid.Width, cfg.Grid.Height, spec.WorldHalfExtent)
	if err != nil {
		return nil, report, fmt.Errorf("building design grid: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		grid:      g,
		hubCell:   g.Center(),
		hubRadius: cfg.Hub.Radius,
		hubScale:  1,
	}
	s.Generate()
	return s, report, nil
}

// Generate (re)builds the whole layout from the configuration: hedges at
// the current scale, paths to the hub, the annulus band and the placed
// trees. Existing layout state is discarded.
func (s *Session) Generate() {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	s.report = validation.NewReport()

	s.hedges = layout.NewHedges(s.cfg.Hedges, s.cfg.Hub.FootprintRadius, s.hubScale*hedgeScaleFactor)

	outside := func(c grid.Cell) bool {
		return !s.hedges.Forbidden(s.grid.ToWorld(c))
	}
	paths, pathCells, routeReport := routing.Route(s.cfg.Paths.Count, s.grid, s.hubCell, outside, s.rng)
	s.paths = paths
	s.pathCells = pathCells
	s.report.Merge(routeReport)

	s.rebuildAnnulus()

	trees, placeReport := layout.PlaceTrees(s.cfg.Trees, s.grid, s.pathCells, s.hedges, s.HubFootprint(), s.rng)
	s.trees = trees
	s.report.Merge(placeReport)
}

// Reset restores the hub to its configured radius and unit scale and
// regenerates the layout.
func (s *Session) Reset() {
	s.hubRadius = s.cfg.Hub.Radius
	s.hubScale = 1
	s.Generate()
}

// rebuildAnnulus reconstructs the band between the hub footprint and the
// hedge ring. A degenerate or too-sparse result keeps the previous band.
func (s *Session) rebuildAnnulus() {
	inner := s.HubFootprint()
	outer := s.hedges.OuterRadius() - annulusEdgeGap
	if outer < inner+annulusMinWidth {
		outer = inner + annulusMinWidth
	}
	if a := layout.BuildAnnulus(inner, outer); a != nil {
		s.annulus = a
	}
}

// HubFootprint returns the hub's ground footprint radius at the current
// scale.
func (s *Session) HubFootprint() float64 {
	return s.hubRadius * s.hubScale * footprintFactor
}

// Spec returns the session's configuration.
func (s *Session) Spec() *spec.ForestSpec { return s.cfg }

// Grid returns the design grid.
func (s *Session) Grid() grid.Grid { return s.grid }

// HubCell returns the grid cell all paths terminate at.
func (s *Session) HubCell() grid.Cell { return s.hubCell }

// Paths returns the routed path segments.
func (s *Session) Paths() []routing.PathSegment { return s.paths }

// PathCells returns the set of rasterized path cells.
func (s *Session) PathCells() grid.CellSet { return s.pathCells }

// Hedges returns the current hedge geometry.
func (s *Session) Hedges() *layout.Hedges { return s.hedges }

// Annulus returns the current annulus band.
func (s *Session) Annulus() *layout.Annulus { return s.annulus }

// Trees returns the placed trees.
func (s *Session) Trees() []layout.Tree { return s.trees }

// HubScale returns the current hub scale.
func (s *Session) HubScale() float64 { return s.hubScale }

// HubRadius returns the current hub base radius.
func (s *Session) HubRadius() float64 { return s.hubRadius }

// Report returns the accumulated generation report.
func (s *Session) Report() *validation.Report { return s.report }

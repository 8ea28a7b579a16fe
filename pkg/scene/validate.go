package scene

import (
	"fmt"

	"github.com/DilaraLiyanage/forestplanner/pkg/forest"
	"github.com/DilaraLiyanage/forestplanner/pkg/validation"
)

// ValidateSpatial checks the assembled layout against its spatial
// constraints: path termination, tree spacing, exclusion regions and
// annulus closure. It complements the schema validation that ran before
// generation.
func ValidateSpatial(s *forest.Session) *validation.Report {
	report := validation.NewReport()
	checkPaths(s, report)
	checkTreeSpacing(s, report)
	checkTreeRegions(s, report)
	checkAnnulus(s, report)
	return report
}

func checkPaths(s *forest.Session, report *validation.Report) {
	hub := s.HubCell()
	for i, p := range s.Paths() {
		if p.B != hub {
			report.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("path %d terminates at (%d,%d) instead of the hub", i, p.B.X, p.B.Y),
				SpecPath: "paths",
			})
		}
		if !s.Grid().Contains(p.A) {
			report.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("path %d starts outside the design grid", i),
				SpecPath: "paths",
			})
		}
	}
}

func checkTreeSpacing(s *forest.Session, report *validation.Report) {
	spacing := s.Spec().Trees.Spacing
	trees := s.Trees()
	violations := 0
	for i := range trees {
		for j := i + 1; j < len(trees); j++ {
			if d := trees[i].Position.Distance(trees[j].Position); d < spacing {
				violations++
				report.AddError(validation.Result{
					Level:    validation.LevelSpatial,
					Message:  fmt.Sprintf("trees %d and %d are %.3f apart, below spacing %.2f", i, j, d, spacing),
					SpecPath: "trees.spacing",
				})
			}
		}
	}
	if violations == 0 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelSpatial,
			Message: fmt.Sprintf("all %d trees honor spacing %.2f", len(trees), spacing),
		})
	}
}

func checkTreeRegions(s *forest.Session, report *validation.Report) {
	h := s.Hedges()
	g := s.Grid()
	for i, tr := range s.Trees() {
		if h.InsideAnyWedge(tr.Position) {
			report.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("tree %d sits inside a hedge wedge", i),
			})
		}
		if h.InsideOuterDisk(tr.Position) {
			report.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("tree %d sits inside the hedge outer disk", i),
				Suggestions: []string{"rescale the hub to push trees back out"},
			})
		}
		if s.PathCells().Has(g.ToGrid(tr.Position)) {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("tree %d overlaps a path cell", i),
			})
		}
	}
}

func checkAnnulus(s *forest.Session, report *validation.Report) {
	a := s.Annulus()
	if a == nil {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "no annulus band could be built",
		})
		return
	}
	if a.Inner >= a.Outer {
		report.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: fmt.Sprintf("annulus radii inverted: inner %.3f, outer %.3f", a.Inner, a.Outer),
		})
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("annulus closed with %d directions", len(a.Directions)),
	})
}

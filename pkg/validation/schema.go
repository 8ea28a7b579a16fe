package validation

import (
	"fmt"

	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed ForestSpec.
// It checks structural correctness before any layout computation: an
// invalid spec has no sane fallback geometry, so construction must fail
// rather than clamp.
func ValidateSchema(s *spec.ForestSpec) *Report {
	r := NewReport()

	validateGrid(s, r)
	validateHub(s, r)
	validateHedges(s, r)
	validatePaths(s, r)
	validateTrees(s, r)

	return r
}

func validateGrid(s *spec.ForestSpec, r *Report) {
	if s.Grid.Width <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "grid.width must be greater than 0",
			SpecPath:    "grid.width",
			ActualValue: s.Grid.Width,
			Expected:    "> 0",
		})
	}
	if s.Grid.Height <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "grid.height must be greater than 0",
			SpecPath:    "grid.height",
			ActualValue: s.Grid.Height,
			Expected:    "> 0",
		})
	}
}

func validateHub(s *spec.ForestSpec, r *Report) {
	if s.Hub.Radius <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "hub.radius must be greater than 0",
			SpecPath:    "hub.radius",
			ActualValue: s.Hub.Radius,
			Expected:    "> 0",
		})
	}
	if s.Hub.FootprintRadius <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "hub.footprint_radius must be greater than 0",
			SpecPath:    "hub.footprint_radius",
			ActualValue: s.Hub.FootprintRadius,
			Expected:    "> 0",
		})
	}
}

func validateHedges(s *spec.ForestSpec, r *Report) {
	rings := []struct {
		name string
		def  spec.RingDef
	}{
		{"inner", s.Hedges.Inner},
		{"outer", s.Hedges.Outer},
	}

	for _, ring := range rings {
		if ring.def.RadiusFrom <= 0 || ring.def.RadiusFrom >= ring.def.RadiusTo {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("hedges.%s: radius_from (%.2f) must be positive and less than radius_to (%.2f)", ring.name, ring.def.RadiusFrom, ring.def.RadiusTo),
				SpecPath:    fmt.Sprintf("hedges.%s", ring.name),
				ActualValue: fmt.Sprintf("%.2f-%.2f", ring.def.RadiusFrom, ring.def.RadiusTo),
			})
		}
		if ring.def.HalfAngleDeg <= 0 || ring.def.HalfAngleDeg >= 90 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("hedges.%s: half_angle_deg must be in (0, 90)", ring.name),
				SpecPath:    fmt.Sprintf("hedges.%s.half_angle_deg", ring.name),
				ActualValue: ring.def.HalfAngleDeg,
				Expected:    "(0, 90)",
			})
		}
		if ring.def.Count < 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("hedges.%s: count must be at least 1", ring.name),
				SpecPath:    fmt.Sprintf("hedges.%s.count", ring.name),
				ActualValue: ring.def.Count,
				Expected:    ">= 1",
			})
		}
	}

	// The rings must not invert: the outer ring has to sit outside the inner.
	if s.Hedges.Inner.RadiusTo > s.Hedges.Outer.RadiusTo {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("hedges: inner ring radius_to (%.2f) exceeds outer ring radius_to (%.2f)", s.Hedges.Inner.RadiusTo, s.Hedges.Outer.RadiusTo),
			SpecPath:    "hedges.outer.radius_to",
			ActualValue: s.Hedges.Outer.RadiusTo,
			Expected:    fmt.Sprintf(">= %.2f", s.Hedges.Inner.RadiusTo),
			Suggestions: []string{"Increase hedges.outer.radius_to or decrease hedges.inner.radius_to"},
		})
	}
}

func validatePaths(s *spec.ForestSpec, r *Report) {
	if s.Paths.Count < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "paths.count must be at least 1",
			SpecPath:    "paths.count",
			ActualValue: s.Paths.Count,
			Expected:    ">= 1",
		})
	}
}

func validateTrees(s *spec.ForestSpec, r *Report) {
	counts := map[string]int{
		"small":  s.Trees.Small,
		"medium": s.Trees.Medium,
		"tall":   s.Trees.Tall,
	}
	for name, count := range counts {
		if count < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("trees.%s must be non-negative", name),
				SpecPath:    fmt.Sprintf("trees.%s", name),
				ActualValue: count,
				Expected:    ">= 0",
			})
		}
	}

	if s.Trees.Spacing <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "trees.spacing must be greater than 0",
			SpecPath:    "trees.spacing",
			ActualValue: s.Trees.Spacing,
			Expected:    "> 0",
		})
	}
}

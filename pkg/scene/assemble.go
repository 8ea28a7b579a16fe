package scene

import (
	"time"

	"github.com/DilaraLiyanage/forestplanner/pkg/forest"
	"github.com/DilaraLiyanage/forestplanner/pkg/grid"
	"github.com/DilaraLiyanage/forestplanner/pkg/layout"
)

// Assemble converts a session's layout state into a renderable scene.
func Assemble(s *forest.Session) *Scene {
	cfg := s.Spec()
	g := s.Grid()

	return &Scene{
		Metadata: Metadata{
			SpecVersion: cfg.SpecVersion,
			Seed:        cfg.Seed,
			TreeCount:   len(s.Trees()),
			PathCount:   len(s.Paths()),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Grid: GridInfo{
			Width:      g.Width,
			Height:     g.Height,
			HalfExtent: g.HalfExtent,
		},
		Hub: Hub{
			Center:    [2]float64{0, 0},
			Radius:    s.HubRadius(),
			Footprint: s.HubFootprint(),
			Scale:     s.HubScale(),
		},
		Paths:   assemblePaths(s, g),
		Hedges:  assembleHedges(s.Hedges()),
		Annulus: assembleAnnulus(s.Annulus()),
		Trees:   s.Trees(),
	}
}

func assemblePaths(s *forest.Session, g grid.Grid) []Path {
	paths := make([]Path, 0, len(s.Paths()))
	for _, p := range s.Paths() {
		cells := grid.Line(p.A, p.B)
		world := make([][2]float64, 0, len(cells))
		for _, c := range cells {
			w := g.ToWorld(c)
			world = append(world, [2]float64{w.X, w.Z})
		}
		paths = append(paths, Path{
			From:  [2]int{p.A.X, p.A.Y},
			To:    [2]int{p.B.X, p.B.Y},
			Clear: p.Clear,
			Cells: world,
		})
	}
	return paths
}

func assembleHedges(h *layout.Hedges) HedgeRings {
	return HedgeRings{
		Scale: h.Scale,
		Inner: assembleRing(h.Inner),
		Outer: assembleRing(h.Outer),
	}
}

func assembleRing(r layout.Ring) RingOut {
	wedges := make([][3][2]float64, 0, len(r.Wedges))
	for _, w := range r.Wedges {
		var tri [3][2]float64
		for i, v := range w.Vertices() {
			tri[i] = [2]float64{v.X, v.Z}
		}
		wedges = append(wedges, tri)
	}
	return RingOut{RadiusFrom: r.RadiusFrom, RadiusTo: r.RadiusTo, Wedges: wedges}
}

func assembleAnnulus(a *layout.Annulus) *AnnulusBand {
	if a == nil {
		return nil
	}
	inner := make([][2]float64, 0, len(a.Directions))
	outer := make([][2]float64, 0, len(a.Directions))
	for i := range a.Directions {
		ip := a.InnerPoint(i)
		op := a.OuterPoint(i)
		inner = append(inner, [2]float64{ip.X, ip.Z})
		outer = append(outer, [2]float64{op.X, op.Z})
	}
	return &AnnulusBand{
		InnerRadius: a.Inner,
		OuterRadius: a.Outer,
		Inner:       inner,
		Outer:       outer,
	}
}

// Package layout builds the spatial layout around the hub: the wedge-ring
// hedge geometry, the sampled annulus band, and the constrained tree
// placement.
package layout

import (
	"math"

	"github.com/DilaraLiyanage/forestplanner/pkg/geo"
	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
)

// Ring is one concentric band of hedge wedges at a common radius range.
// Radii are in world units, already scaled.
type Ring struct {
	RadiusFrom float64        `json:"radius_from"`
	RadiusTo   float64        `json:"radius_to"`
	Wedges     []geo.Triangle `json:"wedges"`
}

// Hedges holds the full two-ring wedge geometry for one scale factor.
// Rescaling constructs a fresh value rather than mutating in place.
type Hedges struct {
	Inner Ring
	Outer Ring

	Scale float64

	baseOuter float64
	baseInner float64
}

// NewHedges builds the wedge rings from the ring definitions. Ring radii
// are multiples of the hub footprint radius; scale is applied on top of
// that. Each wedge is a triangle with its apex at the inner radius and its
// base chord at the outer radius, rotated evenly around the hub with the
// ring's phase offset.
func NewHedges(def spec.HedgesDef, footprint, scale float64) *Hedges {
	return &Hedges{
		Inner:     buildRing(def.Inner, footprint, scale),
		Outer:     buildRing(def.Outer, footprint, scale),
		Scale:     scale,
		baseOuter: def.Outer.RadiusTo * footprint,
		baseInner: def.Inner.RadiusFrom * footprint,
	}
}

func buildRing(def spec.RingDef, footprint, scale float64) Ring {
	rFrom := def.RadiusFrom * footprint * scale
	rTo := def.RadiusTo * footprint * scale
	half := def.HalfAngleDeg * math.Pi / 180

	canonical := geo.NewTriangle(
		geo.Pt(rFrom, 0),
		geo.Pt(rTo*math.Cos(half), rTo*math.Sin(half)),
		geo.Pt(rTo*math.Cos(half), -rTo*math.Sin(half)),
	)

	step := 2 * math.Pi / float64(def.Count)
	phase := def.PhaseFrac * step

	wedges := make([]geo.Triangle, 0, def.Count)
	for i := 0; i < def.Count; i++ {
		wedges = append(wedges, canonical.Rotate(float64(i)*step+phase))
	}
	return Ring{RadiusFrom: rFrom, RadiusTo: rTo, Wedges: wedges}
}

// InsideAnyWedge reports whether p lies inside (or on the boundary of) any
// wedge triangle in either ring.
func (h *Hedges) InsideAnyWedge(p geo.Point2D) bool {
	for _, w := range h.Inner.Wedges {
		if w.Contains(p) {
			return true
		}
	}
	for _, w := range h.Outer.Wedges {
		if w.Contains(p) {
			return true
		}
	}
	return false
}

// InsideOuterDisk reports whether p lies within the scaled outer ring
// radius of the hub.
func (h *Hedges) InsideOuterDisk(p geo.Point2D) bool {
	return p.Length() <= h.Outer.RadiusTo
}

// Forbidden reports whether a tree may not occupy p: inside a wedge or
// inside the outer hedge disk.
func (h *Hedges) Forbidden(p geo.Point2D) bool {
	return h.InsideOuterDisk(p) || h.InsideAnyWedge(p)
}

// OuterRadius returns the scaled outer ring radius.
func (h *Hedges) OuterRadius() float64 { return h.Outer.RadiusTo }

// BaseOuterRadius returns the unscaled outer ring radius, used as the
// fixed placement floor so trees stay put across rescales.
func (h *Hedges) BaseOuterRadius() float64 { return h.baseOuter }

// InnerRingRadius returns the scaled inner ring apex radius.
func (h *Hedges) InnerRingRadius() float64 { return h.Inner.RadiusFrom }

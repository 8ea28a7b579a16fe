package layout

import (
	"math"
	"sort"

	"github.com/DilaraLiyanage/forestplanner/pkg/geo"
)

// minAnnulusDirections is the smallest direction count that still closes
// the ring visually; sparser results are rejected.
const minAnnulusDirections = 24

// minAnnulusSampleRadius keeps the rasterized circle dense enough at small
// outer radii.
const minAnnulusSampleRadius = 16

// Annulus is the ground band between the hub footprint and the outer
// hedge ring, represented as a sorted fan of unit directions. Each
// direction yields one inner/outer vertex pair of the band.
type Annulus struct {
	Inner      float64       `json:"inner"`
	Outer      float64       `json:"outer"`
	Directions []geo.Point2D `json:"directions"`
}

// BuildAnnulus samples unit directions by rasterizing a circle of radius
// round(outer*40) cells with the midpoint algorithm, mirroring each octant
// point, deduplicating near-identical angles and sorting ascending. It
// returns nil if fewer than minAnnulusDirections distinct directions
// survive, so callers can keep their previous geometry.
func BuildAnnulus(inner, outer float64) *Annulus {
	if outer <= inner || outer <= 0 {
		return nil
	}

	r := int(math.Round(outer * 40))
	if r < minAnnulusSampleRadius {
		r = minAnnulusSampleRadius
	}

	type angled struct {
		ang float64
		dir geo.Point2D
	}
	seen := make(map[int64]struct{})
	pts := make([]angled, 0, r*8)

	add := func(x, y int) {
		if x == 0 && y == 0 {
			return
		}
		d := geo.Pt(float64(x), float64(y)).Normalize()
		a := math.Atan2(d.Z, d.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		key := int64(math.Round(a * 1e5))
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		pts = append(pts, angled{ang: a, dir: d})
	}

	// Midpoint circle; every computed point is mirrored into all eight
	// octants.
	x, y := r, 0
	err := 1 - r
	for x >= y {
		add(x, y)
		add(y, x)
		add(-y, x)
		add(-x, y)
		add(-x, -y)
		add(-y, -x)
		add(y, -x)
		add(x, -y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}

	if len(pts) < minAnnulusDirections {
		return nil
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].ang < pts[j].ang })

	dirs := make([]geo.Point2D, len(pts))
	for i, p := range pts {
		dirs[i] = p.dir
	}
	return &Annulus{Inner: inner, Outer: outer, Directions: dirs}
}

// InnerPoint returns the band vertex on the inner edge for direction i.
func (a *Annulus) InnerPoint(i int) geo.Point2D {
	return a.Directions[i].Scale(a.Inner)
}

// OuterPoint returns the band vertex on the outer edge for direction i.
func (a *Annulus) OuterPoint(i int) geo.Point2D {
	return a.Directions[i].Scale(a.Outer)
}

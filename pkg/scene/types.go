// Package scene converts a layout session into a serializable scene for
// rendering clients, and spatially validates the assembled result.
package scene

import (
	"github.com/DilaraLiyanage/forestplanner/pkg/layout"
)

// Scene is the complete top-down scene output.
type Scene struct {
	Metadata Metadata      `json:"metadata"`
	Grid     GridInfo      `json:"grid"`
	Hub      Hub           `json:"hub"`
	Paths    []Path        `json:"paths"`
	Hedges   HedgeRings    `json:"hedges"`
	Annulus  *AnnulusBand  `json:"annulus,omitempty"`
	Trees    []layout.Tree `json:"trees"`
}

// Metadata holds layout-level summary data.
type Metadata struct {
	SpecVersion string `json:"spec_version"`
	Seed        int64  `json:"seed"`
	TreeCount   int    `json:"tree_count"`
	PathCount   int    `json:"path_count"`
	GeneratedAt string `json:"generated_at"`
}

// GridInfo describes the design grid and its world mapping.
type GridInfo struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	HalfExtent float64 `json:"half_extent"`
}

// Hub describes the central hub at the current scale.
type Hub struct {
	Center    [2]float64 `json:"center"`
	Radius    float64    `json:"radius"`
	Footprint float64    `json:"footprint"`
	Scale     float64    `json:"scale"`
}

// Path is one routed path with both its grid endpoints and the world
// coordinates of its cells.
type Path struct {
	From  [2]int       `json:"from"`
	To    [2]int       `json:"to"`
	Clear bool         `json:"clear"`
	Cells [][2]float64 `json:"cells"`
}

// HedgeRings carries the wedge footprints of both rings as world-space
// triangles.
type HedgeRings struct {
	Scale float64 `json:"scale"`
	Inner RingOut `json:"inner"`
	Outer RingOut `json:"outer"`
}

// RingOut is one hedge ring in output form.
type RingOut struct {
	RadiusFrom float64         `json:"radius_from"`
	RadiusTo   float64         `json:"radius_to"`
	Wedges     [][3][2]float64 `json:"wedges"`
}

// AnnulusBand is the ground band between hub footprint and hedge ring,
// as paired inner/outer vertices per direction.
type AnnulusBand struct {
	InnerRadius float64      `json:"inner_radius"`
	OuterRadius float64      `json:"outer_radius"`
	Inner       [][2]float64 `json:"inner"`
	Outer       [][2]float64 `json:"outer"`
}

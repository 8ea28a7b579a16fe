package spec

// WorldHalfExtent is the fixed half-extent of the world square in the XZ
// plane: the ground spans [-WorldHalfExtent, WorldHalfExtent]².
const WorldHalfExtent = 10.0

// ForestSpec is the top-level specification for a forest layout.
type ForestSpec struct {
	SpecVersion string    `yaml:"spec_version" json:"spec_version"`
	Grid        GridDef   `yaml:"grid" json:"grid"`
	Hub         HubDef    `yaml:"hub" json:"hub"`
	Hedges      HedgesDef `yaml:"hedges" json:"hedges"`
	Paths       PathsDef  `yaml:"paths" json:"paths"`
	Trees       TreesDef  `yaml:"trees" json:"trees"`
	Seed        int64     `yaml:"seed" json:"seed"`
}

// GridDef defines the discrete design grid dimensions.
type GridDef struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// HubDef defines the central hub (fountain) parameters.
type HubDef struct {
	// Radius is the hub's base visual radius at scale 1.
	Radius float64 `yaml:"radius" json:"radius"`
	// FootprintRadius is the visual radius control that drives the hedge
	// ring radii and the annulus inner edge, in world units.
	FootprintRadius float64 `yaml:"footprint_radius" json:"footprint_radius"`
}

// HedgesDef defines the two wedge rings around the hub.
type HedgesDef struct {
	Inner RingDef `yaml:"inner" json:"inner"`
	Outer RingDef `yaml:"outer" json:"outer"`
}

// RingDef defines one wedge ring: radii as multiples of the hub footprint
// radius, wedge half-angle in degrees, member count, and phase offset as a
// fraction of one angular step.
type RingDef struct {
	RadiusFrom   float64 `yaml:"radius_from" json:"radius_from"`
	RadiusTo     float64 `yaml:"radius_to" json:"radius_to"`
	HalfAngleDeg float64 `yaml:"half_angle_deg" json:"half_angle_deg"`
	Count        int     `yaml:"count" json:"count"`
	PhaseFrac    float64 `yaml:"phase_frac" json:"phase_frac"`
}

// PathsDef defines the path network parameters.
type PathsDef struct {
	Count int `yaml:"count" json:"count"`
}

// TreesDef defines per-size tree target counts and placement spacing.
type TreesDef struct {
	Small   int     `yaml:"small" json:"small"`
	Medium  int     `yaml:"medium" json:"medium"`
	Tall    int     `yaml:"tall" json:"tall"`
	Spacing float64 `yaml:"spacing" json:"spacing"`
}

// Total returns the total requested tree count.
func (t TreesDef) Total() int {
	return t.Small + t.Medium + t.Tall
}

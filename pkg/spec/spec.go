package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in forest spec: a 50×50 grid, 5 paths to the
// hub, 5/10/5 trees with 1.8 spacing, and the standard two-ring hedge star.
func Default() *ForestSpec {
	return &ForestSpec{
		SpecVersion: "0.1.0",
		Grid:        GridDef{Width: 50, Height: 50},
		Hub:         HubDef{Radius: 0.5, FootprintRadius: 0.55},
		Hedges: HedgesDef{
			Inner: RingDef{RadiusFrom: 1.4, RadiusTo: 2.4, HalfAngleDeg: 12, Count: 8},
			Outer: RingDef{RadiusFrom: 2.6, RadiusTo: 3.6, HalfAngleDeg: 8, Count: 16, PhaseFrac: 0.5},
		},
		Paths: PathsDef{Count: 5},
		Trees: TreesDef{Small: 5, Medium: 10, Tall: 5, Spacing: 1.8},
	}
}

// Load reads a forest spec from a YAML file. Fields absent from the file
// keep their default values.
func Load(path string) (*ForestSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	spec := Default()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return spec, nil
}

// LoadProject loads a forest spec from a project directory.
// It looks for forest.yaml in the given directory.
func LoadProject(projectDir string) (*ForestSpec, error) {
	specPath := filepath.Join(projectDir, "forest.yaml")
	return Load(specPath)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DilaraLiyanage/forestplanner/pkg/forest"
	"github.com/DilaraLiyanage/forestplanner/pkg/scene"
	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
	"github.com/DilaraLiyanage/forestplanner/pkg/validation"
)

// loadAndValidate loads the spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.ForestSpec, *validation.Report, error) {
	forestSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	schemaReport := validation.ValidateSchema(forestSpec)
	return forestSpec, schemaReport, nil
}

func runValidate(projectPath string) error {
	_, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string, seed int64, verbose bool) error {
	logger := newLogger(verbose)

	forestSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("spec has validation errors")
	}
	if seed != 0 {
		forestSpec.Seed = seed
	}

	session, _, err := forest.NewSession(forestSpec)
	if err != nil {
		return err
	}

	logger.Info("layout generated",
		"paths", len(session.Paths()),
		"trees", len(session.Trees()),
		"hub_footprint", session.HubFootprint())
	for _, w := range session.Report().Warnings {
		logger.Warn(w.Message)
	}

	spatialReport := scene.ValidateSpatial(session)
	spatialReport.Merge(session.Report())
	if !spatialReport.Valid {
		printValidationReport(spatialReport)
		return fmt.Errorf("generated layout failed spatial validation")
	}

	output := map[string]any{
		"validation": spatialReport,
		"scene":      scene.Assemble(session),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

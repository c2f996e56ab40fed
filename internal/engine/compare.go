package engine

import (
	"fmt"

	"github.com/piwi3910/NestCut/internal/model"
)

// Scenario defines a named configuration to compare.
type Scenario struct {
	Name   string
	Config model.PackConfig
}

// ScenarioResult holds the pack result and computed statistics for a single
// scenario.
type ScenarioResult struct {
	Scenario      Scenario
	Result        model.PackResult
	BinsUsed      int
	PlacedCount   int
	TotalFill     float64
	UnplacedCount int
}

// CompareScenarios packs the same parts under each scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// different parameters (scoring rule, rotation, kerf, border). Scenarios
// with an invalid configuration are skipped.
func CompareScenarios(scenarios []Scenario, parts []model.PartSpec) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, sc := range scenarios {
		result, err := New(sc.Config).Pack(parts)
		if err != nil {
			continue
		}
		results = append(results, ScenarioResult{
			Scenario:      sc,
			Result:        result,
			BinsUsed:      len(result.Bins),
			PlacedCount:   len(result.Placements),
			TotalFill:     result.TotalFill(),
			UnplacedCount: len(result.Unplaced),
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if variants of the given settings.
func BuildDefaultScenarios(base model.PackConfig) []Scenario {
	scenarios := []Scenario{
		{Name: "Current Settings", Config: base},
	}

	// Scenario: the other scoring rule
	alt := base
	if base.Scoring == model.ScoreBestArea {
		alt.Scoring = model.ScoreBestShortSide
		scenarios = append(scenarios, Scenario{Name: "Best Short-Side Fit", Config: alt})
	} else {
		alt.Scoring = model.ScoreBestArea
		scenarios = append(scenarios, Scenario{Name: "Best Area Fit", Config: alt})
	}

	// Scenario: rotation off
	if base.AllowRotation {
		noRot := base
		noRot.AllowRotation = false
		scenarios = append(scenarios, Scenario{Name: "No Rotation", Config: noRot})
	}

	// Scenario: thinner blade
	if base.Kerf > 1.0 {
		tight := base
		tight.Kerf = base.Kerf * 0.5
		scenarios = append(scenarios, Scenario{
			Name:   fmt.Sprintf("Kerf %.1fmm (half)", tight.Kerf),
			Config: tight,
		})
	}

	// Scenario: no border inset
	if base.Margin > 0 {
		noMargin := base
		noMargin.Margin = 0
		scenarios = append(scenarios, Scenario{Name: "No Margin", Config: noMargin})
	}

	return scenarios
}

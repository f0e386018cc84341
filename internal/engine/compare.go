package engine

import (
	"fmt"

	"github.com/piwi3910/StairMason/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.EstimateSettings
}

// ComparisonResult holds the slab plan and its headline statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Plan          *model.SlabPlan
	TotalSlabs    int
	TotalCuts     int
	LeftoverCount int
}

// CompareScenarios runs the slab planner for each scenario on the same step
// geometry and returns the results in scenario order, enabling side-by-side
// comparison of slab sizes, placements, and cut policies. Every scenario
// starts from its own empty waste inventory.
func CompareScenarios(scenarios []ComparisonScenario, plan *model.StepPlan, overhangs model.Overhangs, sides model.SideConfig) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		planner := NewSlabPlanner(scenario.Settings, overhangs, sides)
		slabPlan := planner.Plan(plan)

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Plan:          slabPlan,
			TotalSlabs:    slabPlan.TotalSlabs(),
			TotalCuts:     slabPlan.TotalCuts,
			LeftoverCount: len(slabPlan.LeftoverWaste),
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives around the current
// settings: the other cut policy, the other placement, and the neighbouring
// slab sizes from the catalogue.
func BuildDefaultScenarios(base model.EstimateSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	altPolicy := base
	if base.Policy == model.OneCut {
		altPolicy.Policy = model.TwoCuts
		scenarios = append(scenarios, ComparisonScenario{Name: "Two symmetric cuts", Settings: altPolicy})
	} else {
		altPolicy.Policy = model.OneCut
		scenarios = append(scenarios, ComparisonScenario{Name: "Single end cut", Settings: altPolicy})
	}

	altPlacement := base
	if base.Placement == model.PlacementLongWays {
		altPlacement.Placement = model.PlacementSideWays
		scenarios = append(scenarios, ComparisonScenario{Name: "Slabs laid side-ways", Settings: altPlacement})
	} else {
		altPlacement.Placement = model.PlacementLongWays
		scenarios = append(scenarios, ComparisonScenario{Name: "Slabs laid long-ways", Settings: altPlacement})
	}

	catalogue := model.SlabCatalogue()
	for i, size := range catalogue {
		if size.Name != base.SlabSize {
			continue
		}
		for _, j := range []int{i - 1, i + 1} {
			if j < 0 || j >= len(catalogue) {
				continue
			}
			alt := base
			alt.SlabSize = catalogue[j].Name
			scenarios = append(scenarios, ComparisonScenario{
				Name:     fmt.Sprintf("Slab size %s", catalogue[j].Name),
				Settings: alt,
			})
		}
		break
	}

	return scenarios
}

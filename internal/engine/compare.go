package engine

import (
	"fmt"

	"github.com/piwi3910/CubeStow/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
}

// ComparisonResult holds the packing result and computed statistics for
// a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PackResult
	BlocksPlaced  int
	BoxesPlaced   int
	WastePercent  float64
	UnplacedCount int
}

// CompareScenarios packs the same instance under each scenario and
// returns the results in scenario order. This enables side-by-side
// comparison of filling policies and gate parameters.
func CompareScenarios(scenarios []ComparisonScenario, inst model.Instance) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := New(scenario.Settings)
		result := packer.Pack(inst)

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			BlocksPlaced:  len(result.Placements),
			BoxesPlaced:   result.BoxesPlaced(),
			WastePercent:  100.0 - result.Efficiency(),
			UnplacedCount: result.UnplacedCount(),
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if
// alternatives.
func BuildDefaultScenarios(base model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	for _, policy := range []model.FillingPolicy{model.FillingOrigin, model.FillingBottomUp, model.FillingFree} {
		if policy == base.Filling {
			continue
		}
		alt := base
		alt.Filling = policy
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Filling %s", policy),
			Settings: alt,
		})
	}

	flipStability := base
	flipStability.VerticalStability = !base.VerticalStability
	name := "Vertical Stability Off"
	if flipStability.VerticalStability {
		name = "Vertical Stability On"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Settings: flipStability})

	if base.MinFillRatio > 0.90 {
		relaxed := base
		relaxed.MinFillRatio = 0.90
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Fill Ratio 0.90 (relaxed)",
			Settings: relaxed,
		})
	}

	return scenarios
}

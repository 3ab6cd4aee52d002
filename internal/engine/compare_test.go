package engine

import (
	"testing"

	"github.com/piwi3910/CubeStow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	scenarios := BuildDefaultScenarios(model.DefaultSettings())

	require.NotEmpty(t, scenarios)
	assert.Equal(t, "Current Settings", scenarios[0].Name)

	// Defaults: origin filling, stability on, min_fr 0.98 — expect the
	// two other policies, the stability flip, and the relaxed gate.
	assert.Len(t, scenarios, 5)
}

func TestCompareScenariosRunsAll(t *testing.T) {
	inst := cubesInstance(4, 20, 20, 10)
	scenarios := BuildDefaultScenarios(model.DefaultSettings())

	results := CompareScenarios(scenarios, inst)
	require.Len(t, results, len(scenarios))

	for _, r := range results {
		assert.Equal(t, 4, r.BoxesPlaced, "scenario %s", r.Scenario.Name)
		assert.InDelta(t, 0.0, r.WastePercent, 1e-9, "scenario %s", r.Scenario.Name)
		assert.Equal(t, 0, r.UnplacedCount)
	}
}

package engine

import (
	"testing"

	"github.com/piwi3910/NestCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	base := model.PackConfig{
		BinWidth:      1000,
		BinHeight:     500,
		Margin:        10,
		Kerf:          3,
		AllowRotation: true,
		Scoring:       model.ScoreBestShortSide,
		SortOrder:     model.SortDescendingArea,
	}

	scenarios := BuildDefaultScenarios(base)
	require.Len(t, scenarios, 5)

	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, base, scenarios[0].Config)

	assert.Equal(t, "Best Area Fit", scenarios[1].Name)
	assert.Equal(t, model.ScoreBestArea, scenarios[1].Config.Scoring)

	assert.Equal(t, "No Rotation", scenarios[2].Name)
	assert.False(t, scenarios[2].Config.AllowRotation)

	assert.Equal(t, "Kerf 1.5mm (half)", scenarios[3].Name)
	assert.InDelta(t, 1.5, scenarios[3].Config.Kerf, eps)

	assert.Equal(t, "No Margin", scenarios[4].Name)
	assert.Zero(t, scenarios[4].Config.Margin)
}

func TestBuildDefaultScenarios_MinimalBase(t *testing.T) {
	// Rotation off, thin kerf, no margin: only the scoring variant remains.
	base := model.PackConfig{
		BinWidth:  1000,
		BinHeight: 500,
		Kerf:      0.5,
		Scoring:   model.ScoreBestArea,
	}

	scenarios := BuildDefaultScenarios(base)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "Best Short-Side Fit", scenarios[1].Name)
	assert.Equal(t, model.ScoreBestShortSide, scenarios[1].Config.Scoring)
}

func TestCompareScenarios(t *testing.T) {
	cfg := model.PackConfig{
		BinWidth:      100,
		BinHeight:     100,
		AllowRotation: true,
	}
	parts := []model.PartSpec{
		{ID: "a", Width: 60, Height: 60, Quantity: 2, Rotatable: true},
	}

	noRot := cfg
	noRot.AllowRotation = false
	results := CompareScenarios([]Scenario{
		{Name: "base", Config: cfg},
		{Name: "no-rot", Config: noRot},
	}, parts)

	require.Len(t, results, 2)
	assert.Equal(t, "base", results[0].Scenario.Name)
	assert.Equal(t, 2, results[0].PlacedCount)
	assert.Equal(t, 2, results[0].BinsUsed)
	assert.Zero(t, results[0].UnplacedCount)
	assert.InDelta(t, 36.0, results[0].TotalFill, eps)
}

func TestCompareScenarios_SkipsInvalidConfig(t *testing.T) {
	bad := model.PackConfig{BinWidth: -1, BinHeight: 100}
	good := model.PackConfig{BinWidth: 100, BinHeight: 100}

	results := CompareScenarios([]Scenario{
		{Name: "bad", Config: bad},
		{Name: "good", Config: good},
	}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "good", results[0].Scenario.Name)
}

package engine

import (
	"testing"

	"github.com/piwi3910/NestCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandParts_QuantityExpansion(t *testing.T) {
	parts := []model.PartSpec{
		{ID: "a", Width: 10, Height: 10, Quantity: 3, Rotatable: true},
		{ID: "b", Width: 20, Height: 5, Quantity: 1},
	}

	items, rejected := ExpandParts(parts, model.SortInputOrder)
	require.Empty(t, rejected)
	require.Len(t, items, 4)

	assert.Equal(t, "a#1", items[0].ID)
	assert.Equal(t, "a#2", items[1].ID)
	assert.Equal(t, "a#3", items[2].ID)
	assert.Equal(t, "b", items[3].ID, "single-quantity parts keep their ID")
	assert.True(t, items[0].Rotatable)
	assert.False(t, items[3].Rotatable)
}

func TestExpandParts_DescendingAreaOrder(t *testing.T) {
	parts := []model.PartSpec{
		{ID: "small", Width: 10, Height: 10, Quantity: 1},
		{ID: "big", Width: 50, Height: 40, Quantity: 1},
		{ID: "mid", Width: 30, Height: 20, Quantity: 1},
	}

	items, _ := ExpandParts(parts, model.SortDescendingArea)
	require.Len(t, items, 3)
	assert.Equal(t, "big", items[0].ID)
	assert.Equal(t, "mid", items[1].ID)
	assert.Equal(t, "small", items[2].ID)
}

func TestExpandParts_EqualAreaTieBreaks(t *testing.T) {
	// Same area: the longer-sided part wins; fully equal shapes keep input
	// order.
	parts := []model.PartSpec{
		{ID: "square", Width: 20, Height: 20, Quantity: 1},
		{ID: "strip", Width: 40, Height: 10, Quantity: 1},
		{ID: "square2", Width: 20, Height: 20, Quantity: 1},
	}

	items, _ := ExpandParts(parts, model.SortDescendingArea)
	require.Len(t, items, 3)
	assert.Equal(t, "strip", items[0].ID)
	assert.Equal(t, "square", items[1].ID)
	assert.Equal(t, "square2", items[2].ID)
}

func TestExpandParts_RejectsInvalid(t *testing.T) {
	parts := []model.PartSpec{
		{ID: "ok", Width: 10, Height: 10, Quantity: 1},
		{ID: "zero-width", Width: 0, Height: 10, Quantity: 1},
		{ID: "negative-height", Width: 10, Height: -2, Quantity: 1},
		{ID: "zero-qty", Width: 10, Height: 10, Quantity: 0},
	}

	items, rejected := ExpandParts(parts, model.SortInputOrder)
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].ID)

	require.Len(t, rejected, 3)
	for _, r := range rejected {
		assert.NotEmpty(t, r.Reason)
	}
	assert.Equal(t, "zero-width", rejected[0].Part.ID)
	assert.Equal(t, "negative-height", rejected[1].Part.ID)
	assert.Equal(t, "zero-qty", rejected[2].Part.ID)
}

func TestExpandParts_Empty(t *testing.T) {
	items, rejected := ExpandParts(nil, model.SortDescendingArea)
	assert.Empty(t, items)
	assert.Empty(t, rejected)
}

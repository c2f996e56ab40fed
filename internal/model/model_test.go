package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartSpec(t *testing.T) {
	p := NewPartSpec("Shelf", 600, 300, 2)

	assert.Equal(t, "Shelf", p.Label)
	assert.Equal(t, 600.0, p.Width)
	assert.Equal(t, 300.0, p.Height)
	assert.Equal(t, 2, p.Quantity)
	assert.True(t, p.Rotatable)
	assert.Len(t, p.ID, 8, "generated ID should be a short uuid")
}

func TestNewPartSpec_UniqueIDs(t *testing.T) {
	a := NewPartSpec("A", 100, 100, 1)
	b := NewPartSpec("B", 100, 100, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestItem_LongSide(t *testing.T) {
	assert.Equal(t, 80.0, Item{Width: 80, Height: 40}.LongSide())
	assert.Equal(t, 80.0, Item{Width: 40, Height: 80}.LongSide())
	assert.Equal(t, 50.0, Item{Width: 50, Height: 50}.LongSide())
}

func TestPackResult_FillAndAreas(t *testing.T) {
	r := PackResult{
		Bins: []Bin{{Index: 0, Width: 100, Height: 100}, {Index: 1, Width: 100, Height: 100}},
		Placements: []Placement{
			{ItemID: "a", BinIndex: 0, X: 0, Y: 0, Width: 50, Height: 100},
			{ItemID: "b", BinIndex: 0, X: 50, Y: 0, Width: 25, Height: 100},
			{ItemID: "c", BinIndex: 1, X: 0, Y: 0, Width: 10, Height: 10},
		},
	}

	assert.Equal(t, 7500.0, r.UsedArea(0))
	assert.Equal(t, 100.0, r.UsedArea(1))
	assert.InDelta(t, 75.0, r.Fill(0), 1e-9)
	assert.InDelta(t, 1.0, r.Fill(1), 1e-9)
	assert.InDelta(t, 38.0, r.TotalFill(), 1e-9)

	require.Len(t, r.BinPlacements(0), 2)
	assert.Equal(t, "a", r.BinPlacements(0)[0].ItemID)
	assert.Equal(t, "b", r.BinPlacements(0)[1].ItemID)
}

func TestPackResult_FillEmptyAndOutOfRange(t *testing.T) {
	r := PackResult{}
	assert.Equal(t, 0.0, r.Fill(0))
	assert.Equal(t, 0.0, r.Fill(-1))
	assert.Equal(t, 0.0, r.TotalFill())
}

func TestNewLayout(t *testing.T) {
	l := NewLayout()
	assert.Equal(t, "Untitled", l.Name)
	assert.Empty(t, l.Parts)
	assert.Nil(t, l.Result)
	assert.NoError(t, l.Config.Validate())
}

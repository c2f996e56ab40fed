package model

import "github.com/google/uuid"

// PartSpec represents one required part as entered by the user or read from
// an import: nominal dimensions plus how many copies are needed.
type PartSpec struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Width     float64 `json:"width"`  // mm
	Height    float64 `json:"height"` // mm
	Quantity  int     `json:"quantity"`
	Rotatable bool    `json:"rotatable"` // May be placed rotated 90°
}

// NewPartSpec creates a part with a generated short ID.
func NewPartSpec(label string, w, h float64, qty int) PartSpec {
	return PartSpec{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Width:     w,
		Height:    h,
		Quantity:  qty,
		Rotatable: true,
	}
}

// Area returns the nominal part area.
func (p PartSpec) Area() float64 {
	return p.Width * p.Height
}

// Item is a single placement unit, expanded from a PartSpec's quantity.
// Items are immutable once created.
type Item struct {
	ID        string  `json:"id"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rotatable bool    `json:"rotatable"`
}

// Area returns the item area.
func (it Item) Area() float64 {
	return it.Width * it.Height
}

// LongSide returns the larger of the item's two dimensions.
func (it Item) LongSide() float64 {
	if it.Width > it.Height {
		return it.Width
	}
	return it.Height
}

// Bin is one sheet of fixed outer dimensions. Index follows open order,
// starting at 0. All bins in a run share the same dimensions.
type Bin struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placement is the final position of one item inside a bin. Width and Height
// are the as-placed dimensions: swapped from the item's nominal dimensions
// when Rotated is true. Coordinates are bottom-left origin, y-up, unless the
// run requested a top-left origin in its config.
type Placement struct {
	ItemID   string  `json:"itemId"`
	BinIndex int     `json:"binIndex"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotated  bool    `json:"rotated"`
}

// Area returns the as-placed area.
func (p Placement) Area() float64 {
	return p.Width * p.Height
}

// Rejection records an input part that never entered the packing loop,
// together with the validation reason. Distinct from unplaced items, which
// are valid but did not fit.
type Rejection struct {
	Part   PartSpec `json:"part"`
	Reason string   `json:"reason"`
}

// PackResult holds the full solution of one pack run.
type PackResult struct {
	Bins       []Bin       `json:"bins"`
	Placements []Placement `json:"placements"`
	Unplaced   []Item      `json:"unplaced"`
	Rejected   []Rejection `json:"rejected,omitempty"`
}

// BinPlacements returns the placements belonging to the given bin,
// preserving commit order.
func (r PackResult) BinPlacements(binIndex int) []Placement {
	var out []Placement
	for _, p := range r.Placements {
		if p.BinIndex == binIndex {
			out = append(out, p)
		}
	}
	return out
}

// UsedArea returns the total live area placed into the given bin.
func (r PackResult) UsedArea(binIndex int) float64 {
	var total float64
	for _, p := range r.Placements {
		if p.BinIndex == binIndex {
			total += p.Area()
		}
	}
	return total
}

// Fill returns the usage percentage of the given bin.
func (r PackResult) Fill(binIndex int) float64 {
	if binIndex < 0 || binIndex >= len(r.Bins) {
		return 0
	}
	b := r.Bins[binIndex]
	total := b.Width * b.Height
	if total == 0 {
		return 0
	}
	return r.UsedArea(binIndex) / total * 100.0
}

// TotalFill returns overall usage percentage across all bins.
func (r PackResult) TotalFill() float64 {
	var used, total float64
	for _, b := range r.Bins {
		used += r.UsedArea(b.Index)
		total += b.Width * b.Height
	}
	if total == 0 {
		return 0
	}
	return used / total * 100.0
}

// Layout ties everything together for save/load.
type Layout struct {
	Name   string      `json:"name"`
	Parts  []PartSpec  `json:"parts"`
	Config PackConfig  `json:"config"`
	Result *PackResult `json:"result,omitempty"`
}

// NewLayout returns an empty layout with default configuration.
func NewLayout() Layout {
	return Layout{
		Name:   "Untitled",
		Parts:  []PartSpec{},
		Config: DefaultConfig(),
	}
}

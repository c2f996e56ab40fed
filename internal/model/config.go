package model

import "fmt"

// SortOrder controls the order in which expanded items are fed to the packer.
type SortOrder string

const (
	// SortDescendingArea sorts items by descending area, then descending
	// longer side, then input order. Default: larger items first tends to
	// pack tighter with a greedy search.
	SortDescendingArea SortOrder = "descending-area"
	// SortInputOrder keeps the expanded items in input order.
	SortInputOrder SortOrder = "input-order"
)

// Scoring selects the free-rectangle scoring rule used by the placement
// search.
type Scoring string

const (
	// ScoreBestShortSide minimizes the leftover on the tighter axis
	// (Best Short-Side Fit). Default.
	ScoreBestShortSide Scoring = "best-short-side"
	// ScoreBestArea minimizes the leftover free area (Best Area Fit).
	ScoreBestArea Scoring = "best-area"
)

// PackConfig holds the parameters of one pack run.
type PackConfig struct {
	BinWidth  float64 `json:"bin_width"`  // mm
	BinHeight float64 `json:"bin_height"` // mm
	Margin    float64 `json:"margin"`     // Border inset from every bin edge, mm
	Kerf      float64 `json:"kerf"`       // Blade width reserved between parts, mm

	AllowRotation bool `json:"allow_rotation"` // Permit 90° rotation for rotatable items
	OriginTopLeft bool `json:"origin_top_left"`

	SortOrder SortOrder `json:"sort_order"`
	Scoring   Scoring   `json:"scoring"`

	// MaxBins caps the number of bins opened; 0 means unlimited.
	MaxBins int `json:"max_bins"`
}

// DefaultConfig returns a config for a standard 2440x1220 sheet with a
// 3.2 mm blade and a 10 mm border.
func DefaultConfig() PackConfig {
	return PackConfig{
		BinWidth:      2440,
		BinHeight:     1220,
		Margin:        10,
		Kerf:          3.2,
		AllowRotation: true,
		SortOrder:     SortDescendingArea,
		Scoring:       ScoreBestShortSide,
	}
}

// Validate checks the configuration and returns the first problem found.
// An invalid configuration is the one fatal condition of a pack run; all
// per-part problems are reported in the result instead.
func (c PackConfig) Validate() error {
	if c.BinWidth <= 0 || c.BinHeight <= 0 {
		return fmt.Errorf("bin dimensions must be positive, got %.2f x %.2f", c.BinWidth, c.BinHeight)
	}
	if c.Kerf < 0 {
		return fmt.Errorf("kerf must not be negative, got %.2f", c.Kerf)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %.2f", c.Margin)
	}
	if c.Margin >= c.BinWidth/2 || c.Margin >= c.BinHeight/2 {
		return fmt.Errorf("margin %.2f leaves no packable area in a %.2f x %.2f bin", c.Margin, c.BinWidth, c.BinHeight)
	}
	if c.MaxBins < 0 {
		return fmt.Errorf("max bins must not be negative, got %d", c.MaxBins)
	}
	switch c.SortOrder {
	case SortDescendingArea, SortInputOrder, "":
	default:
		return fmt.Errorf("unknown sort order %q", c.SortOrder)
	}
	switch c.Scoring {
	case ScoreBestShortSide, ScoreBestArea, "":
	default:
		return fmt.Errorf("unknown scoring rule %q", c.Scoring)
	}
	return nil
}

// PackableWidth returns the usable bin width after the border inset.
func (c PackConfig) PackableWidth() float64 {
	return c.BinWidth - 2*c.Margin
}

// PackableHeight returns the usable bin height after the border inset.
func (c PackConfig) PackableHeight() float64 {
	return c.BinHeight - 2*c.Margin
}

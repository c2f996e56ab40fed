package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default pack settings applied to new layouts
	DefaultBinWidth  float64 `json:"default_bin_width"`
	DefaultBinHeight float64 `json:"default_bin_height"`
	DefaultMargin    float64 `json:"default_margin"`
	DefaultKerf      float64 `json:"default_kerf"`
	DefaultRotation  bool    `json:"default_rotation"`

	// Application preferences
	RecentLayouts []string `json:"recent_layouts"`
	OriginTopLeft bool     `json:"origin_top_left"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultConfig()
	return AppConfig{
		DefaultBinWidth:  defaults.BinWidth,
		DefaultBinHeight: defaults.BinHeight,
		DefaultMargin:    defaults.Margin,
		DefaultKerf:      defaults.Kerf,
		DefaultRotation:  defaults.AllowRotation,
		RecentLayouts:    []string{},
	}
}

// maxRecentLayouts caps the recent layouts list.
const maxRecentLayouts = 10

// AddRecentLayout records a layout file path as most recently used,
// removing any earlier occurrence and trimming the list to its cap.
func (c *AppConfig) AddRecentLayout(path string) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p == path {
			continue
		}
		recent = append(recent, p)
	}
	if len(recent) > maxRecentLayouts {
		recent = recent[:maxRecentLayouts]
	}
	c.RecentLayouts = recent
}

// ApplyToConfig copies the default values from AppConfig into a PackConfig.
// Used when creating a new layout so it inherits the user's saved defaults.
func (c AppConfig) ApplyToConfig(p *PackConfig) {
	p.BinWidth = c.DefaultBinWidth
	p.BinHeight = c.DefaultBinHeight
	p.Margin = c.DefaultMargin
	p.Kerf = c.DefaultKerf
	p.AllowRotation = c.DefaultRotation
	p.OriginTopLeft = c.OriginTopLeft
}

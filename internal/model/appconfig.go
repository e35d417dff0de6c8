package model

// AppConfig holds application-wide preferences persisted between runs.
type AppConfig struct {
	PredictorURL string  `json:"predictor_url"`
	RoomType     string  `json:"room_type"`
	SnapEnabled  bool    `json:"snap_enabled"`
	GridStep     float64 `json:"grid_step"`
	MinSpacing   float64 `json:"min_spacing"`
	MaxItems     int     `json:"max_items"`
	MaxCoverage  float64 `json:"max_coverage"`

	// Application preferences
	RecentLayouts []string `json:"recent_layouts"`
	Theme         string   `json:"theme"` // "light", "dark", "system"
}

// DefaultPredictorURL is where the placement-suggestion service listens by default.
const DefaultPredictorURL = "http://localhost:5000"

// DefaultAppConfig returns an AppConfig populated with defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		PredictorURL:  DefaultPredictorURL,
		RoomType:      RoomLiving,
		SnapEnabled:   false,
		GridStep:      defaults.GridStep,
		MinSpacing:    defaults.MinSpacing,
		MaxItems:      defaults.MaxItems,
		MaxCoverage:   defaults.MaxCoverage,
		RecentLayouts: []string{},
		Theme:         "system",
	}
}

// ApplyToSettings copies the user's thresholds into a LayoutSettings struct.
// Zero values leave the existing setting untouched.
func (c AppConfig) ApplyToSettings(s *LayoutSettings) {
	if c.GridStep > 0 {
		s.GridStep = c.GridStep
	}
	if c.MinSpacing > 0 {
		s.MinSpacing = c.MinSpacing
	}
	if c.MaxItems > 0 {
		s.MaxItems = c.MaxItems
	}
	if c.MaxCoverage > 0 {
		s.MaxCoverage = c.MaxCoverage
	}
}

// AddRecentLayout moves path to the front of the recent list, capped at max entries.
func (c *AppConfig) AddRecentLayout(path string, max int) {
	out := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			out = append(out, p)
		}
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	c.RecentLayouts = out
}

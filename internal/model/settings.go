package model

// Room types accepted by the placement-suggestion service.
const (
	RoomLiving  = "living_room"
	RoomBedroom = "bedroom"
	RoomKitchen = "kitchen"
)

// LayoutSettings holds the fixed thresholds used by validation, auto-fix,
// capacity tracking and interaction.
type LayoutSettings struct {
	CanvasWidth  float64 `json:"canvas_width"`  // px
	CanvasHeight float64 `json:"canvas_height"` // px
	MinSpacing   float64 `json:"min_spacing"`   // px, 40 px = 80 cm
	BoundsMargin float64 `json:"bounds_margin"` // px kept clear at the canvas edge

	MaxItems             int     `json:"max_items"`
	MaxCoverage          float64 `json:"max_coverage"`           // ratio of canvas area
	WarningCoverageRatio float64 `json:"warning_coverage_ratio"` // fraction of MaxCoverage that raises a warning
	MaxFixPasses         int     `json:"max_fix_passes"`

	ScaleFactor float64 `json:"scale_factor"`  // px per predictor unit
	PixelsPerCM float64 `json:"pixels_per_cm"` // catalog footprint conversion

	MinItemSize        float64 `json:"min_item_size"`
	HandleRadius       float64 `json:"handle_radius"`
	GridStep           float64 `json:"grid_step"`
	DefaultItemSize    float64 `json:"default_item_size"`
	DefaultColor       string  `json:"default_color"`
	DefaultChamferSize float64 `json:"default_chamfer_size"`
}

// DefaultChamferSize is the cut size given to new items.
const DefaultChamferSize = 20

// DefaultSettings returns the standard editor thresholds.
func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		CanvasWidth:          800,
		CanvasHeight:         800,
		MinSpacing:           40,
		BoundsMargin:         10,
		MaxItems:             5,
		MaxCoverage:          0.30,
		WarningCoverageRatio: 0.8,
		MaxFixPasses:         3,
		ScaleFactor:          50,
		PixelsPerCM:          0.5,
		MinItemSize:          10,
		HandleRadius:         10,
		GridStep:             10,
		DefaultItemSize:      100,
		DefaultColor:         "#8B7355",
		DefaultChamferSize:   DefaultChamferSize,
	}
}

// CanvasArea returns the drawable area in square pixels.
func (s LayoutSettings) CanvasArea() float64 {
	return s.CanvasWidth * s.CanvasHeight
}

// CanvasRect returns the full canvas as a rectangle.
func (s LayoutSettings) CanvasRect() Rect {
	return Rect{Width: s.CanvasWidth, Height: s.CanvasHeight}
}

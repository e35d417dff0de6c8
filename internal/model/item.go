package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Corner identifies one corner of a rectangle.
type Corner string

const (
	CornerNone        Corner = "none"
	CornerTopLeft     Corner = "top-left"
	CornerTopRight    Corner = "top-right"
	CornerBottomLeft  Corner = "bottom-left"
	CornerBottomRight Corner = "bottom-right"
)

// Corners lists the four real corners in handle hit-test order.
var Corners = []Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}

// Opposite returns the diagonally opposite corner.
func (c Corner) Opposite() Corner {
	switch c {
	case CornerTopLeft:
		return CornerBottomRight
	case CornerTopRight:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopRight
	case CornerBottomRight:
		return CornerTopLeft
	default:
		return CornerNone
	}
}

// Valid reports whether c is one of the known corner values.
func (c Corner) Valid() bool {
	switch c {
	case CornerNone, CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight:
		return true
	}
	return false
}

// Chamfer describes an optional corner cut drawn on an item.
type Chamfer struct {
	Corner Corner  `json:"corner"`
	Size   float64 `json:"size"`
}

// WarningKind is the closed set of validation states an item can carry.
type WarningKind string

const (
	WarningNone      WarningKind = "none"
	WarningCollision WarningKind = "collision"
	WarningTooClose  WarningKind = "too-close"
)

// Warning is the derived validation state of a placed item.
type Warning struct {
	Kind WarningKind `json:"kind"`
}

// HasWarning reports whether the item needs attention.
func (w Warning) HasWarning() bool {
	return w.Kind == WarningCollision || w.Kind == WarningTooClose
}

// PlacedItem is a furniture rectangle on a floor.
type PlacedItem struct {
	Rect
	ID        string  `json:"id"`
	CatalogID string  `json:"catalog_id,omitempty"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Zone      string  `json:"zone"`
	Chamfer   Chamfer `json:"chamfer"`
	Warning   Warning `json:"warning"`
}

// DefaultZone is assigned when no zone label is supplied.
const DefaultZone = "center"

// NewItemID builds a unique placed-item identifier from the catalog id,
// the current time and a random suffix.
func NewItemID(catalogID string) string {
	if catalogID == "" {
		catalogID = "item"
	}
	return fmt.Sprintf("%s-%d-%s", catalogID, time.Now().UnixMilli(), uuid.New().String()[:8])
}

// NewPlacedItem creates a clean, un-chamfered item for the given catalog entry.
func NewPlacedItem(catalogID, name, color string, r Rect) PlacedItem {
	return PlacedItem{
		Rect:      r,
		ID:        NewItemID(catalogID),
		CatalogID: catalogID,
		Name:      name,
		Color:     color,
		Zone:      DefaultZone,
		Chamfer:   Chamfer{Corner: CornerNone, Size: DefaultChamferSize},
		Warning:   Warning{Kind: WarningNone},
	}
}

// Rotate swaps width and height in place. The origin is unchanged.
func (p *PlacedItem) Rotate() {
	p.Width, p.Height = p.Height, p.Width
}

// ZoneBadge returns the single letter shown for the item's zone.
func (p PlacedItem) ZoneBadge() string {
	switch p.Zone {
	case "wall":
		return "W"
	case "corner":
		return "R"
	case "center", "":
		return "C"
	default:
		return strings.ToUpper(string([]rune(p.Zone)[:1]))
	}
}

// Outline returns the item's polygon with the chamfer corner cut off.
// The cut never exceeds a third of the shorter side.
func (p PlacedItem) Outline() []Point {
	x, y, w, h := p.X, p.Y, p.Width, p.Height
	cs := math.Min(p.Chamfer.Size, math.Min(w, h)/3)
	if p.Chamfer.Corner == CornerNone || p.Chamfer.Corner == "" || cs <= 0 {
		return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	switch p.Chamfer.Corner {
	case CornerTopLeft:
		return []Point{{x + cs, y}, {x + w, y}, {x + w, y + h}, {x, y + h}, {x, y + cs}}
	case CornerTopRight:
		return []Point{{x, y}, {x + w - cs, y}, {x + w, y + cs}, {x + w, y + h}, {x, y + h}}
	case CornerBottomRight:
		return []Point{{x, y}, {x + w, y}, {x + w, y + h - cs}, {x + w - cs, y + h}, {x, y + h}}
	default:
		return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x + cs, y + h}, {x, y + h - cs}}
	}
}

// CloneItems returns a deep copy of items. A nil slice stays nil.
func CloneItems(items []PlacedItem) []PlacedItem {
	if items == nil {
		return nil
	}
	out := make([]PlacedItem, len(items))
	copy(out, items)
	return out
}

// Package ingest converts placement suggestions into validated, repaired
// items for the active floor.
package ingest

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
)

const fallbackName = "Furniture"

// Normalize maps suggestions from predictor units to canvas pixels and
// attaches style from the matching cart entry. Suggestions with non-finite
// values or non-positive sizes are skipped and reported. A missing size
// falls back to the cart entry's footprint, then to DefaultItemSize.
func Normalize(data []predictor.Suggestion, cart []model.CatalogEntry, s model.LayoutSettings) ([]model.PlacedItem, []*model.InvalidGeometryError) {
	var items []model.PlacedItem
	var skipped []*model.InvalidGeometryError

	for _, sg := range data {
		entry := matchEntry(sg, cart)
		name := sg.Name
		if name == "" && entry != nil {
			name = entry.Name
		}
		if name == "" {
			name = fallbackName
		}

		r, err := toCanvas(sg, entry, s)
		if err != nil {
			skipped = append(skipped, &model.InvalidGeometryError{Name: name, Reason: err.Error()})
			continue
		}

		catalogID := sg.ID
		color := s.DefaultColor
		if entry != nil {
			catalogID = entry.ID
			if entry.Color != "" {
				color = entry.Color
			}
		}

		it := model.NewPlacedItem(catalogID, name, color, clamp(r, s))
		it.Chamfer.Size = s.DefaultChamferSize
		if sg.Zone != "" {
			it.Zone = sg.Zone
		}
		items = append(items, it)
	}
	return items, skipped
}

func toCanvas(sg predictor.Suggestion, entry *model.CatalogEntry, s model.LayoutSettings) (model.Rect, error) {
	if !finite(sg.X) || !finite(sg.Y) {
		return model.Rect{}, fmt.Errorf("non-finite position (%v, %v)", sg.X, sg.Y)
	}

	var fw, fh float64
	if entry != nil {
		fw, fh = entry.FootprintPx(s.PixelsPerCM)
	}
	w, err := dimension(sg.Width, fw, s)
	if err != nil {
		return model.Rect{}, fmt.Errorf("width: %w", err)
	}
	h, err := dimension(sg.Height, fh, s)
	if err != nil {
		return model.Rect{}, fmt.Errorf("height: %w", err)
	}

	return model.Rect{
		X:      sg.X * s.ScaleFactor,
		Y:      sg.Y * s.ScaleFactor,
		Width:  w,
		Height: h,
	}, nil
}

func dimension(v *float64, footprint float64, s model.LayoutSettings) (float64, error) {
	if v == nil {
		if footprint > 0 {
			return footprint, nil
		}
		return s.DefaultItemSize, nil
	}
	if !finite(*v) {
		return 0, fmt.Errorf("non-finite value %v", *v)
	}
	if *v <= 0 {
		return 0, fmt.Errorf("non-positive value %v", *v)
	}
	return *v * s.ScaleFactor, nil
}

// clamp fits r inside the canvas minus the bounds margin. Oversized items
// are shrunk to the available space, never below the minimum item size.
func clamp(r model.Rect, s model.LayoutSettings) model.Rect {
	m := s.BoundsMargin
	maxW := math.Max(s.CanvasWidth-2*m, s.MinItemSize)
	maxH := math.Max(s.CanvasHeight-2*m, s.MinItemSize)
	r.Width = math.Max(math.Min(r.Width, maxW), s.MinItemSize)
	r.Height = math.Max(math.Min(r.Height, maxH), s.MinItemSize)
	r.X = math.Max(m, math.Min(r.X, s.CanvasWidth-m-r.Width))
	r.Y = math.Max(m, math.Min(r.Y, s.CanvasHeight-m-r.Height))
	return r
}

// matchEntry finds the cart entry for a suggestion by catalog id, then by name.
func matchEntry(sg predictor.Suggestion, cart []model.CatalogEntry) *model.CatalogEntry {
	if sg.ID != "" {
		for i := range cart {
			if cart[i].ID == sg.ID {
				return &cart[i]
			}
		}
	}
	if sg.Name != "" {
		for i := range cart {
			if strings.EqualFold(cart[i].Name, sg.Name) {
				return &cart[i]
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

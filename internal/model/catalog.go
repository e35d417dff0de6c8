package model

import (
	"strings"

	"github.com/google/uuid"
)

// Catalog categories.
const (
	CategoryAll        = "all"
	CategoryLiving     = "living"
	CategoryDining     = "dining"
	CategoryBedroom    = "bedroom"
	CategoryOffice     = "office"
	CategoryKitchen    = "kitchen"
	CategoryDecoration = "decoration"
	CategoryOutdoor    = "outdoor"
)

// Categories lists the filter options in display order.
var Categories = []string{
	CategoryAll, CategoryLiving, CategoryDining, CategoryBedroom,
	CategoryOffice, CategoryKitchen, CategoryDecoration, CategoryOutdoor,
}

// CatalogEntry is a piece of furniture that can be added to the cart.
// Width and Depth are the nominal footprint in centimetres.
type CatalogEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Note     string  `json:"note,omitempty"`
}

// NewCatalogEntry creates a catalog entry with a generated ID.
func NewCatalogEntry(name string, width, depth float64, category, color string) CatalogEntry {
	return CatalogEntry{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    width,
		Depth:    depth,
		Category: category,
		Color:    color,
	}
}

// FootprintPx returns the entry's footprint converted to canvas pixels.
func (e CatalogEntry) FootprintPx(pixelsPerCM float64) (w, h float64) {
	return e.Width * pixelsPerCM, e.Depth * pixelsPerCM
}

// Catalog is the static list of furniture available for placement.
type Catalog struct {
	Entries []CatalogEntry `json:"entries"`
}

// FindByID returns the entry with the given ID, or nil.
func (c *Catalog) FindByID(id string) *CatalogEntry {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i]
		}
	}
	return nil
}

// FindByName returns the first entry whose name matches case-insensitively, or nil.
func (c *Catalog) FindByName(name string) *CatalogEntry {
	for i := range c.Entries {
		if strings.EqualFold(c.Entries[i].Name, name) {
			return &c.Entries[i]
		}
	}
	return nil
}

// Filter returns the entries of the given category. "all" or "" returns every entry.
func (c *Catalog) Filter(category string) []CatalogEntry {
	if category == "" || category == CategoryAll {
		return append([]CatalogEntry(nil), c.Entries...)
	}
	var out []CatalogEntry
	for _, e := range c.Entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// DefaultCatalog returns the built-in furniture list.
func DefaultCatalog() Catalog {
	return Catalog{Entries: []CatalogEntry{
		{ID: "1", Name: "Sofa 3 Seat", Width: 260, Depth: 100, Category: CategoryLiving, Color: "#8B7355"},
		{ID: "2", Name: "Sofa 1 Seat Large", Width: 115, Depth: 100, Category: CategoryLiving, Color: "#8B7355"},
		{ID: "3", Name: "Sofa 1 Seat Small", Width: 94, Depth: 80, Category: CategoryLiving, Color: "#A0826D"},
		{ID: "4", Name: "Round Table Large", Width: 98, Depth: 98, Category: CategoryLiving, Color: "#8B4513", Note: "Diameter 98cm"},
		{ID: "5", Name: "Round Table Small", Width: 50, Depth: 50, Category: CategoryLiving, Color: "#8B4513", Note: "Diameter 50cm"},
		{ID: "6", Name: "Wooden Chair", Width: 98, Depth: 100, Category: CategoryLiving, Color: "#A0826D"},
		{ID: "7", Name: "Flower Pot Small", Width: 36, Depth: 36, Category: CategoryDecoration, Color: "#228B22", Note: "Diameter 36cm"},
		{ID: "8", Name: "Flower Pot Medium", Width: 43, Depth: 43, Category: CategoryDecoration, Color: "#228B22", Note: "Diameter 43cm"},
		{ID: "9", Name: "Flower Pot Large", Width: 60, Depth: 60, Category: CategoryDecoration, Color: "#228B22", Note: "Diameter 60cm"},
		{ID: "10", Name: "Painting Stand", Width: 82, Depth: 72, Category: CategoryDecoration, Color: "#654321", Note: "82x72x150cm"},
		{ID: "11", Name: "Painting Small", Width: 60, Depth: 80, Category: CategoryLiving, Color: "#8B4513"},
		{ID: "12", Name: "Painting Large", Width: 425, Depth: 180, Category: CategoryLiving, Color: "#654321"},
		{ID: "13", Name: "Dining Table", Width: 240, Depth: 100, Category: CategoryDining, Color: "#8B4513"},
		{ID: "14", Name: "Dining Chair", Width: 46, Depth: 75, Category: CategoryDining, Color: "#A0826D"},
		{ID: "15", Name: "Beach Chair", Width: 80, Depth: 200, Category: CategoryOutdoor, Color: "#4682B4"},
	}}
}

package session

import (
	"fmt"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// Cart is the ordered list of catalog entries pending placement.
// Duplicates are allowed and each position is removable on its own.
type Cart struct {
	entries []model.CatalogEntry
}

func NewCart() *Cart { return &Cart{} }

// Add appends a copy of e.
func (c *Cart) Add(e model.CatalogEntry) {
	c.entries = append(c.entries, e)
}

// RemoveAt removes the entry at index i.
func (c *Cart) RemoveAt(i int) error {
	if i < 0 || i >= len(c.entries) {
		return fmt.Errorf("cart index %d out of range [0,%d)", i, len(c.entries))
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return nil
}

func (c *Cart) Clear() { c.entries = nil }

func (c *Cart) Len() int { return len(c.entries) }

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []model.CatalogEntry {
	return append([]model.CatalogEntry(nil), c.entries...)
}

// Replace swaps the cart contents, used when restoring a saved layout.
func (c *Cart) Replace(entries []model.CatalogEntry) {
	c.entries = append([]model.CatalogEntry(nil), entries...)
}

// TotalArea returns the summed nominal footprint in square canvas pixels.
func (c *Cart) TotalArea(pixelsPerCM float64) float64 {
	return TotalArea(c.entries, pixelsPerCM)
}

// TotalArea sums the footprints of entries in square canvas pixels.
func TotalArea(entries []model.CatalogEntry, pixelsPerCM float64) float64 {
	total := 0.0
	for _, e := range entries {
		w, h := e.FootprintPx(pixelsPerCM)
		total += w * h
	}
	return total
}

// Truncate splits entries into the first n and the rest.
func Truncate(entries []model.CatalogEntry, n int) (kept, dropped []model.CatalogEntry) {
	if n < 0 || len(entries) <= n {
		return append([]model.CatalogEntry(nil), entries...), nil
	}
	kept = append([]model.CatalogEntry(nil), entries[:n]...)
	dropped = append([]model.CatalogEntry(nil), entries[n:]...)
	return kept, dropped
}

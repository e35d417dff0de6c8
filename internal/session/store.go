// Package session holds the mutable editing state of the layout editor:
// the active floor's item store, the per-floor session map, the selection
// cart with its capacity evaluation, and undo history.
package session

import (
	"github.com/piwi3910/FurniLayout/internal/engine"
	"github.com/piwi3910/FurniLayout/internal/model"
)

// Store is the ordered item collection of the active floor. Order is draw
// order: later items are drawn on top. Warnings are recomputed after every
// mutation.
type Store struct {
	items   []model.PlacedItem
	spacing float64
}

// NewStore creates an empty store that classifies items with the given spacing.
func NewStore(spacing float64) *Store {
	return &Store{spacing: spacing}
}

// Items returns a copy of the items in draw order.
func (s *Store) Items() []model.PlacedItem {
	out := model.CloneItems(s.items)
	if out == nil {
		out = []model.PlacedItem{}
	}
	return out
}

func (s *Store) Len() int { return len(s.items) }

// Index returns the position of the item with the given id, or -1.
func (s *Store) Index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (model.PlacedItem, bool) {
	i := s.Index(id)
	if i < 0 {
		return model.PlacedItem{}, false
	}
	return s.items[i], true
}

// Replace swaps the whole item set.
func (s *Store) Replace(items []model.PlacedItem) {
	s.items = model.CloneItems(items)
	s.refresh()
}

// Update applies fn to the item with the given id. Returns false if it does not exist.
func (s *Store) Update(id string, fn func(*model.PlacedItem)) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	fn(&s.items[i])
	s.refresh()
	return true
}

// Remove deletes the item with the given id.
func (s *Store) Remove(id string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.refresh()
	return true
}

// Clear removes every item.
func (s *Store) Clear() {
	s.items = nil
}

// TopmostAt returns the last-drawn item whose rectangle contains p.
func (s *Store) TopmostAt(p model.Point) (model.PlacedItem, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Contains(p) {
			return s.items[i], true
		}
	}
	return model.PlacedItem{}, false
}

// Report returns the current validation report.
func (s *Store) Report() engine.Report {
	return engine.Validate(s.items, s.spacing)
}

// SetSpacing changes the minimum spacing and reclassifies every item.
func (s *Store) SetSpacing(spacing float64) {
	s.spacing = spacing
	s.refresh()
}

func (s *Store) refresh() {
	report := engine.Validate(s.items, s.spacing)
	for i := range s.items {
		s.items[i].Warning = model.Warning{Kind: report.Kinds[i]}
	}
}

package interact

import (
	"math"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// Remover is the store capability needed to delete items.
type Remover interface {
	Remove(id string) bool
}

// Rotate swaps the item's width and height, keeping its origin, and commits.
func Rotate(store ItemStore, c Committer, id string) bool {
	if !store.Update(id, func(it *model.PlacedItem) { it.Rotate() }) {
		return false
	}
	c.Commit()
	return true
}

// Delete removes the item and commits. The caller clears the selection.
func Delete(store Remover, c Committer, id string) bool {
	if !store.Remove(id) {
		return false
	}
	c.Commit()
	return true
}

// Resize sets an exact size, clamped to the minimum, and commits.
// Infinite sizes are rejected.
func Resize(store ItemStore, c Committer, id string, w, h, minSize float64) bool {
	if math.IsInf(w, 0) || math.IsInf(h, 0) {
		return false
	}
	if !(w >= minSize) {
		w = minSize
	}
	if !(h >= minSize) {
		h = minSize
	}
	if !store.Update(id, func(it *model.PlacedItem) { it.Width, it.Height = w, h }) {
		return false
	}
	c.Commit()
	return true
}

// SetChamfer changes the corner cut of an item and commits. Negative sizes become zero.
func SetChamfer(store ItemStore, c Committer, id string, ch model.Chamfer) bool {
	if !ch.Corner.Valid() {
		ch.Corner = model.CornerNone
	}
	if ch.Size < 0 {
		ch.Size = 0
	}
	if !store.Update(id, func(it *model.PlacedItem) { it.Chamfer = ch }) {
		return false
	}
	c.Commit()
	return true
}

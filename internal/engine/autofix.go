package engine

import (
	"log"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// Move records one accepted relocation.
type Move struct {
	ItemID string  `json:"item_id"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
}

// FixResult is the outcome of an auto-fix run.
type FixResult struct {
	Items     []model.PlacedItem
	Removed   []model.PlacedItem
	Moves     []Move
	Passes    int
	Remaining int

	// Warning is set when overlaps survived every pass.
	Warning *model.UnresolvedOverlapWarning
}

// Changed reports whether the run moved or removed anything.
func (r FixResult) Changed() bool {
	return len(r.Moves) > 0 || len(r.Removed) > 0
}

// Fixer repairs true overlaps by nudging items and, failing that, removing them.
type Fixer struct {
	Settings model.LayoutSettings
}

func New(settings model.LayoutSettings) *Fixer {
	return &Fixer{Settings: settings}
}

// offsets returns the candidate shifts in the order they are tried.
func (f *Fixer) offsets() [][2]float64 {
	s := f.Settings.MinSpacing
	return [][2]float64{
		{s, 0}, {-s, 0}, {0, s}, {0, -s},
		{s, s}, {-s, s}, {s, -s}, {-s, -s},
		{2 * s, 0}, {-2 * s, 0},
	}
}

// Fix runs up to MaxFixPasses repair passes over items. The input slice is
// not modified. A set with no true overlaps is returned unchanged.
func (f *Fixer) Fix(items []model.PlacedItem) FixResult {
	result := FixResult{Items: model.CloneItems(items)}
	report := Validate(result.Items, f.Settings.MinSpacing)

	for !report.Clean() && result.Passes < f.Settings.MaxFixPasses {
		changed := f.pass(&result)
		result.Passes++
		report = Validate(result.Items, f.Settings.MinSpacing)
		if !changed {
			break
		}
	}

	result.Remaining = report.CollisionCount
	if result.Remaining > 0 {
		result.Warning = &model.UnresolvedOverlapWarning{
			Remaining: report.CollisionCount,
			Pairs:     report.Collisions,
		}
		log.Printf("[AUTOFIX] %d overlap(s) remain after %d pass(es)", result.Remaining, result.Passes)
	}
	return result
}

// pass walks every pair i < j once. When they overlap, j is shifted to the
// first candidate position that stays in bounds and clear of every other
// item, or removed when none works.
func (f *Fixer) pass(result *FixResult) bool {
	items := result.Items
	changed := false

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if !items[i].Overlaps(items[j].Rect) {
				continue
			}
			if dx, dy, ok := f.findShift(items, j); ok {
				items[j].Rect = items[j].Translate(dx, dy)
				result.Moves = append(result.Moves, Move{ItemID: items[j].ID, DX: dx, DY: dy})
				changed = true
				continue
			}
			log.Printf("[AUTOFIX] removing %q: no free position found", label(items[j]))
			result.Removed = append(result.Removed, items[j])
			items = append(items[:j], items[j+1:]...)
			j--
			changed = true
		}
	}

	result.Items = items
	return changed
}

func (f *Fixer) findShift(items []model.PlacedItem, j int) (float64, float64, bool) {
	s := f.Settings
	for _, off := range f.offsets() {
		trial := items[j].Translate(off[0], off[1])
		if !trial.InsideBounds(s.CanvasWidth, s.CanvasHeight, s.BoundsMargin) {
			continue
		}
		if overlapsAny(trial, items, j) {
			continue
		}
		return off[0], off[1], true
	}
	return 0, 0, false
}

func overlapsAny(r model.Rect, items []model.PlacedItem, skip int) bool {
	for k := range items {
		if k != skip && r.Overlaps(items[k].Rect) {
			return true
		}
	}
	return false
}

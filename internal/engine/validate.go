package engine

import "github.com/piwi3910/FurniLayout/internal/model"

// Report is the classification of a whole item set.
type Report struct {
	CollisionCount int                 `json:"collision_count"`
	TooCloseCount  int                 `json:"too_close_count"`
	Collisions     []model.OverlapPair `json:"collisions"`
	TooClose       []model.OverlapPair `json:"too_close"`

	// Kinds holds the per-item warning, indexed like the input slice.
	Kinds []model.WarningKind `json:"-"`
}

// Clean reports whether no pair truly overlaps.
func (r Report) Clean() bool { return r.CollisionCount == 0 }

// Validate scans every pair of items once. A pair is a collision when the
// rectangles truly overlap, otherwise too-close when their edge gap is
// below spacing. An item in any collision is flagged collision, which takes
// precedence over too-close.
func Validate(items []model.PlacedItem, spacing float64) Report {
	r := Report{Kinds: make([]model.WarningKind, len(items))}
	for i := range r.Kinds {
		r.Kinds[i] = model.WarningNone
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			pair := model.OverlapPair{A: label(a), B: label(b)}
			if a.Overlaps(b.Rect) {
				r.CollisionCount++
				r.Collisions = append(r.Collisions, pair)
				r.Kinds[i] = model.WarningCollision
				r.Kinds[j] = model.WarningCollision
				continue
			}
			if a.EdgeGap(b.Rect) < spacing {
				r.TooCloseCount++
				r.TooClose = append(r.TooClose, pair)
				if r.Kinds[i] != model.WarningCollision {
					r.Kinds[i] = model.WarningTooClose
				}
				if r.Kinds[j] != model.WarningCollision {
					r.Kinds[j] = model.WarningTooClose
				}
			}
		}
	}
	return r
}

// Annotate returns a copy of items with every Warning recomputed.
func Annotate(items []model.PlacedItem, spacing float64) []model.PlacedItem {
	report := Validate(items, spacing)
	out := model.CloneItems(items)
	for i := range out {
		out[i].Warning = model.Warning{Kind: report.Kinds[i]}
	}
	return out
}

// Warned returns the items that carry a collision or too-close warning.
func Warned(items []model.PlacedItem) []model.PlacedItem {
	var out []model.PlacedItem
	for _, it := range items {
		if it.Warning.HasWarning() {
			out = append(out, it)
		}
	}
	return out
}

func label(it model.PlacedItem) string {
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

package session

import (
	"fmt"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// Level is the severity of a capacity state.
type Level string

const (
	LevelNone     Level = "none"
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// CapacityState is derived from the cart on every change and never persisted.
type CapacityState struct {
	Level              Level   `json:"level"`
	Count              int     `json:"count"`
	MaxItems           int     `json:"max_items"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	MaxCoveragePercent float64 `json:"max_coverage_percent"`
	Message            string  `json:"message"`
}

// OverCount reports whether the cart holds more entries than may be placed.
func (c CapacityState) OverCount() bool { return c.Count > c.MaxItems }

// Err returns a *model.CapacityExceededError when the state is critical.
func (c CapacityState) Err() error {
	if c.Level != LevelCritical {
		return nil
	}
	return &model.CapacityExceededError{
		Count:       c.Count,
		MaxItems:    c.MaxItems,
		Coverage:    c.CoveragePercentage,
		MaxCoverage: c.MaxCoveragePercent,
	}
}

// EvaluateCapacity classifies the cart against the count and coverage limits.
// Critical when either limit is exceeded; warning when the count reaches the
// maximum or coverage reaches WarningCoverageRatio of its maximum; info for
// any other non-empty cart.
func EvaluateCapacity(entries []model.CatalogEntry, s model.LayoutSettings) CapacityState {
	st := CapacityState{
		Level:              LevelNone,
		Count:              len(entries),
		MaxItems:           s.MaxItems,
		MaxCoveragePercent: s.MaxCoverage * 100,
	}
	if area := s.CanvasArea(); area > 0 {
		st.CoveragePercentage = TotalArea(entries, s.PixelsPerCM) / area * 100
	}
	coverage := st.CoveragePercentage / 100

	switch {
	case st.Count == 0:
		st.Message = "No furniture selected"
	case st.Count > s.MaxItems || coverage > s.MaxCoverage:
		st.Level = LevelCritical
		st.Message = fmt.Sprintf("Capacity exceeded: %d items (max %d), %.1f%% coverage (max %.0f%%)",
			st.Count, st.MaxItems, st.CoveragePercentage, st.MaxCoveragePercent)
		if st.OverCount() {
			st.Message += fmt.Sprintf(". Only the first %d will be placed", st.MaxItems)
		}
	case st.Count == s.MaxItems || coverage >= s.MaxCoverage*s.WarningCoverageRatio:
		st.Level = LevelWarning
		st.Message = fmt.Sprintf("Near the limit: %d of %d items, %.1f%% coverage (max %.0f%%)",
			st.Count, st.MaxItems, st.CoveragePercentage, st.MaxCoveragePercent)
	default:
		st.Level = LevelInfo
		st.Message = fmt.Sprintf("%d of %d items selected, %.1f%% coverage",
			st.Count, st.MaxItems, st.CoveragePercentage)
	}
	return st
}

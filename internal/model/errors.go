package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCart is returned when an automatic layout is requested with nothing selected.
var ErrEmptyCart = errors.New("cart is empty: add furniture before requesting a layout")

// CapacityExceededError reports that the cart is over the item count or
// coverage limit. The caller must confirm before proceeding.
type CapacityExceededError struct {
	Count       int
	MaxItems    int
	Coverage    float64 // percent
	MaxCoverage float64 // percent
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("cart exceeds capacity: %d items (max %d), %.1f%% coverage (max %.0f%%)",
		e.Count, e.MaxItems, e.Coverage, e.MaxCoverage)
}

// PredictorUnavailableError wraps a failure of the placement-suggestion service.
// Existing state is never modified when this is returned.
type PredictorUnavailableError struct {
	Reason string
	Err    error
}

func (e *PredictorUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("placement service unavailable: %s: %v", e.Reason, e.Err)
	}
	return "placement service unavailable: " + e.Reason
}

func (e *PredictorUnavailableError) Unwrap() error { return e.Err }

// InvalidGeometryError describes a suggestion that was skipped because its
// coordinates or dimensions were not usable.
type InvalidGeometryError struct {
	Name   string
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry for %q: %s", e.Name, e.Reason)
}

// OverlapPair names two items that truly overlap.
type OverlapPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (p OverlapPair) String() string { return p.A + " vs " + p.B }

// UnresolvedOverlapWarning is reported when auto-fix ran out of passes with
// overlaps remaining. It is informational and never blocks the layout.
type UnresolvedOverlapWarning struct {
	Remaining int           `json:"remaining"`
	Pairs     []OverlapPair `json:"pairs"`
}

func (w UnresolvedOverlapWarning) String() string {
	names := make([]string, len(w.Pairs))
	for i, p := range w.Pairs {
		names[i] = p.String()
	}
	return fmt.Sprintf("%d overlap(s) could not be resolved: %s", w.Remaining, strings.Join(names, ", "))
}

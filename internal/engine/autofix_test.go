package engine

import (
	"fmt"
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix_RelocatesSecondItem(t *testing.T) {
	f := New(model.DefaultSettings())
	items := []model.PlacedItem{
		item("a", 0, 0, 100, 100),
		item("b", 50, 50, 100, 100),
	}

	res := f.Fix(items)

	require.Len(t, res.Items, 2)
	assert.Empty(t, res.Removed)
	assert.Equal(t, 0, res.Remaining)
	assert.Nil(t, res.Warning)
	assert.Equal(t, model.Rect{X: 0, Y: 0, Width: 100, Height: 100}, res.Items[0].Rect, "first item never moves")
	assert.Equal(t, 0, Validate(res.Items, 40).CollisionCount)
	// Every single-step shift still overlaps, so the double step right wins.
	require.Len(t, res.Moves, 1)
	assert.Equal(t, Move{ItemID: "b", DX: 80, DY: 0}, res.Moves[0])
	// Input untouched
	assert.Equal(t, 50.0, items[1].X)
}

func TestFix_IdempotentOnCleanSet(t *testing.T) {
	f := New(model.DefaultSettings())
	items := []model.PlacedItem{
		item("a", 20, 20, 100, 100),
		item("b", 300, 20, 100, 100),
		item("c", 20, 300, 100, 100),
	}

	res := f.Fix(items)

	assert.Equal(t, items, res.Items)
	assert.False(t, res.Changed())
	assert.Equal(t, 0, res.Passes)

	again := f.Fix(res.Items)
	assert.Equal(t, res.Items, again.Items)
	assert.False(t, again.Changed())
}

func TestFix_TerminatesWhenAllItemsStacked(t *testing.T) {
	f := New(model.DefaultSettings())
	var items []model.PlacedItem
	for i := 0; i < 20; i++ {
		items = append(items, item(fmt.Sprintf("i%d", i), 0, 0, 100, 100))
	}

	res := f.Fix(items)

	assert.LessOrEqual(t, res.Passes, f.Settings.MaxFixPasses)
	assert.Equal(t, 0, Validate(res.Items, 40).CollisionCount)
	assert.Equal(t, len(items), len(res.Items)+len(res.Removed))
	// (0,0) violates the margin, so nothing can be shifted and all but the first go.
	assert.Len(t, res.Items, 1)
}

func TestFix_TerminatesWithDegenerateRects(t *testing.T) {
	f := New(model.DefaultSettings())
	var items []model.PlacedItem
	for i := 0; i < 10; i++ {
		items = append(items, item(fmt.Sprintf("p%d", i), 400, 400, 1, 1))
	}

	res := f.Fix(items)

	assert.LessOrEqual(t, res.Passes, f.Settings.MaxFixPasses)
	assert.Equal(t, res.Remaining, Validate(res.Items, 40).CollisionCount)
}

func TestFix_RemovesWhenNoShiftFits(t *testing.T) {
	s := model.DefaultSettings()
	s.CanvasWidth = 200
	s.CanvasHeight = 200
	f := New(s)
	items := []model.PlacedItem{
		item("a", 10, 10, 180, 180),
		item("b", 20, 20, 170, 170),
	}

	res := f.Fix(items)

	require.Len(t, res.Items, 1)
	require.Len(t, res.Removed, 1)
	assert.Equal(t, "b", res.Removed[0].ID)
	assert.Equal(t, 0, res.Remaining)
}

func TestFix_ReportsRemainingWhenBudgetExhausted(t *testing.T) {
	s := model.DefaultSettings()
	s.MaxFixPasses = 0
	f := New(s)
	items := []model.PlacedItem{
		item("a", 0, 0, 100, 100),
		item("b", 50, 50, 100, 100),
	}

	res := f.Fix(items)

	assert.Equal(t, 1, res.Remaining)
	require.NotNil(t, res.Warning)
	assert.Equal(t, 1, res.Warning.Remaining)
	assert.Equal(t, "a vs b", res.Warning.Pairs[0].String())
}

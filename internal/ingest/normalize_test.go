package ingest

import (
	"math"
	"strings"
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart() []model.CatalogEntry {
	return []model.CatalogEntry{
		{ID: "1", Name: "Sofa 3 Seat", Width: 260, Depth: 100, Category: model.CategoryLiving, Color: "#8B7355"},
		{ID: "14", Name: "Dining Chair", Width: 46, Depth: 75, Category: model.CategoryDining, Color: "#A0826D"},
	}
}

func TestNormalize_ScalesAndInheritsStyle(t *testing.T) {
	s := model.DefaultSettings()
	data := []predictor.Suggestion{
		{ID: "1", Name: "Sofa 3 Seat", X: 2, Y: 3, Width: predictor.Size(2.6), Height: predictor.Size(1), Zone: "wall"},
	}

	items, skipped := Normalize(data, testCart(), s)

	require.Empty(t, skipped)
	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, model.Rect{X: 100, Y: 150, Width: 130, Height: 50}, it.Rect)
	assert.Equal(t, "#8B7355", it.Color)
	assert.Equal(t, "wall", it.Zone)
	assert.Equal(t, "1", it.CatalogID)
	assert.True(t, strings.HasPrefix(it.ID, "1-"))
	assert.Equal(t, model.CornerNone, it.Chamfer.Corner)
}

func TestNormalize_MatchByNameAndFallbacks(t *testing.T) {
	s := model.DefaultSettings()
	data := []predictor.Suggestion{
		{Name: "dining chair", X: 4, Y: 4},
		{ID: "999", Name: "Mystery", X: 6, Y: 6},
		{X: 8, Y: 8},
	}

	items, skipped := Normalize(data, testCart(), s)

	require.Empty(t, skipped)
	require.Len(t, items, 3)

	// Sizes fall back to the cart footprint: 46x75 cm -> 23x37.5 px.
	assert.Equal(t, 23.0, items[0].Width)
	assert.Equal(t, 37.5, items[0].Height)
	assert.Equal(t, "#A0826D", items[0].Color)
	assert.Equal(t, "14", items[0].CatalogID)

	assert.Equal(t, s.DefaultColor, items[1].Color)
	assert.Equal(t, s.DefaultItemSize, items[1].Width)
	assert.Equal(t, model.DefaultZone, items[1].Zone)

	assert.Equal(t, fallbackName, items[2].Name)
	assert.NotEqual(t, items[1].ID, items[2].ID)
}

func TestNormalize_ClampsIntoCanvas(t *testing.T) {
	s := model.DefaultSettings()
	data := []predictor.Suggestion{
		{ID: "a", X: 20, Y: -3, Width: predictor.Size(2), Height: predictor.Size(2)},
		{ID: "b", X: 0, Y: 0, Width: predictor.Size(40), Height: predictor.Size(1)},
	}

	items, _ := Normalize(data, nil, s)

	require.Len(t, items, 2)
	assert.Equal(t, model.Rect{X: 690, Y: 10, Width: 100, Height: 100}, items[0].Rect)
	assert.Equal(t, 780.0, items[1].Width, "oversized item shrinks to the canvas")
	for _, it := range items {
		assert.True(t, it.InsideBounds(s.CanvasWidth, s.CanvasHeight, s.BoundsMargin))
	}
}

func TestNormalize_SkipsInvalidGeometry(t *testing.T) {
	s := model.DefaultSettings()
	data := []predictor.Suggestion{
		{Name: "neg", X: 1, Y: 1, Width: predictor.Size(-1), Height: predictor.Size(1)},
		{Name: "zero", X: 1, Y: 1, Width: predictor.Size(1), Height: predictor.Size(0)},
		{Name: "nan", X: math.NaN(), Y: 1},
		{Name: "inf", X: 1, Y: 1, Width: predictor.Size(math.Inf(1))},
		{Name: "ok", X: 1, Y: 1},
	}

	items, skipped := Normalize(data, nil, s)

	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].Name)
	require.Len(t, skipped, 4)
	assert.Equal(t, "neg", skipped[0].Name)
	assert.Contains(t, skipped[1].Reason, "height")
}

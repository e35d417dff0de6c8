package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateTwiceRestoresSize(t *testing.T) {
	item := NewPlacedItem("1", "Sofa", "#8B7355", Rect{X: 5, Y: 7, Width: 130, Height: 50})
	item.Rotate()
	assert.Equal(t, 50.0, item.Width)
	assert.Equal(t, 130.0, item.Height)
	assert.Equal(t, 5.0, item.X, "origin unchanged")
	item.Rotate()
	assert.Equal(t, 130.0, item.Width)
	assert.Equal(t, 50.0, item.Height)
}

func TestNewItemIDUnique(t *testing.T) {
	a := NewItemID("13")
	b := NewItemID("13")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "13-"))
	assert.True(t, strings.HasPrefix(NewItemID(""), "item-"))
}

func TestNewPlacedItemDefaults(t *testing.T) {
	item := NewPlacedItem("2", "Chair", "#A0826D", Rect{Width: 10, Height: 10})
	assert.Equal(t, DefaultZone, item.Zone)
	assert.Equal(t, CornerNone, item.Chamfer.Corner)
	assert.Equal(t, WarningNone, item.Warning.Kind)
	assert.False(t, item.Warning.HasWarning())
}

func TestOutlineChamfer(t *testing.T) {
	item := PlacedItem{Rect: Rect{Width: 90, Height: 60}}
	assert.Len(t, item.Outline(), 4)

	item.Chamfer = Chamfer{Corner: CornerTopRight, Size: 50}
	pts := item.Outline()
	require.Len(t, pts, 5)
	// Cut is capped at a third of the shorter side.
	assert.Equal(t, Point{70, 0}, pts[1])
	assert.Equal(t, Point{90, 20}, pts[2])
}

func TestCornerOpposite(t *testing.T) {
	for _, c := range Corners {
		assert.Equal(t, c, c.Opposite().Opposite())
		assert.NotEqual(t, c, c.Opposite())
	}
	assert.Equal(t, CornerNone, CornerNone.Opposite())
}

func TestZoneBadge(t *testing.T) {
	assert.Equal(t, "W", PlacedItem{Zone: "wall"}.ZoneBadge())
	assert.Equal(t, "C", PlacedItem{Zone: ""}.ZoneBadge())
	assert.Equal(t, "R", PlacedItem{Zone: "corner"}.ZoneBadge())
	assert.Equal(t, "E", PlacedItem{Zone: "entry"}.ZoneBadge())
	assert.Equal(t, "Ü", PlacedItem{Zone: "übergang"}.ZoneBadge())
}

func TestCatalogLookups(t *testing.T) {
	cat := DefaultCatalog()
	require.Len(t, cat.Entries, 15)
	require.NotNil(t, cat.FindByID("13"))
	assert.Equal(t, "Dining Table", cat.FindByID("13").Name)
	assert.NotNil(t, cat.FindByName("dining table"))
	assert.Nil(t, cat.FindByID("missing"))
	assert.Len(t, cat.Filter(CategoryDining), 2)
	assert.Len(t, cat.Filter(CategoryAll), 15)
}

func TestDefaultFloorsOrdered(t *testing.T) {
	floors := DefaultFloors()
	assert.Equal(t, []FloorID{1, 2, 3, 4}, floors.IDs())
	assert.Equal(t, "Floor 3", floors[3].Name)
}

func TestFloorSessionCloneIsDeep(t *testing.T) {
	fs := FloorSession{PlacedItems: []PlacedItem{{ID: "a", Rect: Rect{Width: 1, Height: 1}}}}
	c := fs.Clone()
	c.PlacedItems[0].X = 99
	assert.Equal(t, 0.0, fs.PlacedItems[0].X)
}

package interact

import (
	"math"
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRotate_TwiceRestores(t *testing.T) {
	store := newStore(box("a", 10, 20, 120, 40))
	c := &countingCommitter{}

	assert.True(t, Rotate(store, c, "a"))
	got, _ := store.Get("a")
	assert.Equal(t, 40.0, got.Width)
	assert.Equal(t, 120.0, got.Height)
	assert.Equal(t, 10.0, got.X)

	Rotate(store, c, "a")
	got, _ = store.Get("a")
	assert.Equal(t, 120.0, got.Width)
	assert.Equal(t, 2, c.n, "each rotation commits")
	assert.False(t, Rotate(store, c, "missing"))
}

func TestDelete(t *testing.T) {
	store := newStore(box("a", 10, 20, 120, 40))
	c := &countingCommitter{}
	assert.True(t, Delete(store, c, "a"))
	assert.Equal(t, 0, store.Len())
	assert.False(t, Delete(store, c, "a"))
	assert.Equal(t, 1, c.n)
}

func TestResizeClampsToMinimum(t *testing.T) {
	store := newStore(box("a", 10, 20, 120, 40))
	c := &countingCommitter{}
	Resize(store, c, "a", 3, 0, 10)
	got, _ := store.Get("a")
	assert.Equal(t, 10.0, got.Width)
	assert.Equal(t, 10.0, got.Height)
}

func TestResizeRejectsInfinity(t *testing.T) {
	store := newStore(box("a", 10, 20, 120, 40))
	c := &countingCommitter{}

	assert.False(t, Resize(store, c, "a", math.Inf(1), 50, 10))
	assert.False(t, Resize(store, c, "a", 50, math.Inf(-1), 10))

	got, _ := store.Get("a")
	assert.Equal(t, 120.0, got.Width)
	assert.Equal(t, 40.0, got.Height)
	assert.Equal(t, 0, c.n)

	assert.True(t, Resize(store, c, "a", math.NaN(), 50, 10))
	got, _ = store.Get("a")
	assert.Equal(t, 10.0, got.Width)
	assert.Equal(t, 1, c.n)
}

func TestSetChamfer(t *testing.T) {
	store := newStore(box("a", 10, 20, 120, 40))
	c := &countingCommitter{}
	SetChamfer(store, c, "a", model.Chamfer{Corner: model.CornerBottomLeft, Size: -5})
	got, _ := store.Get("a")
	assert.Equal(t, model.CornerBottomLeft, got.Chamfer.Corner)
	assert.Equal(t, 0.0, got.Chamfer.Size)

	SetChamfer(store, c, "a", model.Chamfer{Corner: "diagonal", Size: 5})
	got, _ = store.Get("a")
	assert.Equal(t, model.CornerNone, got.Chamfer.Corner)
}

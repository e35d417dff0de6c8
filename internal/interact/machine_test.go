package interact

import (
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCommitter struct{ n int }

func (c *countingCommitter) Commit() { c.n++ }

func newStore(items ...model.PlacedItem) *session.Store {
	s := session.NewStore(40)
	s.Replace(items)
	return s
}

func box(id string, x, y, w, h float64) model.PlacedItem {
	return model.PlacedItem{ID: id, Name: id, Rect: model.Rect{X: x, Y: y, Width: w, Height: h}}
}

func TestPointerDown_InsideStartsDrag(t *testing.T) {
	m := New(model.DefaultSettings())
	store := newStore(box("a", 100, 100, 100, 100))

	sel := m.PointerDown(store, "", model.Point{X: 150, Y: 140})

	assert.Equal(t, "a", sel)
	assert.Equal(t, StateDragging, m.State())
	assert.Equal(t, "a", m.Target())
}

func TestPointerDown_EmptyClearsSelection(t *testing.T) {
	m := New(model.DefaultSettings())
	store := newStore(box("a", 100, 100, 100, 100))

	sel := m.PointerDown(store, "a", model.Point{X: 600, Y: 600})

	assert.Equal(t, "", sel)
	assert.Equal(t, StateIdle, m.State())
}

func TestPointerDown_TopmostWins(t *testing.T) {
	m := New(model.DefaultSettings())
	store := newStore(box("under", 100, 100, 100, 100), box("over", 150, 150, 100, 100))

	sel := m.PointerDown(store, "", model.Point{X: 175, Y: 175})
	assert.Equal(t, "over", sel)
}

func TestPointerDown_SelectedHandleJustOutside(t *testing.T) {
	m := New(model.DefaultSettings())
	store := newStore(box("a", 100, 100, 100, 100))

	sel := m.PointerDown(store, "a", model.Point{X: 206, Y: 207})

	assert.Equal(t, "a", sel)
	assert.Equal(t, StateResizing, m.State())
	assert.Equal(t, model.CornerBottomRight, m.Handle())
}

func TestDrag_MovesAndSnaps(t *testing.T) {
	m := New(model.DefaultSettings())
	m.SetSnap(true)
	store := newStore(box("a", 100, 100, 100, 100))
	c := &countingCommitter{}

	m.PointerDown(store, "", model.Point{X: 120, Y: 130})
	require.True(t, m.PointerMove(store, model.Point{X: 254, Y: 187}))

	got, _ := store.Get("a")
	// 254-20=234 -> 230, 187-30=157 -> 160
	assert.Equal(t, 230.0, got.X)
	assert.Equal(t, 160.0, got.Y)
	assert.Equal(t, 100.0, got.Width)

	assert.True(t, m.PointerUp(c))
	assert.Equal(t, 1, c.n)
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, m.PointerMove(store, model.Point{X: 0, Y: 0}))
}

func TestDrag_NoSnapKeepsExactPosition(t *testing.T) {
	m := New(model.DefaultSettings())
	store := newStore(box("a", 100, 100, 100, 100))

	m.PointerDown(store, "", model.Point{X: 120, Y: 130})
	m.PointerMove(store, model.Point{X: 254, Y: 187})

	got, _ := store.Get("a")
	assert.Equal(t, 234.0, got.X)
	assert.Equal(t, 157.0, got.Y)
}

func TestResize_AnchorStaysFixedForEveryCorner(t *testing.T) {
	orig := model.Rect{X: 200, Y: 200, Width: 100, Height: 80}
	targets := map[model.Corner]model.Point{
		model.CornerTopLeft:     {X: 150, Y: 170},
		model.CornerTopRight:    {X: 360, Y: 150},
		model.CornerBottomLeft:  {X: 170, Y: 330},
		model.CornerBottomRight: {X: 340, Y: 310},
	}

	for corner, target := range targets {
		m := New(model.DefaultSettings())
		store := newStore(box("a", orig.X, orig.Y, orig.Width, orig.Height))
		anchor := orig.CornerPoint(corner.Opposite())

		m.PointerDown(store, "a", orig.CornerPoint(corner))
		require.Equal(t, StateResizing, m.State(), corner)
		require.Equal(t, corner, m.Handle())
		m.PointerMove(store, target)

		got, _ := store.Get("a")
		assert.Equal(t, anchor, got.CornerPoint(corner.Opposite()), "anchor moved for %s", corner)
		assert.Equal(t, target, got.CornerPoint(corner), "dragged corner for %s", corner)
	}
}

func TestResize_NeverBelowMinimum(t *testing.T) {
	settings := model.DefaultSettings()
	for _, corner := range model.Corners {
		for _, snap := range []bool{false, true} {
			m := New(settings)
			m.SetSnap(snap)
			store := newStore(box("a", 300, 300, 100, 100))
			m.PointerDown(store, "a", store.Items()[0].CornerPoint(corner))

			// Drag far past the opposite corner.
			for _, p := range []model.Point{{X: 350, Y: 350}, {X: 0, Y: 0}, {X: 800, Y: 800}, {X: 303, Y: 397}} {
				m.PointerMove(store, p)
				got, _ := store.Get("a")
				assert.GreaterOrEqual(t, got.Width, settings.MinItemSize)
				assert.GreaterOrEqual(t, got.Height, settings.MinItemSize)
			}
		}
	}
}

func TestPointerUp_IdleDoesNotCommit(t *testing.T) {
	m := New(model.DefaultSettings())
	c := &countingCommitter{}
	assert.False(t, m.PointerUp(c))
	assert.Equal(t, 0, c.n)
}

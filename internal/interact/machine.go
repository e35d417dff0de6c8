// Package interact turns pointer events into drag and resize edits on the
// active floor's items.
package interact

import (
	"math"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// State is the pointer interaction state.
type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
	StateResizing State = "resizing"
)

// ItemStore is the subset of the item store the machine edits.
type ItemStore interface {
	Get(id string) (model.PlacedItem, bool)
	TopmostAt(p model.Point) (model.PlacedItem, bool)
	Update(id string, fn func(*model.PlacedItem)) bool
}

// Committer persists the live store into the active floor session.
type Committer interface {
	Commit()
}

// Machine tracks one drag or resize gesture at a time.
type Machine struct {
	settings model.LayoutSettings
	snap     bool

	state    State
	targetID string
	offset   model.Point  // pointer minus item origin, while dragging
	handle   model.Corner // grabbed corner, while resizing
	anchor   model.Point  // fixed opposite corner, while resizing
}

func New(settings model.LayoutSettings) *Machine {
	return &Machine{settings: settings, state: StateIdle}
}

func (m *Machine) State() State { return m.state }

// Target returns the item being dragged or resized, or "" when idle.
func (m *Machine) Target() string { return m.targetID }

// Handle returns the grabbed corner while resizing.
func (m *Machine) Handle() model.Corner { return m.handle }

func (m *Machine) SetSnap(on bool) { m.snap = on }

func (m *Machine) Snap() bool { return m.snap }

// HandleAt returns the corner of r whose handle square contains p.
func (m *Machine) HandleAt(r model.Rect, p model.Point) (model.Corner, bool) {
	hr := m.settings.HandleRadius
	for _, c := range model.Corners {
		cp := r.CornerPoint(c)
		if math.Abs(p.X-cp.X) <= hr && math.Abs(p.Y-cp.Y) <= hr {
			return c, true
		}
	}
	return model.CornerNone, false
}

// PointerDown starts a gesture and returns the new selection. The selected
// item's handles are checked first so a corner can be grabbed just outside
// the rectangle. Otherwise the topmost item under p is selected and either
// resized (on a handle) or dragged. Pressing empty canvas clears the
// selection and leaves the machine idle.
func (m *Machine) PointerDown(store ItemStore, selectedID string, p model.Point) string {
	m.reset()

	if selectedID != "" {
		if it, ok := store.Get(selectedID); ok {
			if c, hit := m.HandleAt(it.Rect, p); hit {
				m.beginResize(it, c)
				return it.ID
			}
		}
	}

	it, ok := store.TopmostAt(p)
	if !ok {
		return ""
	}
	if c, hit := m.HandleAt(it.Rect, p); hit {
		m.beginResize(it, c)
		return it.ID
	}
	m.state = StateDragging
	m.targetID = it.ID
	m.offset = model.Point{X: p.X - it.X, Y: p.Y - it.Y}
	return it.ID
}

// PointerMove applies the active gesture. It returns false when idle or
// when the target no longer exists.
func (m *Machine) PointerMove(store ItemStore, p model.Point) bool {
	switch m.state {
	case StateDragging:
		x := m.snapValue(p.X - m.offset.X)
		y := m.snapValue(p.Y - m.offset.Y)
		return store.Update(m.targetID, func(it *model.PlacedItem) {
			it.X, it.Y = x, y
		})
	case StateResizing:
		r := m.resized(p)
		return store.Update(m.targetID, func(it *model.PlacedItem) {
			it.Rect = r
		})
	}
	return false
}

// PointerUp ends the gesture. An active drag or resize is committed to the
// floor session first. Returns whether anything was committed.
func (m *Machine) PointerUp(c Committer) bool {
	active := m.state != StateIdle
	if active && c != nil {
		c.Commit()
	}
	m.reset()
	return active
}

// Cancel drops the gesture without committing.
func (m *Machine) Cancel() { m.reset() }

func (m *Machine) beginResize(it model.PlacedItem, c model.Corner) {
	m.state = StateResizing
	m.targetID = it.ID
	m.handle = c
	m.anchor = it.CornerPoint(c.Opposite())
}

// resized computes the rectangle spanned by the anchor and p. Sides are
// snapped, then clamped to the minimum size, and the origin is placed so
// the anchor corner does not move.
func (m *Machine) resized(p model.Point) model.Rect {
	a := m.anchor
	var w, h float64
	switch m.handle {
	case model.CornerBottomRight:
		w, h = p.X-a.X, p.Y-a.Y
	case model.CornerTopLeft:
		w, h = a.X-p.X, a.Y-p.Y
	case model.CornerTopRight:
		w, h = p.X-a.X, a.Y-p.Y
	case model.CornerBottomLeft:
		w, h = a.X-p.X, p.Y-a.Y
	}
	w = m.clampSize(m.snapValue(w))
	h = m.clampSize(m.snapValue(h))

	r := model.Rect{X: a.X, Y: a.Y, Width: w, Height: h}
	switch m.handle {
	case model.CornerTopLeft:
		r.X, r.Y = a.X-w, a.Y-h
	case model.CornerTopRight:
		r.Y = a.Y - h
	case model.CornerBottomLeft:
		r.X = a.X - w
	}
	return r
}

func (m *Machine) snapValue(v float64) float64 {
	step := m.settings.GridStep
	if !m.snap || step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

func (m *Machine) clampSize(v float64) float64 {
	if math.IsNaN(v) || v < m.settings.MinItemSize {
		return m.settings.MinItemSize
	}
	return v
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.targetID = ""
	m.handle = model.CornerNone
	m.offset = model.Point{}
	m.anchor = model.Point{}
}

package session

import (
	"fmt"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// Manager keeps one FloorSession per floor and the live store of the active one.
type Manager struct {
	floors   model.FloorPlan
	sessions map[model.FloorID]*model.FloorSession
	active   model.FloorID
	store    *Store
}

// NewManager creates a manager with initial as the active floor.
func NewManager(floors model.FloorPlan, initial model.FloorID, spacing float64) (*Manager, error) {
	if _, ok := floors[initial]; !ok {
		return nil, fmt.Errorf("unknown floor %d", initial)
	}
	return &Manager{
		floors:   floors,
		sessions: make(map[model.FloorID]*model.FloorSession),
		active:   initial,
		store:    NewStore(spacing),
	}, nil
}

// Active returns the active floor ID.
func (m *Manager) Active() model.FloorID { return m.active }

// Store returns the active floor's live item store.
func (m *Manager) Store() *Store { return m.store }

// Floors returns the floor plan.
func (m *Manager) Floors() model.FloorPlan { return m.floors }

// Geometry returns the active floor's backdrop.
func (m *Manager) Geometry() model.FloorGeometry { return m.floors[m.active] }

// Commit writes the live store into the active floor's session.
func (m *Manager) Commit() {
	fs := m.session(m.active)
	fs.PlacedItems = m.store.Items()
}

// SwitchFloor commits the outgoing floor, then loads the incoming floor's
// items into the store, or starts it empty if it was never visited.
// Switching to the active floor is a no-op.
func (m *Manager) SwitchFloor(id model.FloorID) error {
	if _, ok := m.floors[id]; !ok {
		return fmt.Errorf("unknown floor %d", id)
	}
	if id == m.active {
		return nil
	}
	m.Commit()
	m.active = id
	if fs, ok := m.sessions[id]; ok {
		m.store.Replace(fs.PlacedItems)
	} else {
		m.store.Replace(nil)
	}
	return nil
}

// SetCart records the cart used for the active floor's last layout.
func (m *Manager) SetCart(cart []model.CatalogEntry) {
	m.session(m.active).Cart = append([]model.CatalogEntry(nil), cart...)
}

// Reset clears the active floor and persists the empty list.
func (m *Manager) Reset() {
	m.store.Replace(nil)
	m.Commit()
}

// Session returns a copy of the stored session for id.
// The active floor reflects the last Commit, not unsaved store edits.
func (m *Manager) Session(id model.FloorID) (model.FloorSession, bool) {
	fs, ok := m.sessions[id]
	if !ok {
		return model.FloorSession{}, false
	}
	return fs.Clone(), true
}

// Sessions commits the active floor and returns a deep copy of every session.
func (m *Manager) Sessions() map[model.FloorID]model.FloorSession {
	m.Commit()
	out := make(map[model.FloorID]model.FloorSession, len(m.sessions))
	for id, fs := range m.sessions {
		out[id] = fs.Clone()
	}
	return out
}

// Restore replaces every session and makes active the live floor.
// Sessions for floors missing from the plan are dropped.
func (m *Manager) Restore(sessions map[model.FloorID]model.FloorSession, active model.FloorID) error {
	if _, ok := m.floors[active]; !ok {
		return fmt.Errorf("unknown floor %d", active)
	}
	m.sessions = make(map[model.FloorID]*model.FloorSession, len(sessions))
	for id, fs := range sessions {
		if _, ok := m.floors[id]; !ok {
			continue
		}
		c := fs.Clone()
		m.sessions[id] = &c
	}
	m.active = active
	if fs, ok := m.sessions[active]; ok {
		m.store.Replace(fs.PlacedItems)
	} else {
		m.store.Replace(nil)
	}
	return nil
}

func (m *Manager) session(id model.FloorID) *model.FloorSession {
	fs, ok := m.sessions[id]
	if !ok {
		fs = &model.FloorSession{}
		m.sessions[id] = fs
	}
	return fs
}

// SetGeometry replaces the backdrop of floor id. Placed items are kept.
func (m *Manager) SetGeometry(id model.FloorID, geo model.FloorGeometry) error {
	if _, ok := m.floors[id]; !ok {
		return fmt.Errorf("unknown floor %d", id)
	}
	floors := make(model.FloorPlan, len(m.floors))
	for k, v := range m.floors {
		floors[k] = v
	}
	floors[id] = geo
	m.floors = floors
	return nil
}

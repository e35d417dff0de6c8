// Package editor is the explicit state object behind the layout editor:
// active floor, item store, cart, selection and the in-flight layout
// request. It is not safe for concurrent use; callers drive it from one
// goroutine and hop back onto it when a predictor call returns.
package editor

import (
	"errors"
	"fmt"

	"github.com/piwi3910/FurniLayout/internal/interact"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/session"
)

var (
	// ErrIngestInFlight is returned when a layout is requested while another is pending.
	ErrIngestInFlight = errors.New("an automatic layout is already in progress")
	// ErrStaleResult is returned when a result arrives for a request that was
	// superseded or whose floor is no longer active. Nothing is applied.
	ErrStaleResult = errors.New("layout result discarded: request is no longer current")
)

// Frame is what the rendering layer needs to draw one update.
type Frame struct {
	Floor      model.FloorID       `json:"floor"`
	Geometry   model.FloorGeometry `json:"floor_geometry"`
	Items      []model.PlacedItem  `json:"placed_items"`
	SelectedID string              `json:"selected_item_id,omitempty"`
	Busy       bool                `json:"busy"`
}

// Editor owns all mutable editing state.
type Editor struct {
	settings model.LayoutSettings
	catalog  model.Catalog

	manager *session.Manager
	cart    *session.Cart
	machine *interact.Machine
	history *session.History

	selected    string
	roomType    string
	houseTypeID int

	inFlight *Pending
	seq      uint64

	gestureSnap *session.Snapshot
}

// New creates an editor showing the first floor of the plan.
func New(settings model.LayoutSettings, floors model.FloorPlan, catalog model.Catalog) (*Editor, error) {
	ids := floors.IDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("floor plan is empty")
	}
	mgr, err := session.NewManager(floors, ids[0], settings.MinSpacing)
	if err != nil {
		return nil, err
	}
	return &Editor{
		settings: settings,
		catalog:  catalog,
		manager:  mgr,
		cart:     session.NewCart(),
		machine:  interact.New(settings),
		history:  session.NewHistory(),
		roomType: model.RoomLiving,
	}, nil
}

func (e *Editor) Settings() model.LayoutSettings { return e.settings }

func (e *Editor) Catalog() model.Catalog { return e.catalog }

func (e *Editor) ActiveFloor() model.FloorID { return e.manager.Active() }

func (e *Editor) Floors() model.FloorPlan { return e.manager.Floors() }

// Items returns the active floor's items in draw order.
func (e *Editor) Items() []model.PlacedItem { return e.manager.Store().Items() }

// Selected returns the selected item ID, or "".
func (e *Editor) Selected() string { return e.selected }

// SelectedItem returns the selected item if there is one.
func (e *Editor) SelectedItem() (model.PlacedItem, bool) {
	if e.selected == "" {
		return model.PlacedItem{}, false
	}
	return e.manager.Store().Get(e.selected)
}

// Select makes id the single selected item. An unknown id clears the selection.
func (e *Editor) Select(id string) {
	if _, ok := e.manager.Store().Get(id); ok {
		e.selected = id
		return
	}
	e.selected = ""
}

func (e *Editor) RoomType() string { return e.roomType }

func (e *Editor) SetRoomType(rt string) { e.roomType = rt }

func (e *Editor) HouseTypeID() int { return e.houseTypeID }

func (e *Editor) SetHouseType(id int) { e.houseTypeID = id }

func (e *Editor) Snap() bool { return e.machine.Snap() }

func (e *Editor) SetSnap(on bool) { e.machine.SetSnap(on) }

// Busy reports whether an automatic layout request is pending.
func (e *Editor) Busy() bool { return e.inFlight != nil }

// Frame returns the current render state.
func (e *Editor) Frame() Frame {
	return Frame{
		Floor:      e.manager.Active(),
		Geometry:   e.manager.Geometry(),
		Items:      e.manager.Store().Items(),
		SelectedID: e.selected,
		Busy:       e.Busy(),
	}
}

// SwitchFloor persists the current floor, loads the requested one, clears
// the selection and discards any pending layout request. Switching to the
// active floor changes nothing.
func (e *Editor) SwitchFloor(id model.FloorID) error {
	if id == e.manager.Active() {
		return nil
	}
	if err := e.manager.SwitchFloor(id); err != nil {
		return err
	}
	e.selected = ""
	e.machine.Cancel()
	e.gestureSnap = nil
	e.history.Clear()
	e.inFlight = nil
	return nil
}

// ApplySettings replaces the editor thresholds. Any gesture in progress is
// cancelled and the active floor's warnings are recomputed.
func (e *Editor) ApplySettings(s model.LayoutSettings) {
	snap := e.machine.Snap()
	e.settings = s
	e.machine = interact.New(s)
	e.machine.SetSnap(snap)
	e.gestureSnap = nil
	e.manager.Store().SetSpacing(s.MinSpacing)
}

// SetCatalog replaces the furniture catalog. The cart is left alone.
func (e *Editor) SetCatalog(c model.Catalog) { e.catalog = c }

// SetFloorGeometry replaces the backdrop of a floor, e.g. after a DXF import.
func (e *Editor) SetFloorGeometry(id model.FloorID, geo model.FloorGeometry) error {
	return e.manager.SetGeometry(id, geo)
}

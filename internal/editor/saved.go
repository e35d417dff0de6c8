package editor

import "github.com/piwi3910/FurniLayout/internal/model"

// SavedLayout exports every floor session with the cart and house metadata.
func (e *Editor) SavedLayout() model.SavedLayout {
	return model.SavedLayout{
		Version:     model.LayoutVersion,
		HouseTypeID: e.houseTypeID,
		RoomType:    e.roomType,
		ActiveFloor: e.manager.Active(),
		Cart:        e.cart.Items(),
		Floors:      e.manager.Sessions(),
	}
}

// LoadSavedLayout replaces all editing state with l.
func (e *Editor) LoadSavedLayout(l model.SavedLayout) error {
	active := l.ActiveFloor
	if _, ok := e.manager.Floors()[active]; !ok {
		active = e.manager.Floors().IDs()[0]
	}
	if err := e.manager.Restore(l.Floors, active); err != nil {
		return err
	}
	e.cart.Replace(l.Cart)
	if l.RoomType != "" {
		e.roomType = l.RoomType
	}
	e.houseTypeID = l.HouseTypeID
	e.selected = ""
	e.machine.Cancel()
	e.gestureSnap = nil
	e.history.Clear()
	e.inFlight = nil
	return nil
}

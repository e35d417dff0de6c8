package model

// FloorSession is the editable state of one floor.
// Cart records the selection used for the floor's most recent automatic layout.
type FloorSession struct {
	PlacedItems []PlacedItem   `json:"placed_items"`
	Cart        []CatalogEntry `json:"cart"`
}

// Clone returns a deep copy of the session.
func (fs FloorSession) Clone() FloorSession {
	out := FloorSession{PlacedItems: CloneItems(fs.PlacedItems)}
	if fs.Cart != nil {
		out.Cart = append([]CatalogEntry(nil), fs.Cart...)
	}
	return out
}

// LayoutVersion is the current saved-layout format version.
const LayoutVersion = "1.0"

// SavedLayout is everything a save collaborator needs to restore an editing session.
type SavedLayout struct {
	Version     string                   `json:"version"`
	HouseTypeID int                      `json:"house_type_id,omitempty"`
	RoomType    string                   `json:"room_type"`
	ActiveFloor FloorID                  `json:"active_floor"`
	Cart        []CatalogEntry           `json:"cart"`
	Floors      map[FloorID]FloorSession `json:"floors"`
}

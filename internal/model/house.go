package model

// HouseType is a house template the user picks before editing floors.
// It is carried as metadata in saved layouts.
type HouseType struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Featured bool     `json:"featured"`
	Width    float64  `json:"width"`  // metres
	Height   float64  `json:"height"` // metres
	Floors   int      `json:"floors"`
	Area     float64  `json:"area"` // m²
	Rooms    []string `json:"rooms"`
	Style    string   `json:"style"`
	Features []string `json:"features,omitempty"`
}

// DefaultHouseTypes returns the built-in house templates.
func DefaultHouseTypes() []HouseType {
	return []HouseType{
		{ID: 1, Name: "Beach House", Featured: true, Width: 12, Height: 15, Floors: 2, Area: 180,
			Rooms: []string{"Living Room", "Dining Room", "Kitchen", "3 Bedrooms", "2 Bathrooms", "Terrace"},
			Style: "Tropical Modern",
			Features: []string{"Corrosion-resistant materials", "Cross ventilation", "Sea-facing terrace",
				"Semi-outdoor kitchen", "Outdoor shower"}},
		{ID: 2, Name: "Modern Minimalist", Width: 10, Height: 12, Floors: 2, Area: 120,
			Rooms: []string{"Living Room", "Dining Room", "Kitchen", "3 Bedrooms", "2 Bathrooms", "Carport"},
			Style: "Contemporary Minimalist"},
		{ID: 3, Name: "Bali Villa", Width: 15, Height: 18, Floors: 1, Area: 200,
			Rooms: []string{"Pavilion", "Living Area", "Kitchen", "2 Bedrooms", "2 Bathrooms", "Pool Area"},
			Style: "Balinese Traditional"},
		{ID: 4, Name: "Scandinavian", Width: 9, Height: 11, Floors: 2, Area: 99,
			Rooms: []string{"Living Room", "Dining Area", "Kitchen", "2 Bedrooms", "1 Bathroom", "Study Room"},
			Style: "Scandinavian"},
		{ID: 5, Name: "Industrial Loft", Width: 11, Height: 13, Floors: 2, Area: 143,
			Rooms: []string{"Open Living Space", "Kitchen", "2 Bedrooms", "1 Bathroom", "Mezzanine"},
			Style: "Industrial Urban"},
		{ID: 6, Name: "Contemporary Tropical", Width: 13, Height: 16, Floors: 2, Area: 208,
			Rooms: []string{"Living Room", "Dining Room", "Kitchen", "4 Bedrooms", "3 Bathrooms", "Garden"},
			Style: "Tropical Contemporary"},
	}
}

// FindHouseType returns the house type with the given ID, or nil.
func FindHouseType(types []HouseType, id int) *HouseType {
	for i := range types {
		if types[i].ID == id {
			return &types[i]
		}
	}
	return nil
}

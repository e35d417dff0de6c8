package model

import "sort"

// FloorID identifies one editable floor.
type FloorID int

// Room is a labelled area of a floor backdrop.
type Room struct {
	Rect
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

// Stair directions.
const (
	StairUp     = "up"
	StairDown   = "down"
	StairCenter = "center"
)

// Stairway is a staircase footprint on a floor backdrop.
type Stairway struct {
	Rect
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

// Obstacle is a structural element such as a column or wall segment.
type Obstacle struct {
	Rect
	Name string `json:"name"`
}

// Dimensions are the real-world extents of a floor in millimetres.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FloorGeometry is the read-only backdrop of one floor, in canvas pixels.
type FloorGeometry struct {
	Name           string     `json:"name"`
	RealDimensions Dimensions `json:"real_dimensions"`
	Rooms          []Room     `json:"rooms"`
	Stairways      []Stairway `json:"stairways"`
	Obstacles      []Obstacle `json:"obstacles"`
}

// FloorPlan maps floor IDs to their backdrops.
type FloorPlan map[FloorID]FloorGeometry

// IDs returns the floor IDs in ascending order.
func (fp FloorPlan) IDs() []FloorID {
	ids := make([]FloorID, 0, len(fp))
	for id := range fp {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func rect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

// DefaultFloors returns the built-in four-floor plan.
func DefaultFloors() FloorPlan {
	return FloorPlan{
		1: {
			Name:           "Floor 1",
			RealDimensions: Dimensions{Width: 6626, Height: 18105},
			Rooms: []Room{
				{Rect: rect(60, 50, 280, 700), Name: "Main Hall", Type: "living", Color: "rgba(230,240,255,0.35)"},
				{Rect: rect(360, 50, 380, 320), Name: "Side Room", Type: "living", Color: "rgba(255,245,230,0.35)"},
			},
			Stairways: []Stairway{
				{Rect: rect(620, 80, 80, 140), Name: "Stairs Up", Direction: StairUp},
			},
			Obstacles: []Obstacle{
				{Rect: rect(340, 60, 15, 260), Name: "Wall Column"},
				{Rect: rect(60, 380, 420, 12), Name: "Internal Wall"},
			},
		},
		2: {
			Name:           "Floor 2",
			RealDimensions: Dimensions{Width: 6927, Height: 13598},
			Rooms: []Room{
				{Rect: rect(60, 60, 340, 620), Name: "Main Area", Type: "living", Color: "rgba(240,255,240,0.35)"},
				{Rect: rect(420, 60, 320, 300), Name: "Side Extension", Type: "office", Color: "rgba(255,250,240,0.35)"},
			},
			Stairways: []Stairway{
				{Rect: rect(450, 380, 100, 80), Name: "Stairs Down", Direction: StairDown},
				{Rect: rect(580, 380, 100, 80), Name: "Stairs Up", Direction: StairUp},
				{Rect: rect(320, 680, 140, 80), Name: "External Stair", Direction: StairDown},
			},
			Obstacles: []Obstacle{
				{Rect: rect(160, 180, 18, 18), Name: "Column 1"},
				{Rect: rect(160, 380, 18, 18), Name: "Column 2"},
				{Rect: rect(160, 540, 18, 18), Name: "Column 3"},
			},
		},
		3: {
			Name:           "Floor 3",
			RealDimensions: Dimensions{Width: 9754, Height: 16943},
			Rooms: []Room{
				{Rect: rect(80, 80, 640, 640), Name: "Open Space", Type: "living", Color: "rgba(245,245,255,0.35)"},
			},
			Stairways: []Stairway{
				{Rect: rect(340, 680, 120, 80), Name: "Stairs Center", Direction: StairCenter},
			},
			Obstacles: []Obstacle{
				{Rect: rect(200, 260, 22, 22), Name: "Column 1"},
				{Rect: rect(580, 260, 22, 22), Name: "Column 2"},
				{Rect: rect(200, 500, 22, 22), Name: "Column 3"},
				{Rect: rect(580, 500, 22, 22), Name: "Column 4"},
				{Rect: rect(400, 580, 22, 22), Name: "Column 5"},
			},
		},
		4: {
			Name:           "Floor 4",
			RealDimensions: Dimensions{Width: 8992, Height: 18285},
			Rooms: []Room{
				{Rect: rect(60, 50, 680, 700), Name: "Top Floor Suite", Type: "bedroom", Color: "rgba(255,245,235,0.35)"},
			},
			Stairways: []Stairway{
				{Rect: rect(320, 700, 140, 80), Name: "Stairs Down", Direction: StairDown},
			},
			Obstacles: []Obstacle{
				{Rect: rect(140, 350, 18, 18), Name: "Column 1"},
				{Rect: rect(640, 350, 18, 18), Name: "Column 2"},
				{Rect: rect(50, 50, 60, 80), Name: "Entrance Notch L"},
				{Rect: rect(690, 50, 60, 80), Name: "Entrance Notch R"},
			},
		},
	}
}

// Package predictor is the client side of the placement-suggestion service.
package predictor

import (
	"context"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is sent to the service for one automatic layout.
type Request struct {
	Items         []model.CatalogEntry `json:"items"`
	RoomType      string               `json:"roomType"`
	FloorGeometry model.FloorGeometry  `json:"floorGeometry"`
}

// Suggestion is one suggested position in predictor units (metres).
// A nil Width or Height means the service left the size to the client.
type Suggestion struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Zone   string   `json:"zone,omitempty"`
}

// Response is the service reply.
type Response struct {
	Status      string       `json:"status"`
	Data        []Suggestion `json:"data"`
	TotalPlaced int          `json:"totalPlaced"`
	RoomType    string       `json:"roomType"`
	Message     string       `json:"message,omitempty"`
	ModelUsed   string       `json:"modelUsed,omitempty"`
}

// Predictor suggests positions for a cart. Implementations must honour ctx
// cancellation and return *model.PredictorUnavailableError on failure.
type Predictor interface {
	Suggest(ctx context.Context, req Request) (Response, error)
}

// Size returns a pointer to v, for building suggestions.
func Size(v float64) *float64 { return &v }

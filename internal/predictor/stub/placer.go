// Package stub is a deterministic stand-in for the placement-suggestion
// service, so the editor can be used without the trained model.
package stub

import (
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
)

// Zone labels assigned by the placer.
const (
	ZoneWall   = "wall"
	ZoneCorner = "corner"
	ZoneCenter = "center"
)

// wallMinWidthCM is the width from which living pieces go against a wall.
const wallMinWidthCM = 200

// Placer puts items onto the largest room of a floor, keeping clear of
// stairways, obstacles and each other.
type Placer struct {
	Settings model.LayoutSettings
}

func NewPlacer(settings model.LayoutSettings) *Placer {
	return &Placer{Settings: settings}
}

// ZoneFor classifies a catalog entry.
func ZoneFor(e model.CatalogEntry) string {
	switch {
	case e.Category == model.CategoryDecoration:
		return ZoneCorner
	case e.Category == model.CategoryLiving && e.Width >= wallMinWidthCM:
		return ZoneWall
	default:
		return ZoneCenter
	}
}

// Place returns one suggestion per item that fits, in request order.
// Positions and sizes are in predictor units.
func (p *Placer) Place(req predictor.Request) []predictor.Suggestion {
	s := p.Settings
	area := p.area(req.FloorGeometry)
	var blocked []model.Rect
	for _, st := range req.FloorGeometry.Stairways {
		blocked = append(blocked, st.Rect)
	}
	for _, ob := range req.FloorGeometry.Obstacles {
		blocked = append(blocked, ob.Rect)
	}

	var out []predictor.Suggestion
	for _, e := range req.Items {
		w, h := e.FootprintPx(s.PixelsPerCM)
		if w <= 0 || h <= 0 {
			w, h = s.DefaultItemSize, s.DefaultItemSize
		}
		zone := ZoneFor(e)
		r, ok := p.find(zone, w, h, area, blocked)
		if !ok && zone != ZoneCenter {
			zone = ZoneCenter
			r, ok = p.find(zone, w, h, area, blocked)
		}
		if !ok {
			continue
		}
		blocked = append(blocked, inflate(r, s.MinSpacing))
		out = append(out, predictor.Suggestion{
			ID:     e.ID,
			Name:   e.Name,
			X:      r.X / s.ScaleFactor,
			Y:      r.Y / s.ScaleFactor,
			Width:  predictor.Size(w / s.ScaleFactor),
			Height: predictor.Size(h / s.ScaleFactor),
			Zone:   zone,
		})
	}
	return out
}

// area returns the largest room, or the canvas inside the bounds margin.
func (p *Placer) area(g model.FloorGeometry) model.Rect {
	s := p.Settings
	best := model.Rect{
		X: s.BoundsMargin, Y: s.BoundsMargin,
		Width: s.CanvasWidth - 2*s.BoundsMargin, Height: s.CanvasHeight - 2*s.BoundsMargin,
	}
	bestArea := 0.0
	for _, room := range g.Rooms {
		if room.Valid() && room.Area() > bestArea {
			best, bestArea = room.Rect, room.Area()
		}
	}
	return best
}

func (p *Placer) find(zone string, w, h float64, area model.Rect, blocked []model.Rect) (model.Rect, bool) {
	step := p.Settings.GridStep
	if step <= 0 {
		step = 10
	}
	pad := p.Settings.BoundsMargin
	free := func(r model.Rect) bool {
		if !within(r, area, pad) {
			return false
		}
		for _, b := range blocked {
			if r.Overlaps(b) {
				return false
			}
		}
		return true
	}

	switch zone {
	case ZoneCorner:
		left, top := area.X+pad, area.Y+pad
		right, bottom := area.Right()-pad-w, area.Bottom()-pad-h
		for _, pt := range []model.Point{{X: left, Y: top}, {X: right, Y: top}, {X: left, Y: bottom}, {X: right, Y: bottom}} {
			r := model.Rect{X: pt.X, Y: pt.Y, Width: w, Height: h}
			if free(r) {
				return r, true
			}
		}
	case ZoneWall:
		for _, y := range []float64{area.Y + pad, area.Bottom() - pad - h} {
			for x := area.X + pad; x+w <= area.Right()-pad; x += step {
				r := model.Rect{X: x, Y: y, Width: w, Height: h}
				if free(r) {
					return r, true
				}
			}
		}
	default:
		for y := area.Y + pad; y+h <= area.Bottom()-pad; y += step {
			for x := area.X + pad; x+w <= area.Right()-pad; x += step {
				r := model.Rect{X: x, Y: y, Width: w, Height: h}
				if free(r) {
					return r, true
				}
			}
		}
	}
	return model.Rect{}, false
}

func within(r, area model.Rect, pad float64) bool {
	return r.Left() >= area.Left()+pad-1e-9 && r.Top() >= area.Top()+pad-1e-9 &&
		r.Right() <= area.Right()-pad+1e-9 && r.Bottom() <= area.Bottom()-pad+1e-9
}

func inflate(r model.Rect, d float64) model.Rect {
	return model.Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

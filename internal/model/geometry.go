package model

import "math"

// Point is a canvas position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in canvas pixels. X, Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) Area() float64   { return r.Width * r.Height }

// Valid reports whether the rectangle has finite coordinates and positive dimensions.
func (r Rect) Valid() bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width > 0 && r.Height > 0
}

// Overlaps reports whether two rectangles share positive area.
// Touching edges do not count as an overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() <= o.Left() || o.Right() <= r.Left() ||
		r.Bottom() <= o.Top() || o.Bottom() <= r.Top())
}

// EdgeGap returns the smallest of the four absolute edge-to-edge distances
// (right-to-left, left-to-right, bottom-to-top, top-to-bottom).
// Edges are compared regardless of whether the rectangles line up on the
// other axis, so two items far apart vertically but sharing an x edge still
// report a small gap.
func (r Rect) EdgeGap(o Rect) float64 {
	gaps := []float64{
		math.Abs(r.Right() - o.Left()),
		math.Abs(o.Right() - r.Left()),
		math.Abs(r.Bottom() - o.Top()),
		math.Abs(o.Bottom() - r.Top()),
	}
	min := gaps[0]
	for _, g := range gaps[1:] {
		if g < min {
			min = g
		}
	}
	return min
}

// TooClose reports whether the rectangles do not overlap but their edge gap
// is below spacing.
func (r Rect) TooClose(o Rect, spacing float64) bool {
	if r.Overlaps(o) {
		return false
	}
	return r.EdgeGap(o) < spacing
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// InsideBounds reports whether the rectangle fits within a width x height
// surface keeping margin pixels clear on every side.
func (r Rect) InsideBounds(width, height, margin float64) bool {
	return r.Left() >= margin && r.Top() >= margin &&
		r.Right() <= width-margin && r.Bottom() <= height-margin
}

// Translate returns the rectangle shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CornerPoint returns the position of the given corner.
func (r Rect) CornerPoint(c Corner) Point {
	switch c {
	case CornerTopRight:
		return Point{X: r.Right(), Y: r.Top()}
	case CornerBottomLeft:
		return Point{X: r.Left(), Y: r.Bottom()}
	case CornerBottomRight:
		return Point{X: r.Right(), Y: r.Bottom()}
	default:
		return Point{X: r.Left(), Y: r.Top()}
	}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

package importer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// FloorImportResult holds the backdrop read from a DXF drawing.
type FloorImportResult struct {
	Geometry model.FloorGeometry
	Errors   []string
	Warnings []string
}

// Shape is one closed outline from a drawing together with its layer name.
type Shape struct {
	Layer  string
	Points []model.Point
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	layer string
	start model.Point
	end   model.Point
}

// Layer name prefixes recognised when classifying shapes. Matching is
// case-insensitive; the part after the first '-' or '_' is the room type
// (ROOM-BEDROOM) or stair direction (STAIR-UP).
var (
	roomLayers     = []string{"ROOM", "RUANG"}
	stairLayers    = []string{"STAIR", "TANGGA"}
	obstacleLayers = []string{"OBSTACLE", "COLUMN", "KOLOM", "WALL"}
)

// ImportFloorDXF reads rooms, stairways and obstacles from a DXF drawing in
// millimetres. Each closed shape (LWPOLYLINE, CIRCLE, or chain of connected
// LINEs/ARCs) is reduced to its bounding box and classified by layer.
func ImportFloorDXF(path, name string, s model.LayoutSettings) FloorImportResult {
	result := FloorImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes []Shape
	var segments []segment

	for _, ent := range entities {
		layer := layerName(ent)
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := lwPolylinePoints(e)
			if len(pts) >= 3 {
				shapes = append(shapes, Shape{Layer: layer, Points: pts})
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			shapes = append(shapes, Shape{Layer: layer, Points: circlePoints(e, 32)})

		case *entity.Arc:
			pts := arcToPoints(e, 16)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(layer, pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				layer: layer,
				start: model.Point{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point{X: e.End[0], Y: e.End[1]},
			})
		}
	}

	shapes = append(shapes, chainSegments(segments, 0.5)...)
	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	geo, warnings := BuildFloorGeometry(name, shapes, s)
	result.Geometry = geo
	result.Warnings = append(result.Warnings, warnings...)
	return result
}

func layerName(ent entity.Entity) string {
	l := ent.Layer()
	if l == nil {
		return ""
	}
	return l.Name()
}

// BuildFloorGeometry scales shapes in millimetres onto the canvas and sorts
// them into rooms, stairways and obstacles. DXF y grows upwards, so the
// drawing is flipped. The drawing extents become the floor's real dimensions.
func BuildFloorGeometry(name string, shapes []Shape, s model.LayoutSettings) (model.FloorGeometry, []string) {
	geo := model.FloorGeometry{Name: name}
	var warnings []string

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sh := range shapes {
		for _, p := range sh.Points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	extW, extH := maxX-minX, maxY-minY
	if !(extW > 0) || !(extH > 0) {
		return geo, []string{"Drawing has no area"}
	}
	geo.RealDimensions = model.Dimensions{Width: extW, Height: extH}

	m := s.BoundsMargin
	scale := math.Min((s.CanvasWidth-2*m)/extW, (s.CanvasHeight-2*m)/extH)

	toCanvas := func(pts []model.Point) model.Rect {
		bx0, by0 := math.Inf(1), math.Inf(1)
		bx1, by1 := math.Inf(-1), math.Inf(-1)
		for _, p := range pts {
			bx0, bx1 = math.Min(bx0, p.X), math.Max(bx1, p.X)
			by0, by1 = math.Min(by0, p.Y), math.Max(by1, p.Y)
		}
		return model.Rect{
			X:      m + (bx0-minX)*scale,
			Y:      m + (maxY-by1)*scale,
			Width:  (bx1 - bx0) * scale,
			Height: (by1 - by0) * scale,
		}
	}

	for _, sh := range shapes {
		r := toCanvas(sh.Points)
		if r.Width < 1 || r.Height < 1 {
			warnings = append(warnings, fmt.Sprintf("Skipped degenerate shape on layer %q", sh.Layer))
			continue
		}
		kind, suffix := classifyLayer(sh.Layer)
		switch kind {
		case "room":
			roomType := strings.ToLower(suffix)
			if roomType == "" {
				roomType = model.CategoryLiving
			}
			geo.Rooms = append(geo.Rooms, model.Room{
				Rect: r,
				Name: fmt.Sprintf("Room %d", len(geo.Rooms)+1),
				Type: roomType,
			})
		case "stair":
			dir := strings.ToLower(suffix)
			if dir != model.StairUp && dir != model.StairDown {
				dir = model.StairCenter
			}
			geo.Stairways = append(geo.Stairways, model.Stairway{
				Rect:      r,
				Name:      fmt.Sprintf("Stairs %d", len(geo.Stairways)+1),
				Direction: dir,
			})
		case "obstacle":
			geo.Obstacles = append(geo.Obstacles, model.Obstacle{
				Rect: r,
				Name: fmt.Sprintf("Obstacle %d", len(geo.Obstacles)+1),
			})
		default:
			warnings = append(warnings, fmt.Sprintf("Skipped shape on unrecognised layer %q", sh.Layer))
		}
	}
	return geo, warnings
}

// classifyLayer returns "room", "stair", "obstacle" or "" and the layer suffix.
func classifyLayer(layer string) (string, string) {
	upper := strings.ToUpper(strings.TrimSpace(layer))
	head, suffix := upper, ""
	if i := strings.IndexAny(upper, "-_"); i >= 0 {
		head, suffix = upper[:i], upper[i+1:]
	}
	for _, group := range []struct {
		kind     string
		prefixes []string
	}{
		{"room", roomLayers},
		{"stair", stairLayers},
		{"obstacle", obstacleLayers},
	} {
		for _, p := range group.prefixes {
			if head == p || (suffix == "" && strings.HasPrefix(head, p)) {
				return group.kind, suffix
			}
		}
	}
	return "", ""
}

// lwPolylinePoints returns the vertices of a LWPOLYLINE. Bulges are ignored;
// only the bounding box matters for the backdrop.
func lwPolylinePoints(lw *entity.LwPolyline) []model.Point {
	pts := make([]model.Point, 0, len(lw.Vertices))
	for _, v := range lw.Vertices {
		pts = append(pts, model.Point{X: v[0], Y: v[1]})
	}
	return pts
}

// circlePoints approximates a circle as a regular polygon.
func circlePoints(c *entity.Circle, numSegments int) []model.Point {
	pts := make([]model.Point, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		pts[i] = model.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

func pointsToSegments(layer string, pts []model.Point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{layer: layer, start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects segments on the same layer into closed shapes.
// tolerance is the maximum distance between endpoints to consider them connected.
// Open chains are dropped.
func chainSegments(segs []segment, tolerance float64) []Shape {
	used := make([]bool, len(segs))
	var shapes []Shape

	for startIdx := range segs {
		if used[startIdx] {
			continue
		}
		layer := segs[startIdx].layer
		chain := []model.Point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]
			for i, seg := range segs {
				if used[i] || seg.layer != layer {
					continue
				}
				if tail.Distance(seg.start) <= tolerance {
					chain = append(chain, seg.end)
				} else if tail.Distance(seg.end) <= tolerance {
					chain = append(chain, seg.start)
				} else {
					continue
				}
				used[i] = true
				changed = true
				break
			}
		}

		if len(chain) < 4 || chain[0].Distance(chain[len(chain)-1]) > tolerance {
			continue
		}
		shapes = append(shapes, Shape{Layer: layer, Points: chain[:len(chain)-1]})
	}

	// Largest first, for stable room numbering
	sort.SliceStable(shapes, func(i, j int) bool {
		return polygonArea(shapes[i].Points) > polygonArea(shapes[j].Points)
	})
	return shapes
}

// polygonArea computes the absolute area of a polygon using the shoelace formula.
func polygonArea(pts []model.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(area) / 2
}

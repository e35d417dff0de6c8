package widgets

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FurniLayout/internal/editor"
	"github.com/piwi3910/FurniLayout/internal/model"
)

// Backdrop and overlay colors.
var (
	canvasBackground = color.NRGBA{R: 250, G: 248, B: 243, A: 255}
	roomFill         = color.NRGBA{R: 232, G: 226, B: 212, A: 255}
	roomStroke       = color.NRGBA{R: 120, G: 110, B: 95, A: 255}
	stairFill        = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	obstacleFill     = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	itemStroke       = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	selectionStroke  = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	handleFill       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	collisionStroke  = color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	tooCloseStroke   = color.NRGBA{R: 255, G: 152, B: 0, A: 255}
	badgeFill        = color.NRGBA{R: 0, G: 0, B: 0, A: 150}
)

// FloorEditor is the part of the editor the canvas draws and drives.
type FloorEditor interface {
	Frame() editor.Frame
	Settings() model.LayoutSettings
	PointerDown(p model.Point)
	PointerMove(p model.Point) bool
	PointerUp() bool
}

// FloorCanvas draws one floor with its items and turns mouse input into
// editor pointer events.
type FloorCanvas struct {
	widget.BaseWidget
	editor    FloorEditor
	maxWidth  float32
	maxHeight float32

	// OnChanged runs after a gesture changes the selection or an item.
	OnChanged func()
}

var (
	_ desktop.Mouseable = (*FloorCanvas)(nil)
	_ fyne.Draggable    = (*FloorCanvas)(nil)
)

func NewFloorCanvas(ed FloorEditor, maxW, maxH float32) *FloorCanvas {
	fc := &FloorCanvas{
		editor:    ed,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	fc.ExtendBaseWidget(fc)
	return fc
}

func (fc *FloorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newFloorCanvasRenderer(fc)
}

// scale is the number of screen units per canvas pixel at the given widget size.
func (fc *FloorCanvas) scale(size fyne.Size) float32 {
	s := fc.editor.Settings()
	return fitScale(size, s.CanvasWidth, s.CanvasHeight)
}

// toModel maps a widget-local position to canvas coordinates.
func (fc *FloorCanvas) toModel(pos fyne.Position) model.Point {
	sc := fc.scale(fc.Size())
	if sc <= 0 {
		sc = 1
	}
	return model.Point{X: float64(pos.X / sc), Y: float64(pos.Y / sc)}
}

func (fc *FloorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	fc.editor.PointerDown(fc.toModel(ev.Position))
	fc.changed()
}

func (fc *FloorCanvas) MouseUp(*desktop.MouseEvent) {
	if fc.editor.PointerUp() {
		fc.changed()
	}
}

func (fc *FloorCanvas) Dragged(ev *fyne.DragEvent) {
	if fc.editor.PointerMove(fc.toModel(ev.Position)) {
		fc.Refresh()
	}
}

func (fc *FloorCanvas) DragEnd() {
	if fc.editor.PointerUp() {
		fc.changed()
	}
}

func (fc *FloorCanvas) changed() {
	fc.Refresh()
	if fc.OnChanged != nil {
		fc.OnChanged()
	}
}

type floorCanvasRenderer struct {
	fc      *FloorCanvas
	size    fyne.Size
	objects []fyne.CanvasObject
}

func newFloorCanvasRenderer(fc *FloorCanvas) *floorCanvasRenderer {
	r := &floorCanvasRenderer{fc: fc}
	r.rebuild()
	return r
}

func (r *floorCanvasRenderer) rebuild() {
	r.objects = nil

	frame := r.fc.editor.Frame()
	settings := r.fc.editor.Settings()
	size := r.size
	if size.IsZero() {
		size = r.MinSize()
	}
	sc := fitScale(size, settings.CanvasWidth, settings.CanvasHeight)

	r.addRect(model.Rect{Width: settings.CanvasWidth, Height: settings.CanvasHeight}, sc, canvasBackground, roomStroke, 2)

	geo := frame.Geometry
	for _, room := range geo.Rooms {
		fill := roomFill
		if c, ok := ParseColor(room.Color); ok {
			fill = c
		}
		r.addRect(room.Rect, sc, fill, roomStroke, 1)
		r.addLabel(room.Name, room.X+4, room.Y+2, sc, roomStroke, 10, false)
	}
	for _, st := range geo.Stairways {
		r.addRect(st.Rect, sc, stairFill, roomStroke, 1)
		r.addStairTreads(st, sc)
		r.addLabel(stairLabel(st), st.X+3, st.Y+2, sc, roomStroke, 9, true)
	}
	for _, ob := range geo.Obstacles {
		r.addRect(ob.Rect, sc, obstacleFill, obstacleFill, 1)
	}

	for _, it := range frame.Items {
		r.addItem(it, sc, settings, it.ID == frame.SelectedID)
	}
}

func (r *floorCanvasRenderer) addItem(it model.PlacedItem, sc float32, s model.LayoutSettings, selected bool) {
	fill, ok := ParseColor(it.Color)
	if !ok {
		fill, _ = ParseColor(s.DefaultColor)
	}
	fill.A = 210
	r.addRect(it.Rect, sc, fill, color.Transparent, 0)

	stroke, width := WarningStroke(it.Warning.Kind)
	if selected {
		stroke, width = selectionStroke, 2
	}
	outline := it.Outline()
	for i := range outline {
		a, b := outline[i], outline[(i+1)%len(outline)]
		r.addLine(a, b, sc, stroke, width)
	}

	w, h := float32(it.Width)*sc, float32(it.Height)*sc
	if w > 40 && h > 20 {
		r.addLabel(it.Name, it.X+4, it.Y+4, sc, color.Black, 10, false)
	}

	badge := canvas.NewRectangle(badgeFill)
	badge.Resize(fyne.NewSize(14, 14))
	badge.Move(fyne.NewPos(float32(it.Right())*sc-16, float32(it.Y)*sc+2))
	r.objects = append(r.objects, badge)
	letter := canvas.NewText(it.ZoneBadge(), color.White)
	letter.TextSize = 9
	letter.TextStyle = fyne.TextStyle{Bold: true}
	letter.Move(fyne.NewPos(float32(it.Right())*sc-13, float32(it.Y)*sc+2))
	r.objects = append(r.objects, letter)

	if !selected {
		return
	}
	hr := float32(s.HandleRadius) * sc
	for _, c := range model.Corners {
		p := it.Rect.CornerPoint(c)
		handle := canvas.NewRectangle(handleFill)
		handle.StrokeColor = selectionStroke
		handle.StrokeWidth = 1
		handle.Resize(fyne.NewSize(hr, hr))
		handle.Move(fyne.NewPos(float32(p.X)*sc-hr/2, float32(p.Y)*sc-hr/2))
		r.objects = append(r.objects, handle)
	}
}

// addStairTreads draws evenly spaced treads across the longer side.
func (r *floorCanvasRenderer) addStairTreads(st model.Stairway, sc float32) {
	const treadGap = 8.0
	if st.Width >= st.Height {
		for x := st.X + treadGap; x < st.Right(); x += treadGap {
			r.addLine(model.Point{X: x, Y: st.Y}, model.Point{X: x, Y: st.Bottom()}, sc, roomStroke, 1)
		}
		return
	}
	for y := st.Y + treadGap; y < st.Bottom(); y += treadGap {
		r.addLine(model.Point{X: st.X, Y: y}, model.Point{X: st.Right(), Y: y}, sc, roomStroke, 1)
	}
}

func (r *floorCanvasRenderer) addRect(rc model.Rect, sc float32, fill, stroke color.Color, strokeWidth float32) {
	rect := canvas.NewRectangle(fill)
	rect.StrokeColor = stroke
	rect.StrokeWidth = strokeWidth
	rect.Resize(fyne.NewSize(float32(rc.Width)*sc, float32(rc.Height)*sc))
	rect.Move(fyne.NewPos(float32(rc.X)*sc, float32(rc.Y)*sc))
	r.objects = append(r.objects, rect)
}

func (r *floorCanvasRenderer) addLine(a, b model.Point, sc float32, stroke color.Color, width float32) {
	line := canvas.NewLine(stroke)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(a.X)*sc, float32(a.Y)*sc)
	line.Position2 = fyne.NewPos(float32(b.X)*sc, float32(b.Y)*sc)
	r.objects = append(r.objects, line)
}

func (r *floorCanvasRenderer) addLabel(text string, x, y float64, sc float32, col color.Color, size float32, bold bool) {
	if text == "" {
		return
	}
	label := canvas.NewText(text, col)
	label.TextSize = size
	label.TextStyle = fyne.TextStyle{Bold: bold}
	label.Move(fyne.NewPos(float32(x)*sc, float32(y)*sc))
	r.objects = append(r.objects, label)
}

func (r *floorCanvasRenderer) Layout(size fyne.Size) {
	if size != r.size {
		r.size = size
		r.rebuild()
	}
}

func (r *floorCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *floorCanvasRenderer) Destroy()                     {}
func (r *floorCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *floorCanvasRenderer) MinSize() fyne.Size {
	s := r.fc.editor.Settings()
	sc := fitScale(fyne.NewSize(r.fc.maxWidth, r.fc.maxHeight), s.CanvasWidth, s.CanvasHeight)
	return fyne.NewSize(float32(s.CanvasWidth)*sc, float32(s.CanvasHeight)*sc)
}

// fitScale returns the largest uniform scale that fits w x h into size.
func fitScale(size fyne.Size, w, h float64) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(math.Min(float64(size.Width)/w, float64(size.Height)/h))
}

// WarningStroke returns the outline color and width for a warning state.
func WarningStroke(kind model.WarningKind) (color.NRGBA, float32) {
	switch kind {
	case model.WarningCollision:
		return collisionStroke, 3
	case model.WarningTooClose:
		return tooCloseStroke, 2
	default:
		return itemStroke, 1
	}
}

// ParseColor parses "#RRGGBB", "#RGB", "rgb(r,g,b)" or "rgba(r,g,b,a)"
// with alpha in 0..1.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "rgb") {
		return parseRGBFunc(s)
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 3 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	if len(s) == 3 {
		return color.NRGBA{R: uint8(v>>8&0xF) * 17, G: uint8(v>>4&0xF) * 17, B: uint8(v&0xF) * 17, A: 255}, true
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func parseRGBFunc(s string) (color.NRGBA, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return color.NRGBA{}, false
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		ch[i] = uint8(v)
	}
	c := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, false
		}
		c.A = uint8(math.Round(a * 255))
	}
	return c, true
}

func stairLabel(st model.Stairway) string {
	switch st.Direction {
	case model.StairUp:
		return "UP"
	case model.StairDown:
		return "DN"
	default:
		return st.Name
	}
}

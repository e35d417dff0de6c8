package ui

import (
	"fmt"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// chamferOptions lists the corner choices in display order.
var chamferOptions = []model.Corner{
	model.CornerNone,
	model.CornerTopLeft,
	model.CornerTopRight,
	model.CornerBottomLeft,
	model.CornerBottomRight,
}

func (a *App) buildInspectorPanel() fyne.CanvasObject {
	a.inspector = container.NewVBox()
	return widget.NewCard("Selected Item", "", a.inspector)
}

// refreshInspector rebuilds the property editor for the selected item.
func (a *App) refreshInspector() {
	a.inspector.RemoveAll()

	it, ok := a.editor.SelectedItem()
	if !ok {
		a.inspector.Add(widget.NewLabel("Click an item on the floor to edit it."))
		return
	}

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.0f", it.Width))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.0f", it.Height))

	applyBtn := widget.NewButton("Apply Size", func() {
		w, errW := strconv.ParseFloat(widthEntry.Text, 64)
		h, errH := strconv.ParseFloat(heightEntry.Text, 64)
		if errW != nil || errH != nil || math.IsInf(w, 0) || math.IsInf(h, 0) {
			dialog.ShowError(fmt.Errorf("size must be a finite number"), a.window)
			return
		}
		if a.editor.ResizeSelected(w, h) {
			a.refreshEditor()
		}
	})

	corners := make([]string, len(chamferOptions))
	for i, c := range chamferOptions {
		corners[i] = string(c)
	}
	chamferSize := widget.NewEntry()
	chamferSize.SetText(fmt.Sprintf("%.0f", it.Chamfer.Size))
	chamferSelect := widget.NewSelect(corners, nil)
	current := it.Chamfer.Corner
	if current == "" {
		current = model.CornerNone
	}
	chamferSelect.SetSelected(string(current))
	chamferBtn := widget.NewButton("Apply Chamfer", func() {
		size, err := strconv.ParseFloat(chamferSize.Text, 64)
		if err != nil || size < 0 {
			size = a.editor.Settings().DefaultChamferSize
		}
		ch := model.Chamfer{Corner: model.Corner(chamferSelect.Selected), Size: size}
		if a.editor.SetChamfer(ch) {
			a.refreshEditor()
		}
	})

	warning := widget.NewLabel(warningText(it.Warning.Kind))
	switch it.Warning.Kind {
	case model.WarningCollision:
		warning.Importance = widget.DangerImportance
	case model.WarningTooClose:
		warning.Importance = widget.WarningImportance
	}

	a.inspector.Add(widget.NewLabelWithStyle(it.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	a.inspector.Add(widget.NewLabel(fmt.Sprintf("Position %.0f, %.0f · zone %s", it.X, it.Y, it.Zone)))
	a.inspector.Add(warning)
	a.inspector.Add(widget.NewForm(
		widget.NewFormItem("Width (px)", widthEntry),
		widget.NewFormItem("Height (px)", heightEntry),
	))
	a.inspector.Add(applyBtn)
	a.inspector.Add(widget.NewSeparator())
	a.inspector.Add(widget.NewForm(
		widget.NewFormItem("Chamfer", chamferSelect),
		widget.NewFormItem("Cut (px)", chamferSize),
	))
	a.inspector.Add(chamferBtn)
	a.inspector.Add(widget.NewSeparator())
	a.inspector.Add(container.NewGridWithColumns(2,
		widget.NewButtonWithIcon("Rotate", theme.ViewRefreshIcon(), a.rotateSelected),
		widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), a.deleteSelected),
	))
}

func warningText(kind model.WarningKind) string {
	switch kind {
	case model.WarningCollision:
		return "Overlaps another item"
	case model.WarningTooClose:
		return "Closer than the minimum spacing"
	default:
		return "Placement OK"
	}
}

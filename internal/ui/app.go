package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FurniLayout/internal/editor"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
	"github.com/piwi3910/FurniLayout/internal/project"
	"github.com/piwi3910/FurniLayout/internal/ui/widgets"
)

const (
	layoutTimeout  = 45 * time.Second
	maxRecentFiles = 10
)

var roomTypes = []string{model.RoomLiving, model.RoomBedroom, model.RoomKitchen}

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	editor     *editor.Editor
	config     model.AppConfig
	predictor  predictor.Predictor
	houseTypes []model.HouseType

	catalogPath string
	category    string
	cancel      context.CancelFunc

	// UI references for dynamic updates
	floorCanvas   *widgets.FloorCanvas
	floorSelect   *widget.Select
	roomSelect    *widget.Select
	houseSelect   *widget.Select
	snapCheck     *widget.Check
	autoBtn       *widget.Button
	busyBar       *widget.ProgressBarInfinite
	catalogList   *fyne.Container
	cartList      *fyne.Container
	capacityLabel *widget.Label
	inspector     *fyne.Container
	statusLabel   *widget.Label
}

// NewApp wires the editor to a window. The predictor client is built from
// cfg.PredictorURL.
func NewApp(application fyne.App, window fyne.Window, ed *editor.Editor, cfg model.AppConfig) *App {
	return &App{
		app:         application,
		window:      window,
		editor:      ed,
		config:      cfg,
		predictor:   predictor.NewClient(cfg.PredictorURL),
		houseTypes:  model.DefaultHouseTypes(),
		catalogPath: project.DefaultCatalogPath(),
		category:    allCategories,
	}
}

// SetupMenus creates the native menu bar and keyboard shortcuts.
func (a *App) SetupMenus() {
	recentMenu := fyne.NewMenuItem("Open Recent", nil)
	recentMenu.ChildMenu = a.buildRecentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Layout", func() {
			a.newLayout()
		}),
		fyne.NewMenuItem("Open Layout...", func() {
			a.loadLayout()
		}),
		recentMenu,
		fyne.NewMenuItem("Save Layout...", func() {
			a.saveLayout()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Catalog from CSV...", func() {
			a.importCatalogCSV()
		}),
		fyne.NewMenuItem("Import Catalog from Excel...", func() {
			a.importCatalogExcel()
		}),
		fyne.NewMenuItem("Import Floor Plan from DXF...", func() {
			a.importFloorDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rotate Selected", func() {
			a.rotateSelected()
		}),
		fyne.NewMenuItem("Delete Selected", func() {
			a.deleteSelected()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Cart", func() {
			a.editor.ClearCart()
			a.refreshCart()
		}),
		fyne.NewMenuItem("Reset Floor", func() {
			a.confirmResetFloor()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Auto Layout", func() {
			a.runAutoLayout(false)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Catalog Entry...", func() {
			a.showAddCatalogEntryDialog()
		}),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))

	c := a.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.saveLayout() })
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			a.deleteSelected()
		case fyne.KeyR:
			a.rotateSelected()
		case fyne.KeyEscape:
			a.editor.Select("")
			a.refreshEditor()
		}
	})
}

func (a *App) buildRecentMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, path := range a.config.RecentLayouts {
		p := path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() {
			a.openLayout(p)
		}))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("No recent layouts", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About FurniLayout",
		"FurniLayout - Furniture Placement Editor\n\n"+
			"Arrange furniture on multi-floor house plans by hand\n"+
			"or with suggestions from a layout service.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.floorCanvas = widgets.NewFloorCanvas(a.editor, 640, 640)
	a.floorCanvas.OnChanged = a.refreshPanels

	a.statusLabel = widget.NewLabel("")
	a.busyBar = widget.NewProgressBarInfinite()
	a.busyBar.Hide()

	center := container.NewBorder(nil, a.statusLabel, nil, nil, container.NewCenter(a.floorCanvas))

	split := container.NewHSplit(a.buildCatalogPanel(), center)
	split.Offset = 0.22
	right := container.NewVScroll(container.NewVBox(a.buildCartPanel(), a.buildInspectorPanel()))
	right.SetMinSize(fyne.NewSize(280, 0))

	root := container.NewBorder(a.buildToolbar(), nil, nil, right, split)
	a.refreshAll()
	return root
}

func (a *App) buildToolbar() fyne.CanvasObject {
	a.floorSelect = widget.NewSelect(nil, func(selected string) {
		id, ok := a.floorByLabel(selected)
		if !ok || id == a.editor.ActiveFloor() {
			return
		}
		a.switchFloor(id)
	})

	a.roomSelect = widget.NewSelect(roomTypes, func(selected string) {
		a.editor.SetRoomType(selected)
	})
	a.roomSelect.SetSelected(a.editor.RoomType())

	houseNames := make([]string, len(a.houseTypes))
	for i, h := range a.houseTypes {
		houseNames[i] = h.Name
	}
	a.houseSelect = widget.NewSelect(houseNames, func(selected string) {
		for _, h := range a.houseTypes {
			if h.Name == selected {
				a.editor.SetHouseType(h.ID)
				return
			}
		}
	})
	a.houseSelect.PlaceHolder = "House type"

	a.snapCheck = widget.NewCheck("Snap to grid", func(on bool) {
		a.editor.SetSnap(on)
		if a.config.SnapEnabled != on {
			a.config.SnapEnabled = on
			if err := a.saveConfig(); err != nil {
				log.Printf("[CONFIG] failed to save snap preference: %v", err)
			}
		}
	})
	a.snapCheck.SetChecked(a.editor.Snap())

	a.autoBtn = widget.NewButtonWithIcon("Auto Layout", theme.MediaPlayIcon(), func() {
		a.runAutoLayout(false)
	})
	a.autoBtn.Importance = widget.HighImportance

	undoBtn := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), a.undo)
	redoBtn := widget.NewButtonWithIcon("", theme.ContentRedoIcon(), a.redo)
	resetBtn := widget.NewButtonWithIcon("Reset Floor", theme.ContentClearIcon(), a.confirmResetFloor)

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabelWithStyle("Floor", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			a.floorSelect,
			widget.NewLabel("Room"),
			a.roomSelect,
			a.houseSelect,
			layout.NewSpacer(),
			undoBtn, redoBtn, resetBtn,
			a.snapCheck,
			a.autoBtn,
		),
		a.busyBar,
		widget.NewSeparator(),
	)
}

// ─── Refresh ───────────────────────────────────────────────

// refreshAll redraws everything, including the floor selector.
func (a *App) refreshAll() {
	labels := make([]string, 0, len(a.editor.Floors()))
	for _, id := range a.editor.Floors().IDs() {
		labels = append(labels, a.floorLabel(id))
	}
	a.floorSelect.SetOptions(labels)
	a.floorSelect.SetSelected(a.floorLabel(a.editor.ActiveFloor()))
	a.roomSelect.SetSelected(a.editor.RoomType())
	if h := model.FindHouseType(a.houseTypes, a.editor.HouseTypeID()); h != nil {
		a.houseSelect.SetSelected(h.Name)
	} else {
		a.houseSelect.ClearSelected()
	}
	a.refreshCatalogList()
	a.refreshCart()
	a.refreshEditor()
}

// refreshEditor redraws the floor and the panels that depend on it.
func (a *App) refreshEditor() {
	a.floorCanvas.Refresh()
	a.refreshPanels()
}

func (a *App) refreshPanels() {
	a.refreshInspector()
	a.statusLabel.SetText(statusText(a.editor.Items()))
}

func (a *App) floorLabel(id model.FloorID) string {
	return fmt.Sprintf("%d - %s", id, a.editor.Floors()[id].Name)
}

func (a *App) floorByLabel(label string) (model.FloorID, bool) {
	for _, id := range a.editor.Floors().IDs() {
		if a.floorLabel(id) == label {
			return id, true
		}
	}
	return 0, false
}

// statusText summarises the warning state of a floor.
func statusText(items []model.PlacedItem) string {
	collisions, tooClose := 0, 0
	for _, it := range items {
		switch it.Warning.Kind {
		case model.WarningCollision:
			collisions++
		case model.WarningTooClose:
			tooClose++
		}
	}
	parts := []string{fmt.Sprintf("%d item(s)", len(items))}
	if collisions > 0 {
		parts = append(parts, fmt.Sprintf("%d overlapping", collisions))
	}
	if tooClose > 0 {
		parts = append(parts, fmt.Sprintf("%d too close", tooClose))
	}
	if collisions == 0 && tooClose == 0 && len(items) > 0 {
		parts = append(parts, "layout OK")
	}
	return strings.Join(parts, " | ")
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) switchFloor(id model.FloorID) {
	if id == a.editor.ActiveFloor() {
		return
	}
	a.cancelLayout()
	if err := a.editor.SwitchFloor(id); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.setBusy(false)
	a.refreshEditor()
}

func (a *App) undo() {
	if a.editor.Undo() {
		a.refreshEditor()
	}
}

func (a *App) redo() {
	if a.editor.Redo() {
		a.refreshEditor()
	}
}

func (a *App) rotateSelected() {
	if a.editor.RotateSelected() {
		a.refreshEditor()
	}
}

func (a *App) deleteSelected() {
	if a.editor.DeleteSelected() {
		a.refreshEditor()
	}
}

func (a *App) confirmResetFloor() {
	if len(a.editor.Items()) == 0 {
		return
	}
	dialog.ShowConfirm("Reset Floor",
		fmt.Sprintf("Remove all furniture from %s?", a.editor.Floors()[a.editor.ActiveFloor()].Name),
		func(ok bool) {
			if !ok {
				return
			}
			a.editor.ResetFloor()
			a.refreshEditor()
		}, a.window)
}

// runAutoLayout sends the cart to the layout service in the background.
// A critical cart asks for confirmation first; the result is applied on
// the UI goroutine and silently dropped if the floor changed meanwhile.
func (a *App) runAutoLayout(confirmed bool) {
	p, err := a.editor.BeginAutoLayout(confirmed)
	var capErr *model.CapacityExceededError
	switch {
	case errors.As(err, &capErr):
		dialog.ShowConfirm("Too Much Furniture",
			fmt.Sprintf("%s.\n\nOnly the first %d item(s) will be sent and the layout may be crowded.\nContinue anyway?",
				capErr.Error(), capErr.MaxItems),
			func(ok bool) {
				if ok {
					a.runAutoLayout(true)
				}
			}, a.window)
		return
	case errors.Is(err, model.ErrEmptyCart):
		dialog.ShowInformation("Cart is empty", "Add furniture from the catalog before running Auto Layout.", a.window)
		return
	case errors.Is(err, editor.ErrIngestInFlight):
		return
	case err != nil:
		dialog.ShowError(err, a.window)
		return
	}

	a.setBusy(true)
	ctx, cancel := context.WithTimeout(context.Background(), layoutTimeout)
	a.cancel = cancel
	pr := a.predictor
	go func() {
		defer cancel()
		resp, err := pr.Suggest(ctx, p.Request)
		fyne.Do(func() {
			a.finishAutoLayout(p, resp, err)
		})
	}()
}

func (a *App) finishAutoLayout(p *editor.Pending, resp predictor.Response, reqErr error) {
	sum, err := a.editor.CompleteAutoLayout(p, resp, reqErr)
	if errors.Is(err, editor.ErrStaleResult) {
		return
	}
	a.cancel = nil
	a.setBusy(false)
	if err != nil {
		var unavailable *model.PredictorUnavailableError
		if errors.As(err, &unavailable) {
			dialog.ShowError(fmt.Errorf("%w\n\nCheck that the layout service is running at %s", err, a.config.PredictorURL), a.window)
			return
		}
		dialog.ShowError(err, a.window)
		return
	}
	a.refreshEditor()
	dialog.ShowInformation("Auto Layout Complete", sum.Message(), a.window)
}

func (a *App) cancelLayout() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.editor.CancelAutoLayout()
}

func (a *App) setBusy(busy bool) {
	if busy {
		a.busyBar.Show()
		a.busyBar.Start()
		a.autoBtn.Disable()
		return
	}
	a.busyBar.Stop()
	a.busyBar.Hide()
	a.autoBtn.Enable()
}

// ─── Layout Files ──────────────────────────────────────────

func (a *App) newLayout() {
	dialog.ShowConfirm("New Layout", "Discard furniture on every floor and empty the cart?", func(ok bool) {
		if !ok {
			return
		}
		a.cancelLayout()
		a.setBusy(false)
		if err := a.editor.LoadSavedLayout(model.SavedLayout{Version: model.LayoutVersion}); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.refreshAll()
	}, a.window)
}

func (a *App) saveLayout() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveLayout(path, a.editor.SavedLayout()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberLayout(path)
	}, a.window)
	d.SetFileName("layout.furni.json")
	d.Show()
}

func (a *App) loadLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openLayout(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openLayout(path string) {
	saved, err := project.LoadLayout(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.cancelLayout()
	a.setBusy(false)
	if err := a.editor.LoadSavedLayout(saved); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.rememberLayout(path)
	a.refreshAll()
}

func (a *App) rememberLayout(path string) {
	a.config.AddRecentLayout(path, maxRecentFiles)
	if err := a.saveConfig(); err != nil {
		log.Printf("[CONFIG] failed to save recent layouts: %v", err)
	}
	a.SetupMenus()
}

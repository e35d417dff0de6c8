package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FurniLayout/internal/importer"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/project"
	"github.com/piwi3910/FurniLayout/internal/session"
)

const allCategories = model.CategoryAll

// ─── Catalog Panel ─────────────────────────────────────────

func (a *App) buildCatalogPanel() fyne.CanvasObject {
	a.catalogList = container.NewVBox()

	categorySelect := widget.NewSelect(model.Categories, func(selected string) {
		a.category = selected
		a.refreshCatalogList()
	})
	categorySelect.SetSelected(a.category)

	addBtn := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		a.showAddCatalogEntryDialog()
	})

	return container.NewBorder(
		container.NewVBox(
			container.NewHBox(
				widget.NewLabelWithStyle("Catalog", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				layout.NewSpacer(),
				addBtn,
			),
			categorySelect,
		),
		nil, nil, nil,
		container.NewVScroll(a.catalogList),
	)
}

func (a *App) refreshCatalogList() {
	a.catalogList.RemoveAll()

	cat := a.editor.Catalog()
	entries := cat.Filter(a.category)
	if len(entries) == 0 {
		a.catalogList.Add(widget.NewLabel("No furniture in this category."))
		return
	}

	for i := range entries {
		e := entries[i]
		row := container.NewBorder(nil, nil, nil,
			widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
				a.editor.AddToCart(e)
				a.refreshCart()
			}),
			container.NewVBox(
				widget.NewLabelWithStyle(e.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel(fmt.Sprintf("%.0f x %.0f cm · %s", e.Width, e.Depth, e.Category)),
			),
		)
		a.catalogList.Add(row)
	}
}

func (a *App) showAddCatalogEntryDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g. Reading Chair")
	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("cm")
	depthEntry := widget.NewEntry()
	depthEntry.SetPlaceHolder("cm")
	categorySelect := widget.NewSelect(model.Categories[1:], nil)
	categorySelect.SetSelected(model.CategoryLiving)
	colorEntry := widget.NewEntry()
	colorEntry.SetText(a.editor.Settings().DefaultColor)

	form := dialog.NewForm("Add Catalog Entry", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (cm)", widthEntry),
			widget.NewFormItem("Depth (cm)", depthEntry),
			widget.NewFormItem("Category", categorySelect),
			widget.NewFormItem("Color", colorEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, errW := strconv.ParseFloat(widthEntry.Text, 64)
			d, errD := strconv.ParseFloat(depthEntry.Text, 64)
			if errW != nil || errD != nil || w <= 0 || d <= 0 {
				dialog.ShowError(fmt.Errorf("width and depth must be positive numbers"), a.window)
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				name = "Furniture"
			}
			entry := model.NewCatalogEntry(name, w, d, categorySelect.Selected, colorEntry.Text)
			a.setCatalog(project.MergeCatalog(a.editor.Catalog(), []model.CatalogEntry{entry}))
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

// setCatalog replaces the editor catalog and persists it.
func (a *App) setCatalog(cat model.Catalog) {
	a.editor.SetCatalog(cat)
	if a.catalogPath != "" {
		if err := project.SaveCatalog(a.catalogPath, cat); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save catalog: %w", err), a.window)
		}
	}
	a.refreshCatalogList()
}

// ─── Cart Panel ────────────────────────────────────────────

func (a *App) buildCartPanel() fyne.CanvasObject {
	a.cartList = container.NewVBox()
	a.capacityLabel = widget.NewLabel("")
	a.capacityLabel.Wrapping = fyne.TextWrapWord

	clearBtn := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() {
		a.editor.ClearCart()
		a.refreshCart()
	})

	return widget.NewCard("Cart", "", container.NewVBox(
		a.cartList,
		widget.NewSeparator(),
		a.capacityLabel,
		container.NewHBox(layout.NewSpacer(), clearBtn),
	))
}

func (a *App) refreshCart() {
	a.cartList.RemoveAll()

	cart := a.editor.Cart()
	if len(cart) == 0 {
		a.cartList.Add(widget.NewLabel("Cart is empty. Add furniture from the catalog."))
	}
	for i := range cart {
		idx := i
		e := cart[idx]
		a.cartList.Add(container.NewBorder(nil, nil, nil,
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				if err := a.editor.RemoveFromCart(idx); err != nil {
					log.Printf("[CART] %v", err)
				}
				a.refreshCart()
			}),
			widget.NewLabel(fmt.Sprintf("%d. %s (%.0f x %.0f)", idx+1, e.Name, e.Width, e.Depth)),
		))
	}

	st := a.editor.Capacity()
	a.capacityLabel.SetText(st.Message)
	a.capacityLabel.Importance = capacityImportance(st.Level)
	a.capacityLabel.Refresh()
}

// capacityImportance maps a capacity level to a label style.
func capacityImportance(level session.Level) widget.Importance {
	switch level {
	case session.LevelCritical:
		return widget.DangerImportance
	case session.LevelWarning:
		return widget.WarningImportance
	case session.LevelInfo:
		return widget.MediumImportance
	default:
		return widget.LowImportance
	}
}

// ─── Import Functions ──────────────────────────────────────

func (a *App) importCatalogCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportCatalogCSV(reader.URI().Path())
		a.handleCatalogImport(result)
	}, a.window)
}

func (a *App) importCatalogExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportCatalogExcel(reader.URI().Path())
		a.handleCatalogImport(result)
	}, a.window)
}

func (a *App) handleCatalogImport(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		log.Printf("[IMPORT] catalog warnings: %v", result.Warnings)
	}

	if len(result.Entries) > 0 {
		before := len(a.editor.Catalog().Entries)
		merged := project.MergeCatalog(a.editor.Catalog(), result.Entries)
		a.setCatalog(merged)

		msg := fmt.Sprintf("Added %d catalog entries.", len(merged.Entries)-before)
		if skipped := len(result.Entries) - (len(merged.Entries) - before); skipped > 0 {
			msg += fmt.Sprintf("\n%d entries were skipped because their ID already exists.", skipped)
		}
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

// importFloorDXF replaces the active floor's backdrop with a DXF drawing.
func (a *App) importFloorDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		floor := a.editor.ActiveFloor()
		name := a.editor.Floors()[floor].Name
		result := importer.ImportFloorDXF(reader.URI().Path(), name, a.editor.Settings())
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		if err := a.editor.SetFloorGeometry(floor, result.Geometry); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.refreshAll()

		geo := result.Geometry
		msg := fmt.Sprintf("Imported %d room(s), %d stairway(s) and %d obstacle(s).",
			len(geo.Rooms), len(geo.Stairways), len(geo.Obstacles))
		if len(result.Warnings) > 0 {
			log.Printf("[IMPORT] DXF warnings: %v", result.Warnings)
			msg += fmt.Sprintf("\n\n%d shape(s) were skipped.", len(result.Warnings))
		}
		dialog.ShowInformation("Floor Plan Imported", msg, a.window)
	}, a.window)
}

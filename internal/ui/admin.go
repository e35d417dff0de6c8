package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
	"github.com/piwi3910/FurniLayout/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	urlEntry := widget.NewEntry()
	urlEntry.SetText(cfg.PredictorURL)
	urlEntry.OnChanged = func(text string) {
		cfg.PredictorURL = strings.TrimSpace(text)
	}

	roomSelect := widget.NewSelect(roomTypes, func(selected string) {
		cfg.RoomType = selected
	})
	roomSelect.SetSelected(cfg.RoomType)

	themeSelect := widget.NewSelect([]string{ThemeSystem, ThemeLight, ThemeDark}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	snapCheck := widget.NewCheck("", func(on bool) {
		cfg.SnapEnabled = on
	})
	snapCheck.SetChecked(cfg.SnapEnabled)

	coveragePct := cfg.MaxCoverage * 100

	formItems := []*widget.FormItem{
		widget.NewFormItem("Layout Service URL", urlEntry),
		widget.NewFormItem("Default Room Type", roomSelect),
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Minimum Spacing (px)", floatEntry(&cfg.MinSpacing)),
		widget.NewFormItem("Max Items per Layout", intEntry(&cfg.MaxItems)),
		widget.NewFormItem("Max Floor Coverage (%)", floatEntry(&coveragePct)),
		widget.NewFormItem("Snap to Grid", snapCheck),
		widget.NewFormItem("Grid Step (px)", floatEntry(&cfg.GridStep)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg.MaxCoverage = coveragePct / 100
			if cfg.PredictorURL == "" {
				cfg.PredictorURL = model.DefaultPredictorURL
			}
			a.applyConfig(cfg)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 450))
	d.Show()
}

// applyConfig pushes a new config into the editor, the predictor client
// and the theme, then redraws.
func (a *App) applyConfig(cfg model.AppConfig) {
	urlChanged := cfg.PredictorURL != a.config.PredictorURL
	a.config = cfg

	settings := a.editor.Settings()
	cfg.ApplyToSettings(&settings)
	a.editor.ApplySettings(settings)
	a.editor.SetSnap(cfg.SnapEnabled)
	if urlChanged {
		a.predictor = predictor.NewClient(cfg.PredictorURL)
	}
	if a.app != nil {
		a.app.Settings().SetTheme(NewFurniLayoutTheme(cfg.Theme))
	}
	if a.snapCheck != nil {
		a.snapCheck.SetChecked(cfg.SnapEnabled)
		a.refreshCart()
		a.refreshEditor()
	}
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.editor.Catalog()); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings and catalog exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("furnilayout-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and furniture catalog.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.applyConfig(backup.Config)
					if len(backup.Catalog.Entries) > 0 {
						a.setCatalog(backup.Catalog)
					}
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and the furniture catalog to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}

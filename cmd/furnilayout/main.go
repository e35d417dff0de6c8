// FurniLayout - Furniture Placement Editor
//
// A cross-platform desktop application for arranging furniture on
// multi-floor house plans, by hand or with suggestions from a layout
// service (see cmd/predictor-stub for a local one).
//
// Build:
//   go build -o furnilayout ./cmd/furnilayout
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o furnilayout.exe ./cmd/furnilayout
//   GOOS=darwin  GOARCH=amd64 go build -o furnilayout-darwin ./cmd/furnilayout
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/FurniLayout/internal/editor"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/project"
	"github.com/piwi3910/FurniLayout/internal/ui"
)

func main() {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("[CONFIG] using defaults: %v", err)
		cfg = model.DefaultAppConfig()
	}

	settings := model.DefaultSettings()
	cfg.ApplyToSettings(&settings)

	catalog, err := project.LoadCatalog(project.DefaultCatalogPath())
	if err != nil {
		log.Printf("[CONFIG] using built-in catalog: %v", err)
		catalog = model.DefaultCatalog()
	}

	ed, err := editor.New(settings, model.DefaultFloors(), catalog)
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}
	ed.SetSnap(cfg.SnapEnabled)
	if cfg.RoomType != "" {
		ed.SetRoomType(cfg.RoomType)
	}

	application := app.NewWithID("com.piwi3910.furnilayout")
	application.Settings().SetTheme(ui.NewFurniLayoutTheme(cfg.Theme))

	window := application.NewWindow("FurniLayout - Furniture Placement Editor")

	appUI := ui.NewApp(application, window, ed, cfg)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 860))
	window.CenterOnScreen()
	window.ShowAndRun()
}

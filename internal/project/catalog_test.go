package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
)

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	cat := model.Catalog{Entries: []model.CatalogEntry{
		model.NewCatalogEntry("Reading Chair", 80, 85, model.CategoryLiving, "#A0826D"),
	}}

	if err := SaveCatalog(path, cat); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}
	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(loaded.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(loaded.Entries))
	}
	if loaded.Entries[0] != cat.Entries[0] {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded.Entries[0], cat.Entries[0])
	}
}

func TestLoadCatalogCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(cat.Entries) != len(model.DefaultCatalog().Entries) {
		t.Errorf("expected default catalog, got %d entries", len(cat.Entries))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default catalog should be written to disk: %v", err)
	}
}

func TestLoadCatalogInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("[broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportCatalogMergesAndDeduplicates(t *testing.T) {
	existing := model.Catalog{Entries: []model.CatalogEntry{
		{ID: "1", Name: "Sofa 3 Seat"},
	}}
	imported := model.Catalog{Entries: []model.CatalogEntry{
		{ID: "1", Name: "Sofa (duplicate)"},
		{ID: "x1", Name: "Bookshelf"},
		{ID: "x1", Name: "Bookshelf again"},
	}}
	data, _ := json.Marshal(imported)
	path := filepath.Join(t.TempDir(), "import.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportCatalog(path, existing)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}
	if len(merged.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(merged.Entries))
	}
	if merged.Entries[0].Name != "Sofa 3 Seat" || merged.Entries[1].Name != "Bookshelf" {
		t.Errorf("unexpected merge result %+v", merged.Entries)
	}
}

func TestImportCatalogMissingFileKeepsExisting(t *testing.T) {
	existing := model.DefaultCatalog()
	got, err := ImportCatalog(filepath.Join(t.TempDir(), "none.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(got.Entries) != len(existing.Entries) {
		t.Error("existing catalog should be returned unchanged")
	}
}

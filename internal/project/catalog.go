package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// DefaultCatalogPath returns the default file path for the furniture catalog.
// This is located at ~/.furnilayout/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the built-in catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// ImportCatalog reads a catalog from a user-specified JSON file and merges
// it into existing. Entries whose ID is already present are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}
	return MergeCatalog(existing, imported.Entries), nil
}

// MergeCatalog appends entries to existing, skipping duplicate IDs.
func MergeCatalog(existing model.Catalog, entries []model.CatalogEntry) model.Catalog {
	ids := make(map[string]bool, len(existing.Entries))
	for _, e := range existing.Entries {
		ids[e.ID] = true
	}
	for _, e := range entries {
		if !ids[e.ID] {
			existing.Entries = append(existing.Entries, e)
			ids[e.ID] = true
		}
	}
	return existing
}

package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// SaveLayout writes a saved layout to path as indented JSON.
func SaveLayout(path string, layout model.SavedLayout) error {
	if layout.Version == "" {
		layout.Version = model.LayoutVersion
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// LoadLayout reads a saved layout. Files without a version are rejected.
func LoadLayout(path string) (model.SavedLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SavedLayout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	var layout model.SavedLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.SavedLayout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if layout.Version == "" {
		return model.SavedLayout{}, fmt.Errorf("invalid layout file: missing version field")
	}
	if layout.Floors == nil {
		layout.Floors = map[model.FloorID]model.FloorSession{}
	}
	return layout, nil
}

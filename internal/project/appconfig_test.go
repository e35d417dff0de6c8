package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	t.Setenv(PredictorURLEnv, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.MinSpacing = 30
	cfg.Theme = "dark"
	cfg.SnapEnabled = true
	cfg.PredictorURL = "http://predictor:5000"
	cfg.RecentLayouts = []string{"/tmp/a.json", "/tmp/b.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.MinSpacing != 30 {
		t.Errorf("expected MinSpacing=30, got %f", loaded.MinSpacing)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if !loaded.SnapEnabled {
		t.Error("expected SnapEnabled=true")
	}
	if loaded.PredictorURL != "http://predictor:5000" {
		t.Errorf("unexpected PredictorURL %s", loaded.PredictorURL)
	}
	if len(loaded.RecentLayouts) != 2 {
		t.Errorf("expected 2 recent layouts, got %d", len(loaded.RecentLayouts))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	t.Setenv(PredictorURLEnv, "")
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.MaxItems != defaults.MaxItems {
		t.Errorf("expected default max items %d, got %d", defaults.MaxItems, cfg.MaxItems)
	}
	if cfg.PredictorURL != model.DefaultPredictorURL {
		t.Errorf("expected default predictor url, got %s", cfg.PredictorURL)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(PredictorURLEnv, "")
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"light","recent_layouts":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme=light, got %s", cfg.Theme)
	}
	if cfg.MinSpacing != model.DefaultSettings().MinSpacing {
		t.Errorf("missing fields should keep defaults, got MinSpacing=%f", cfg.MinSpacing)
	}
	if cfg.RecentLayouts == nil {
		t.Error("RecentLayouts should not be nil")
	}
}

func TestLoadAppConfigEnvOverride(t *testing.T) {
	t.Setenv(PredictorURLEnv, "http://override:9000")

	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.PredictorURL != "http://override:9000" {
		t.Errorf("expected env override, got %s", cfg.PredictorURL)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ".furnilayout" {
		t.Errorf("expected parent dir .furnilayout, got %s", filepath.Dir(path))
	}
}

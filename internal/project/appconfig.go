package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// PredictorURLEnv overrides the configured placement service URL when set.
const PredictorURLEnv = "FURNILAYOUT_PREDICTOR_URL"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.furnilayout/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".furnilayout")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// The PredictorURLEnv environment variable wins over the stored URL.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return model.AppConfig{}, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return model.AppConfig{}, err
		}
	}
	// Ensure RecentLayouts is never nil
	if config.RecentLayouts == nil {
		config.RecentLayouts = []string{}
	}
	if config.PredictorURL == "" {
		config.PredictorURL = model.DefaultPredictorURL
	}
	if env := os.Getenv(PredictorURLEnv); env != "" {
		config.PredictorURL = env
	}
	return config, nil
}

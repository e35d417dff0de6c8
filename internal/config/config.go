package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

// Config is the environment configuration of the stub placement service.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	ScaleFactor  float64
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "5000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		ScaleFactor:  getEnvAsFloat("SCALE_FACTOR", 50),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultVal
}

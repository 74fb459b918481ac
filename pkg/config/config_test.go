package config

import (
	"os"
	"testing"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore, Unsetenv clears it for this test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "APP_ENV", "API_PORT", "FORECAST_FILE", "DB_PATH", "LOCATIONS_FILE",
		"FORECAST_PROVIDER", "FETCH_SCHEDULE", "AI_TEMPERATURE")

	cfg := Load()

	if cfg.IsProduction() {
		t.Error("IsProduction() = true without APP_ENV")
	}
	if cfg.GetAPIPort() != ":5000" {
		t.Errorf("GetAPIPort() = %q, want :5000", cfg.GetAPIPort())
	}
	if cfg.GetForecastFile() != "kayak_forecast.json" {
		t.Errorf("GetForecastFile() = %q", cfg.GetForecastFile())
	}
	if cfg.GetDBPath() != "data/kayak.db" {
		t.Errorf("GetDBPath() = %q", cfg.GetDBPath())
	}
	if cfg.GetLocationsFile() != "locations.json" {
		t.Errorf("GetLocationsFile() = %q", cfg.GetLocationsFile())
	}
	if cfg.GetForecastProvider() != "gemini" {
		t.Errorf("GetForecastProvider() = %q, want gemini", cfg.GetForecastProvider())
	}
	if cfg.GetFetchSchedule() != "" {
		t.Errorf("GetFetchSchedule() = %q, want empty", cfg.GetFetchSchedule())
	}
	if cfg.GetTemperature() != float32(0.7) {
		t.Errorf("GetTemperature() = %v, want 0.7", cfg.GetTemperature())
	}
}

func TestLoad_BadTemperature(t *testing.T) {
	t.Setenv("AI_TEMPERATURE", "warm")

	if got := Load().GetTemperature(); got != float32(0.7) {
		t.Errorf("GetTemperature() = %v, want 0.7", got)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_PORT", ":8080")
	t.Setenv("FORECAST_FILE", "/tmp/forecast.json")
	t.Setenv("FORECAST_PROVIDER", "noaa")
	t.Setenv("FETCH_SCHEDULE", "0 6 * * 4,5")
	t.Setenv("AI_TEMPERATURE", "0.2")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false")
	}
	if cfg.GetAPIPort() != ":8080" {
		t.Errorf("GetAPIPort() = %q", cfg.GetAPIPort())
	}
	if cfg.GetForecastFile() != "/tmp/forecast.json" {
		t.Errorf("GetForecastFile() = %q", cfg.GetForecastFile())
	}
	if cfg.GetForecastProvider() != "noaa" {
		t.Errorf("GetForecastProvider() = %q", cfg.GetForecastProvider())
	}
	if cfg.GetFetchSchedule() != "0 6 * * 4,5" {
		t.Errorf("GetFetchSchedule() = %q", cfg.GetFetchSchedule())
	}
	if cfg.GetTemperature() != float32(0.2) {
		t.Errorf("GetTemperature() = %v", cfg.GetTemperature())
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("KAYAK_TEST_SET", "value")

	if got := getenv("KAYAK_TEST_SET", "fallback"); got != "value" {
		t.Errorf("getenv() = %q, want value", got)
	}
	if got := getenv("KAYAK_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("getenv() = %q, want fallback", got)
	}
}

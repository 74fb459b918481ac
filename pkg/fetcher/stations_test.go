package fetcher

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadStations_JSON(t *testing.T) {
	path := writeFile(t, "locations.json", `{
  "locations": [
    {"name": "Rudee Inlet", "latitude": 36.831456, "longitude": -75.972988, "station_id": "8639348"},
    {"name": "Little Island", "latitude": 36.7, "longitude": -75.92, "tide_source": "worldtides", "worldtides_slug": "virginia-beach"}
  ]
}`)

	stations, err := LoadStations(path)
	if err != nil {
		t.Fatalf("LoadStations() error = %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("got %d stations, want 2", len(stations))
	}
	if stations[0].TideSource != TideSourceNOAA {
		t.Errorf("default tide source = %q, want %q", stations[0].TideSource, TideSourceNOAA)
	}
	if stations[0].StationID != "8639348" {
		t.Errorf("station_id = %q", stations[0].StationID)
	}
	if stations[1].WorldTidesSlug != "virginia-beach" {
		t.Errorf("worldtides_slug = %q", stations[1].WorldTidesSlug)
	}
	if stations[0].Location().String() != "America/New_York" {
		t.Errorf("default timezone = %s", stations[0].Location())
	}
}

func TestLoadStations_YAML(t *testing.T) {
	path := writeFile(t, "locations.yaml", `
locations:
  - name: Lynnhaven Inlet
    latitude: 36.9064
    longitude: -76.0892
    station_id: "8639348"
    timezone: UTC
`)

	stations, err := LoadStations(path)
	if err != nil {
		t.Fatalf("LoadStations() error = %v", err)
	}
	if len(stations) != 1 || stations[0].Name != "Lynnhaven Inlet" {
		t.Fatalf("stations = %+v", stations)
	}
	if stations[0].Location().String() != "UTC" {
		t.Errorf("timezone = %s, want UTC", stations[0].Location())
	}
}

func TestLoadStations_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown tide source", `{"locations": [{"name": "X", "tide_source": "tidesrus"}]}`},
		{"missing name", `{"locations": [{"latitude": 1}]}`},
		{"malformed", `{"locations": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadStations(writeFile(t, "locations.json", tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadStations(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

package store

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/shadowbane/kayak-forecast-map/pkg/models"
)

const validDoc = `{
  "report_generated_for": "Weekend of June 7, 2025",
  "locations": [
    {
      "name": "Rudee Inlet",
      "day": "Saturday",
      "coordinates": [36.831456, -75.972988],
      "color": "green",
      "rating": "good",
      "summary": "Calm morning",
      "hover_facts": {
        "high_tide": "6:12 AM",
        "low_tide": "12:30 PM",
        "wind_speed": "5-10 mph",
        "wind_direction": "SW",
        "water_temp": "68°F",
        "current_speed": "0.5 kt",
        "extra_notes": ["Boat traffic"]
      }
    }
  ]
}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"valid", validDoc, ""},
		{"not json", "Sure! Here is the forecast", "not valid JSON"},
		{"missing hover fact", strings.Replace(validDoc, `"water_temp": "68°F",`, "", 1), "schema"},
		{"bad day", strings.Replace(validDoc, `"Saturday"`, `"Monday"`, 1), "schema"},
		{"bad rating", strings.Replace(validDoc, `"good"`, `"great"`, 1), "schema"},
		{"latitude out of range", strings.Replace(validDoc, "36.831456", "136.8", 1), "schema"},
		{"missing locations", `{"report_generated_for": "x"}`, "schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.raw))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "kayak_forecast.json")

	doc, err := Decode([]byte(validDoc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if err := Write(path, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.ReportGeneratedFor != "Weekend of June 7, 2025" {
		t.Errorf("ReportGeneratedFor = %q", loaded.ReportGeneratedFor)
	}
	if len(loaded.Locations) != 1 || loaded.Locations[0].Day != models.Saturday {
		t.Fatalf("Locations = %+v", loaded.Locations)
	}
	if loaded.Locations[0].Coordinates.Lon() != -75.972988 {
		t.Errorf("lon = %v", loaded.Locations[0].Coordinates.Lon())
	}

	// the written file must still satisfy the schema
	raw, _ := os.ReadFile(path)
	if err := Validate(raw); err != nil {
		t.Errorf("written file fails schema: %v", err)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestWrite_WorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "kayak_forecast.json")

	doc, err := Decode([]byte(validDoc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if err := Write(path, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("forecast file mode = %o, want 644", perm)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_TolerantOfMissingFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.json")
	raw := `{"report_generated_for":"x","locations":[{"name":"A","day":"Sunday","coordinates":[36.9,-76.1]}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := doc.ByDay(models.Sunday); len(got) != 1 || got[0].HoverFacts.WindSpeed != "" {
		t.Errorf("ByDay(Sunday) = %+v", got)
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shadowbane/kayak-forecast-map/pkg/fetcher"
)

func TestBuildProvider(t *testing.T) {
	stations := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(stations, []byte(`{"locations": [{"name": "Rudee Inlet", "latitude": 36.83, "longitude": -75.97, "station_id": "8639348"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		settings providerSettings
		wantName string
		wantErr  bool
	}{
		{"openai", providerSettings{Provider: "openai", OpenAIKey: "sk-test"}, "openai", false},
		{"openai without key", providerSettings{Provider: "openai"}, "", true},
		{"gemini", providerSettings{Provider: "gemini", GeminiKey: "g-test"}, "gemini", false},
		{"gemini without key", providerSettings{Provider: "gemini"}, "", true},
		{"noaa", providerSettings{Provider: "noaa", LocationsFile: stations}, "noaa", false},
		{"noaa missing stations", providerSettings{Provider: "noaa", LocationsFile: filepath.Join(t.TempDir(), "x.json")}, "", true},
		{"unknown", providerSettings{Provider: "claude"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := buildProvider(tt.settings, nil)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildProvider() error = %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %s, want %s", p.Name(), tt.wantName)
			}
		})
	}

	p, _ := buildProvider(providerSettings{Provider: "noaa", LocationsFile: stations}, nil)
	if _, ok := p.(*fetcher.NOAAProvider); !ok {
		t.Errorf("noaa provider type = %T", p)
	}
}

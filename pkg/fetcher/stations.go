package fetcher

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const (
	TideSourceNOAA       = "noaa"
	TideSourceWorldTides = "worldtides"

	defaultTimezone = "America/New_York"
)

// Station is one kayaking spot the NOAA provider builds forecasts for
type Station struct {
	Name           string  `yaml:"name"`
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
	StationID      string  `yaml:"station_id"`
	TideSource     string  `yaml:"tide_source"`
	WorldTidesSlug string  `yaml:"worldtides_slug"`
	Timezone       string  `yaml:"timezone"`
}

// Location returns the station's time zone, defaulting to US Eastern
func (s Station) Location() *time.Location {
	name := s.Timezone
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type stationFile struct {
	Locations []Station `yaml:"locations"`
}

// LoadStations reads the station list. YAML is a superset of JSON, so the
// original locations.json format loads as is.
func LoadStations(path string) ([]Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stations file: %w", err)
	}

	var f stationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stations file: %w", err)
	}

	for i, st := range f.Locations {
		if st.Name == "" {
			return nil, fmt.Errorf("station %d has no name", i)
		}
		if st.TideSource == "" {
			f.Locations[i].TideSource = TideSourceNOAA
		}
		switch f.Locations[i].TideSource {
		case TideSourceNOAA, TideSourceWorldTides:
		default:
			return nil, fmt.Errorf("station %s: unknown tide source %q", st.Name, st.TideSource)
		}
	}

	return f.Locations, nil
}

package models

import (
	"errors"
	"fmt"
)

// Day is one of the two weekend days a forecast is generated for
type Day string

const (
	Saturday Day = "Saturday"
	Sunday   Day = "Sunday"
)

// Days lists the supported days in display order
var Days = []Day{Saturday, Sunday}

// ErrInvalidDay is returned by ParseDay for anything but the supported literals
var ErrInvalidDay = errors.New("invalid day")

// ParseDay accepts only the exact literals "Saturday" and "Sunday"
func ParseDay(s string) (Day, error) {
	switch Day(s) {
	case Saturday, Sunday:
		return Day(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// Rating is the qualitative kayaking-condition label
type Rating string

const (
	RatingGood Rating = "good"
	RatingOkay Rating = "okay"
	RatingBad  Rating = "bad"
)

// Color is the traffic-light color the forecast documents carry next to the rating
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// ColorFor returns the traffic-light color matching a rating, or "" when unknown
func ColorFor(r Rating) Color {
	switch r {
	case RatingGood:
		return ColorGreen
	case RatingOkay:
		return ColorYellow
	case RatingBad:
		return ColorRed
	}
	return ""
}

// Coordinates is a [latitude, longitude] pair, encoded as a JSON array
type Coordinates [2]float64

func (c Coordinates) Lat() float64 { return c[0] }
func (c Coordinates) Lon() float64 { return c[1] }

// Valid reports whether the pair is inside the lat/lon ranges
func (c Coordinates) Valid() bool {
	return c[0] >= -90 && c[0] <= 90 && c[1] >= -180 && c[1] <= 180
}

// HoverFacts are the structured details shown in a location popup
type HoverFacts struct {
	HighTide      string   `json:"high_tide"`
	LowTide       string   `json:"low_tide"`
	WindSpeed     string   `json:"wind_speed"`
	WindDirection string   `json:"wind_direction"`
	WaterTemp     string   `json:"water_temp"`
	CurrentSpeed  string   `json:"current_speed"`
	ExtraNotes    []string `json:"extra_notes"`
}

// Location is one kayaking spot forecast for one day
type Location struct {
	Name        string      `json:"name"`
	Day         Day         `json:"day"`
	Coordinates Coordinates `json:"coordinates"`
	Color       Color       `json:"color"`
	Rating      Rating      `json:"rating"`
	Summary     string      `json:"summary"`
	HoverFacts  HoverFacts  `json:"hover_facts"`
}

// ForecastDocument is the persisted output of one ingestion run
type ForecastDocument struct {
	ReportGeneratedFor string     `json:"report_generated_for"`
	Locations          []Location `json:"locations"`
}

// ByDay returns the locations whose day matches exactly, in document order
func (d *ForecastDocument) ByDay(day Day) []Location {
	if d == nil {
		return nil
	}
	return FilterByDay(d.Locations, day)
}

// FilterByDay keeps the records whose day matches exactly, preserving order
func FilterByDay(locations []Location, day Day) []Location {
	filtered := make([]Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Day == day {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

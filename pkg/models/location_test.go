package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDay(t *testing.T) {
	for _, s := range []string{"Saturday", "Sunday"} {
		d, err := ParseDay(s)
		if err != nil || string(d) != s {
			t.Errorf("ParseDay(%q) = %q, %v", s, d, err)
		}
	}

	for _, s := range []string{"Monday", "saturday", "SUNDAY", "", " Sunday"} {
		if _, err := ParseDay(s); !errors.Is(err, ErrInvalidDay) {
			t.Errorf("ParseDay(%q) error = %v, want ErrInvalidDay", s, err)
		}
	}
}

func TestFilterByDay_PreservesOrder(t *testing.T) {
	locs := []Location{
		{Name: "a", Day: Saturday},
		{Name: "b", Day: Sunday},
		{Name: "c", Day: Saturday},
		{Name: "d", Day: "saturday"},
		{Name: "e", Day: Saturday},
	}

	got := FilterByDay(locs, Saturday)
	want := []string{"a", "c", "e"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestForecastDocument_ByDayNil(t *testing.T) {
	var doc *ForecastDocument
	if got := doc.ByDay(Saturday); got != nil {
		t.Errorf("nil document ByDay = %v", got)
	}
}

func TestCoordinates(t *testing.T) {
	var loc Location
	if err := json.Unmarshal([]byte(`{"coordinates":[36.9,-76.2]}`), &loc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loc.Coordinates.Lat() != 36.9 || loc.Coordinates.Lon() != -76.2 {
		t.Errorf("Coordinates = %v", loc.Coordinates)
	}
	if !loc.Coordinates.Valid() {
		t.Error("expected valid coordinates")
	}
	if (Coordinates{91, 0}).Valid() || (Coordinates{0, -181}).Valid() {
		t.Error("out of range coordinates reported valid")
	}
}

func TestColorFor(t *testing.T) {
	if ColorFor(RatingGood) != ColorGreen || ColorFor(RatingOkay) != ColorYellow || ColorFor(RatingBad) != ColorRed {
		t.Error("unexpected rating color mapping")
	}
	if ColorFor("meh") != "" {
		t.Error("unknown rating should have no color")
	}
}

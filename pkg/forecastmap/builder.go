// Package forecastmap turns forecast locations into a Leaflet map with
// rating markers, wind arrows and a legend.
package forecastmap

import (
	"fmt"
	"html"

	"github.com/paulmach/orb"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	"github.com/shadowbane/kayak-forecast-map/pkg/wind"
)

const (
	DefaultZoom = 9
	// FallbackLat and FallbackLon center the map on the Virginia Beach area
	// when a day has no locations.
	FallbackLat = 36.9
	FallbackLon = -76.2
)

// Center returns the midpoint of the bounding box of the locations
func Center(locations []models.Location) LatLng {
	if len(locations) == 0 {
		return LatLng{FallbackLat, FallbackLon}
	}

	points := make(orb.MultiPoint, 0, len(locations))
	for _, loc := range locations {
		points = append(points, orb.Point{loc.Coordinates.Lon(), loc.Coordinates.Lat()})
	}

	c := points.Bound().Center()
	return LatLng{c.Lat(), c.Lon()}
}

// Build creates the map for a day. Locations for other days are ignored.
func Build(locations []models.Location, day models.Day) *Map {
	dayLocations := models.FilterByDay(locations, day)

	m := &Map{
		Center:   Center(dayLocations),
		Zoom:     DefaultZoom,
		Tiles:    osmTileURL,
		Overlays: []string{legendHTML},
	}

	// arrows go first so markers are drawn on top
	for _, loc := range dayLocations {
		facts := loc.HoverFacts
		arrow := wind.NewArrow(loc.Coordinates.Lat(), loc.Coordinates.Lon(), facts.WindDirection, facts.WindSpeed)
		end := LatLng{arrow.EndLat, arrow.EndLon}

		m.Layers = append(m.Layers,
			Polyline{
				Points:  []LatLng{{arrow.StartLat, arrow.StartLon}, end},
				Color:   arrow.Color,
				Weight:  3,
				Opacity: 0.7,
				Popup:   &Popup{HTML: windPopup(facts)},
			},
			CircleMarker{
				Center:      end,
				Radius:      4,
				Color:       arrow.Color,
				Fill:        true,
				FillColor:   arrow.Color,
				FillOpacity: 0.8,
				Weight:      0,
			},
		)
	}

	for _, loc := range dayLocations {
		color := MarkerColor(loc)
		m.Layers = append(m.Layers, CircleMarker{
			Center:      LatLng{loc.Coordinates.Lat(), loc.Coordinates.Lon()},
			Radius:      15,
			Color:       color,
			Fill:        true,
			FillColor:   color,
			FillOpacity: 0.8,
			Weight:      2,
			Popup:       &Popup{HTML: renderPopup(loc, color), MaxWidth: popupMaxWidth},
			Tooltip:     tooltipText(loc),
		})
	}

	return m
}

func windPopup(facts models.HoverFacts) string {
	return fmt.Sprintf("Wind: %s %s", html.EscapeString(facts.WindSpeed), html.EscapeString(facts.WindDirection))
}

package forecastmap

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	"github.com/shadowbane/kayak-forecast-map/pkg/wind"
)

// GeoJSON returns the day's locations as a FeatureCollection of points
func GeoJSON(locations []models.Location, day models.Day) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, loc := range models.FilterByDay(locations, day) {
		arrow := wind.NewArrow(loc.Coordinates.Lat(), loc.Coordinates.Lon(),
			loc.HoverFacts.WindDirection, loc.HoverFacts.WindSpeed)

		f := geojson.NewFeature(orb.Point{loc.Coordinates.Lon(), loc.Coordinates.Lat()})
		f.Properties["name"] = loc.Name
		f.Properties["day"] = string(loc.Day)
		f.Properties["rating"] = string(loc.Rating)
		f.Properties["marker_color"] = MarkerColor(loc)
		f.Properties["summary"] = loc.Summary
		f.Properties["wind_speed_mph"] = arrow.Speed
		f.Properties["wind_bearing"] = arrow.Bearing
		f.Properties["wind_color"] = arrow.Color
		f.Properties["hover_facts"] = loc.HoverFacts

		fc.Append(f)
	}

	return fc
}

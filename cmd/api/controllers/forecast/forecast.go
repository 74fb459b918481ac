package forecast

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/kayak-forecast-map/pkg/application"
	"github.com/shadowbane/kayak-forecast-map/pkg/forecastmap"
	"github.com/shadowbane/kayak-forecast-map/pkg/metrics"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	controllertraits "github.com/shadowbane/kayak-forecast-map/pkg/traits/controller-traits"
	traits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
	"go.uber.org/zap"
)

// LocationsResponse is the body of GET /api/locations/:day
type LocationsResponse struct {
	Day       models.Day        `json:"day"`
	Count     int               `json:"count"`
	Locations []models.Location `json:"locations"`
}

// parseDay reads the :day parameter and writes a 400 when it is not a weekend day
func parseDay(w http.ResponseWriter, p httprouter.Params) (models.Day, bool) {
	day, err := models.ParseDay(p.ByName("day"))
	if err != nil {
		traits.WriteErrorResponse(w, http.StatusBadRequest, "Invalid day")
		return "", false
	}
	return day, true
}

// Index renders the landing page
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := controllertraits.IndexPageData{
			Timezone: controllertraits.ParseTimezone(r.URL.Query().Get("timezone")),
		}
		if app.Forecast != nil {
			data.ReportGeneratedFor = app.Forecast.ReportGeneratedFor
			data.Locations = app.Forecast.Locations
		}

		if app.DB != nil {
			var run models.ForecastRun
			err := app.DB.Where("status = ?", models.RunStatusSaved).
				Order("created_at DESC").
				Limit(1).
				Find(&run).Error
			if err != nil {
				zap.S().Warnf("Failed to look up last forecast run: %v", err)
			} else if run.ID != "" {
				data.LastUpdated = &run.CreatedAt
			}
		}

		controllertraits.WriteHTMLResponse(w, controllertraits.RenderIndexPage(data))
	}
}

// Map returns the day's map as an embeddable iframe
func Map(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		day, ok := parseDay(w, p)
		if !ok {
			return
		}

		m := forecastmap.Build(app.Forecast.ByDay(day), day)
		metrics.MapRenders.WithLabelValues(string(day)).Inc()

		controllertraits.WriteJSONResponse(w, map[string]string{
			"map_html": m.Embed(),
		})
	}
}

// Locations returns the day's raw location records
func Locations(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		day, ok := parseDay(w, p)
		if !ok {
			return
		}

		locations := app.Forecast.ByDay(day)
		if locations == nil {
			locations = []models.Location{}
		}

		controllertraits.WriteJSONResponse(w, LocationsResponse{
			Day:       day,
			Count:     len(locations),
			Locations: locations,
		})
	}
}

// GeoJSON returns the day's locations as a FeatureCollection
func GeoJSON(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		day, ok := parseDay(w, p)
		if !ok {
			return
		}

		var locations []models.Location
		if app.Forecast != nil {
			locations = app.Forecast.Locations
		}

		controllertraits.WriteGeoJSONResponse(w, forecastmap.GeoJSON(locations, day))
	}
}

// Healthz reports whether a forecast document is loaded
func Healthz(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		if app.Forecast == nil {
			traits.WriteErrorResponse(w, http.StatusServiceUnavailable, "Forecast not loaded")
			return
		}

		controllertraits.WriteJSONResponse(w, map[string]interface{}{
			"status":               "ok",
			"report_generated_for": app.Forecast.ReportGeneratedFor,
			"locations":            len(app.Forecast.Locations),
		})
	}
}

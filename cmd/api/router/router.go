package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/kayak-forecast-map/cmd/api/controllers/forecast"
	"github.com/shadowbane/kayak-forecast-map/cmd/api/controllers/runs"
	"github.com/shadowbane/kayak-forecast-map/cmd/api/controllers/tides"
	"github.com/shadowbane/kayak-forecast-map/pkg/application"
	"github.com/shadowbane/kayak-forecast-map/pkg/metrics"
)

func Api(app *application.Application) *httprouter.Router {
	mux := httprouter.New()

	route := func(path string, h httprouter.Handle) {
		mux.GET(path, metrics.Instrument(path, h))
	}

	// Forecast map
	route("/", forecast.Index(app))
	route("/map/:day", forecast.Map(app))
	route("/api/locations/:day", forecast.Locations(app))
	route("/api/geojson/:day", forecast.GeoJSON(app))

	// Ingestion history and archived tides
	route("/api/runs", runs.Index(app))
	route("/api/tides", tides.Index(app))
	route("/api/tides/:station", tides.ByStation(app))

	route("/healthz", forecast.Healthz(app))
	mux.Handler(http.MethodGet, "/metrics", metrics.Handler())

	return mux
}

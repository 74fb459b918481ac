package metrics

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kayak_forecast_requests_total",
			Help: "Total requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	MapRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kayak_forecast_map_renders_total",
			Help: "Maps rendered per weekend day.",
		},
		[]string{"day"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, MapRenders)
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument counts requests to a route. The route pattern is used as the label
// so path parameters do not blow up cardinality.
func Instrument(route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rw, r, ps)
		RequestCounter.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

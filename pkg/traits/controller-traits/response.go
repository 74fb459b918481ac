package controllertraits

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WriteHTMLResponse writes an HTML response
func WriteHTMLResponse(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(content))
}

// WriteJSONResponse writes v as a bare JSON body with status 200
func WriteJSONResponse(w http.ResponseWriter, v interface{}) {
	writeJSON(w, "application/json", v)
}

// WriteGeoJSONResponse writes v with the GeoJSON media type
func WriteGeoJSONResponse(w http.ResponseWriter, v interface{}) {
	writeJSON(w, "application/geo+json", v)
}

func writeJSON(w http.ResponseWriter, contentType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		zap.S().Errorf("Failed to encode response: %v", err)
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

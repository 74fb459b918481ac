package tides

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/kayak-forecast-map/pkg/application"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	controllertraits "github.com/shadowbane/kayak-forecast-map/pkg/traits/controller-traits"
	traits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
)

// TideResponse is the response DTO for archived tide predictions
type TideResponse struct {
	ID        string    `json:"id"`
	StationID string    `json:"station_id"`
	Location  string    `json:"location"`
	Date      string    `json:"date"`
	TideType  string    `json:"tide_type"`
	TideTime  time.Time `json:"tide_time"`
	HeightFt  float64   `json:"height_ft"`
	CreatedAt time.Time `json:"created_at"`
}

// toResponse converts TideData to TideResponse with optional timezone formatting
func toResponse(tide models.TideData, timezone string) TideResponse {
	return TideResponse{
		ID:        tide.ID,
		StationID: tide.StationID,
		Location:  tide.Location,
		Date:      tide.Date.Format("2006-01-02"),
		TideType:  string(tide.TideType),
		TideTime:  traits.FormatTimeWithTimezone(tide.TideTime, timezone),
		HeightFt:  tide.HeightFt,
		CreatedAt: traits.FormatTimeWithTimezone(tide.CreatedAt, timezone),
	}
}

// Index lists archived tide predictions of all stations
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		list(app, w, r, "")
	}
}

// ByStation lists archived tide predictions of one station
func ByStation(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		list(app, w, r, p.ByName("station"))
	}
}

func list(app *application.Application, w http.ResponseWriter, r *http.Request, station string) {
	// Parse pagination parameters
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	timezone := controllertraits.ParseTimezone(r.URL.Query().Get("timezone"))

	// Set defaults
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	var tides []models.TideData
	var total int64

	query := app.DB.Model(&models.TideData{})

	if station != "" {
		query = query.Where("station_id = ?", station)
	}

	query.Count(&total)

	result := query.Order("tide_time ASC").Offset(offset).Limit(limit).Find(&tides)
	if result.Error != nil {
		traits.WriteErrorResponse(w, http.StatusInternalServerError, result.Error.Error())
		return
	}

	responses := make([]TideResponse, len(tides))
	for i, tide := range tides {
		responses[i] = toResponse(tide, timezone)
	}

	// Calculate total pages
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	pagination := traits.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	traits.WritePaginatedResponse(w, responses, pagination)
}

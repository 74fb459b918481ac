package runs

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

// RunResponse is the response DTO for forecast ingestion runs
type RunResponse struct {
	ID                 string    `json:"id"`
	Provider           string    `json:"provider"`
	Status             string    `json:"status"`
	ReportGeneratedFor string    `json:"report_generated_for"`
	LocationCount      int       `json:"location_count"`
	Error              string    `json:"error,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// toResponse converts ForecastRun to RunResponse with optional timezone formatting
func toResponse(run models.ForecastRun, timezone string) RunResponse {
	return RunResponse{
		ID:                 run.ID,
		Provider:           run.Provider,
		Status:             string(run.Status),
		ReportGeneratedFor: run.ReportGeneratedFor,
		LocationCount:      run.LocationCount,
		Error:              run.Error,
		CreatedAt:          traits.FormatTimeWithTimezone(run.CreatedAt, timezone),
	}
}

// Index lists ingestion runs, newest first. ?status= filters by outcome.
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		// Parse pagination parameters
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		timezone := controllertraits.ParseTimezone(r.URL.Query().Get("timezone"))
		status := r.URL.Query().Get("status")

		// Set defaults
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		offset := (page - 1) * limit

		var runs []models.ForecastRun
		var total int64

		query := app.DB.Model(&models.ForecastRun{})

		switch models.RunStatus(status) {
		case "":
		case models.RunStatusSaved, models.RunStatusRejected, models.RunStatusFailed:
			query = query.Where("status = ?", status)
		default:
			traits.WriteErrorResponse(w, http.StatusBadRequest, "Invalid status")
			return
		}

		query.Count(&total)

		result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&runs)
		if result.Error != nil {
			traits.WriteErrorResponse(w, http.StatusInternalServerError, result.Error.Error())
			return
		}

		responses := make([]RunResponse, len(runs))
		for i, run := range runs {
			responses[i] = toResponse(run, timezone)
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
}

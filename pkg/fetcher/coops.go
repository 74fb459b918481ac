package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shadowbane/kayak-forecast-map/pkg/models"
)

// ErrNoTideData is returned when a tide source has nothing for the requested dates
var ErrNoTideData = errors.New("no tide data")

// TideSource returns high/low tide predictions for a station between two dates (inclusive)
type TideSource interface {
	Predictions(ctx context.Context, st Station, begin, end time.Time) ([]models.TideData, error)
}

// COOPSClient talks to the NOAA CO-OPS data getter
type COOPSClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCOOPSClient creates a NOAA tides and currents client
func NewCOOPSClient() *COOPSClient {
	return &COOPSClient{
		baseURL: "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type coopsError struct {
	Message string `json:"message"`
}

type predictionsResponse struct {
	Predictions []struct {
		Time   string `json:"t"`
		Height string `json:"v"`
		Type   string `json:"type"` // "H" or "L"
	} `json:"predictions"`
	Error *coopsError `json:"error"`
}

type observationsResponse struct {
	Metadata struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"metadata"`
	Data []struct {
		Time  string `json:"t"`
		Value string `json:"v"`
	} `json:"data"`
	Error *coopsError `json:"error"`
}

// Predictions implements TideSource using hilo predictions relative to MLLW, in feet
func (c *COOPSClient) Predictions(ctx context.Context, st Station, begin, end time.Time) ([]models.TideData, error) {
	params := url.Values{}
	params.Add("product", "predictions")
	params.Add("application", "kayak_forecast_map")
	params.Add("begin_date", begin.Format("20060102"))
	params.Add("end_date", end.Format("20060102"))
	params.Add("datum", "MLLW")
	params.Add("station", st.StationID)
	params.Add("time_zone", "lst_ldt")
	params.Add("units", "english")
	params.Add("interval", "hilo")
	params.Add("format", "json")

	var resp predictionsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil && len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTideData, resp.Error.Message)
	}

	loc := st.Location()
	tides := make([]models.TideData, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		tideTime, err := time.ParseInLocation("2006-01-02 15:04", p.Time, loc)
		if err != nil {
			continue
		}
		height, err := strconv.ParseFloat(p.Height, 64)
		if err != nil {
			continue
		}

		tideType := models.TideTypeLow
		if p.Type == "H" {
			tideType = models.TideTypeHigh
		}

		tides = append(tides, models.TideData{
			StationID: st.StationID,
			Location:  st.Name,
			Date:      time.Date(tideTime.Year(), tideTime.Month(), tideTime.Day(), 0, 0, 0, 0, loc),
			TideType:  tideType,
			TideTime:  tideTime,
			HeightFt:  height,
		})
	}

	if len(tides) == 0 {
		return nil, ErrNoTideData
	}
	return tides, nil
}

// WaterTemperature averages the water temperature readings (°F) of the last 24 hours.
// Water temperature is observed, not predicted, so recent readings stand in for the weekend.
func (c *COOPSClient) WaterTemperature(ctx context.Context, stationID string) (float64, error) {
	params := url.Values{}
	params.Add("product", "water_temperature")
	params.Add("application", "kayak_forecast_map")
	params.Add("range", "24")
	params.Add("station", stationID)
	params.Add("time_zone", "lst_ldt")
	params.Add("units", "english")
	params.Add("interval", "6")
	params.Add("format", "json")

	var resp observationsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return 0, err
	}
	if resp.Error != nil && len(resp.Data) == 0 {
		return 0, fmt.Errorf("no water temperature for %s: %s", stationID, resp.Error.Message)
	}

	var sum float64
	count := 0
	for _, d := range resp.Data {
		v, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("no water temperature readings for %s", stationID)
	}
	return sum / float64(count), nil
}

func (c *COOPSClient) get(ctx context.Context, params url.Values, out interface{}) error {
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", params.Get("product"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d for %s", resp.StatusCode, params.Get("product"))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultUserAgent = "KayakForecastMap/1.0 (github.com/shadowbane/kayak-forecast-map)"

// ForecastPeriod is one named period of a weather.gov forecast ("Saturday", "Saturday Night")
type ForecastPeriod struct {
	Name             string `json:"name"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	IsDaytime        bool   `json:"isDaytime"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}

// WeatherGovClient talks to api.weather.gov
type WeatherGovClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewWeatherGovClient creates a weather.gov client. An empty userAgent uses the default.
func NewWeatherGovClient(userAgent string) *WeatherGovClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &WeatherGovClient{
		baseURL: "https://api.weather.gov",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: userAgent,
	}
}

type pointResponse struct {
	Properties struct {
		GridID   string `json:"gridId"`
		GridX    int    `json:"gridX"`
		GridY    int    `json:"gridY"`
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// GetForecastPeriods resolves the grid point for lat/lon and returns its forecast periods
func (c *WeatherGovClient) GetForecastPeriods(ctx context.Context, lat, lon float64) ([]ForecastPeriod, error) {
	var point pointResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon), &point); err != nil {
		return nil, fmt.Errorf("failed to fetch points for %.4f, %.4f: %w", lat, lon, err)
	}

	forecastURL := point.Properties.Forecast
	if forecastURL == "" {
		if point.Properties.GridID == "" {
			return nil, fmt.Errorf("no grid point for %.4f, %.4f", lat, lon)
		}
		forecastURL = fmt.Sprintf("%s/gridpoints/%s/%d,%d/forecast",
			c.baseURL, point.Properties.GridID, point.Properties.GridX, point.Properties.GridY)
	}

	var forecast forecastResponse
	if err := c.getJSON(ctx, forecastURL, &forecast); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	return forecast.Properties.Periods, nil
}

func (c *WeatherGovClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// PeriodFor returns the first period starting on the given date (YYYY-MM-DD prefix of
// startTime), which is the daytime period for future days.
func PeriodFor(periods []ForecastPeriod, date time.Time) (ForecastPeriod, bool) {
	day := date.Format("2006-01-02")
	for _, p := range periods {
		if strings.HasPrefix(p.StartTime, day) {
			return p, true
		}
	}
	return ForecastPeriod{}, false
}

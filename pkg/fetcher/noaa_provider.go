package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	"github.com/shadowbane/kayak-forecast-map/pkg/wind"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const notAvailable = "N/A"

// NOAAProvider builds the forecast document from weather.gov and tide data
type NOAAProvider struct {
	stations   []Station
	weather    *WeatherGovClient
	coops      *COOPSClient
	worldtides *WorldTidesScraper
	db         *gorm.DB
	now        func() time.Time
}

// NewNOAAProvider creates a NOAA provider. db may be nil, in which case tide
// predictions are not archived.
func NewNOAAProvider(stations []Station, weather *WeatherGovClient, coops *COOPSClient, db *gorm.DB) *NOAAProvider {
	return &NOAAProvider{
		stations:   stations,
		weather:    weather,
		coops:      coops,
		worldtides: NewWorldTidesScraper(),
		db:         db,
		now:        time.Now,
	}
}

func (p *NOAAProvider) Name() string {
	return "noaa"
}

// NextWeekend returns the next Saturday strictly after now and the Sunday after it
func NextWeekend(now time.Time) (time.Time, time.Time) {
	daysAhead := int(time.Saturday) - int(now.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	sat := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, 0, 0, 0, 0, now.Location())
	return sat, sat.AddDate(0, 0, 1)
}

// RatingForWind rates a day from its wind speed using the same breakpoints as the arrows
func RatingForWind(speed int) models.Rating {
	switch {
	case speed > 14:
		return models.RatingBad
	case speed > 11:
		return models.RatingOkay
	default:
		return models.RatingGood
	}
}

// Fetch implements ForecastProvider. A station whose weather lookup fails is
// skipped; missing tide or temperature data degrades to "N/A".
func (p *NOAAProvider) Fetch(ctx context.Context) ([]byte, error) {
	sat, sun := NextWeekend(p.now())
	days := []struct {
		day  models.Day
		date time.Time
	}{
		{models.Saturday, sat},
		{models.Sunday, sun},
	}

	doc := models.ForecastDocument{
		ReportGeneratedFor: fmt.Sprintf("%s - %s",
			sat.Format("Monday, January 2, 2006"), sun.Format("Monday, January 2, 2006")),
		Locations: make([]models.Location, 0, len(p.stations)*2),
	}

	for _, st := range p.stations {
		zap.S().Infof("Fetching forecast for %s...", st.Name)

		periods, err := p.weather.GetForecastPeriods(ctx, st.Latitude, st.Longitude)
		if err != nil {
			zap.S().Errorf("Failed to fetch weather for %s: %v", st.Name, err)
			continue
		}

		tides := p.tides(ctx, st, sat, sun)

		waterTemp := notAvailable
		if st.StationID != "" {
			if temp, err := p.coops.WaterTemperature(ctx, st.StationID); err != nil {
				zap.S().Warnf("No water temperature for %s: %v", st.Name, err)
			} else {
				waterTemp = fmt.Sprintf("%.1f°F", temp)
			}
		}

		for _, d := range days {
			period, ok := PeriodFor(periods, d.date)
			if !ok {
				zap.S().Warnf("No %s forecast period for %s", d.day, st.Name)
				continue
			}
			doc.Locations = append(doc.Locations, buildLocation(st, d.day, d.date, period, tides, waterTemp))
		}
	}

	if len(doc.Locations) == 0 {
		return nil, fmt.Errorf("no forecasts could be fetched for %d stations", len(p.stations))
	}

	return json.Marshal(doc)
}

// tides returns the station's predictions for the weekend
func (p *NOAAProvider) tides(ctx context.Context, st Station, begin, end time.Time) []models.TideData {
	if st.TideSource == TideSourceWorldTides {
		return p.worldTides(ctx, st, begin, end)
	}
	if st.StationID == "" {
		return nil
	}
	return p.predictions(ctx, p.coops, st, begin, end)
}

// worldTides archives the table worldtides.info shows today and uses it when it
// covers the requested days. Otherwise the spot's CO-OPS station, if any,
// supplies the weekend predictions.
func (p *NOAAProvider) worldTides(ctx context.Context, st Station, begin, end time.Time) []models.TideData {
	table, err := p.worldtides.Table(ctx, st)
	if err != nil {
		zap.S().Warnf("No worldtides table for %s: %v", st.Name, err)
	} else {
		p.archive(st, table)
		if in := tidesBetween(table, begin, end, st.Location()); len(in) > 0 {
			return in
		}
	}

	if st.StationID == "" {
		zap.S().Warnf("No tide predictions for %s: worldtides does not cover %s", st.Name, begin.Format("2006-01-02"))
		return nil
	}

	zap.S().Infof("Using CO-OPS station %s for %s tides", st.StationID, st.Name)
	return p.predictions(ctx, p.coops, st, begin, end)
}

// predictions fetches from a tide source and archives the result
func (p *NOAAProvider) predictions(ctx context.Context, source TideSource, st Station, begin, end time.Time) []models.TideData {
	tides, err := source.Predictions(ctx, st, begin, end)
	if err != nil {
		zap.S().Warnf("No tide predictions for %s: %v", st.Name, err)
		return nil
	}

	p.archive(st, tides)
	return tides
}

func (p *NOAAProvider) archive(st Station, tides []models.TideData) {
	if p.db == nil {
		return
	}
	if _, err := StoreTides(p.db, tides); err != nil {
		zap.S().Errorf("Failed to store tide data for %s: %v", st.Name, err)
	}
}

func buildLocation(st Station, day models.Day, date time.Time, period ForecastPeriod, tides []models.TideData, waterTemp string) models.Location {
	rating := RatingForWind(wind.ParseSpeed(period.WindSpeed))

	summary := period.DetailedForecast
	if summary == "" {
		summary = period.ShortForecast
	}

	notes := []string{}
	if period.ShortForecast != "" {
		notes = append(notes, period.ShortForecast)
	}
	if period.TemperatureUnit != "" {
		notes = append(notes, fmt.Sprintf("Air temperature %d°%s", period.Temperature, period.TemperatureUnit))
	}
	if st.StationID != "" {
		notes = append(notes, fmt.Sprintf("Tide station %s", st.StationID))
	}

	dayTides := tidesOn(tides, date)

	return models.Location{
		Name:        st.Name,
		Day:         day,
		Coordinates: models.Coordinates{st.Latitude, st.Longitude},
		Color:       models.ColorFor(rating),
		Rating:      rating,
		Summary:     summary,
		HoverFacts: models.HoverFacts{
			HighTide:      formatTides(dayTides, models.TideTypeHigh),
			LowTide:       formatTides(dayTides, models.TideTypeLow),
			WindSpeed:     period.WindSpeed,
			WindDirection: period.WindDirection,
			WaterTemp:     waterTemp,
			CurrentSpeed:  notAvailable,
			ExtraNotes:    notes,
		},
	}
}

func tidesOn(tides []models.TideData, date time.Time) []models.TideData {
	var out []models.TideData
	for _, t := range tides {
		y1, m1, d1 := t.TideTime.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, t)
		}
	}
	return out
}

// formatTides renders the tides of one type as "6:12 AM (4.1 ft), 6:40 PM (3.9 ft)"
func formatTides(tides []models.TideData, tideType models.TideType) string {
	var parts []string
	for _, t := range tides {
		if t.TideType != tideType {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%.1f ft)", t.TideTime.Format("3:04 PM"), t.HeightFt))
	}
	if len(parts) == 0 {
		return notAvailable
	}
	return strings.Join(parts, ", ")
}

// StoreTides replaces the archived predictions for each station and date in a transaction
func StoreTides(db *gorm.DB, tides []models.TideData) (int, error) {
	if len(tides) == 0 {
		return 0, nil
	}

	count := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		cleared := map[string]bool{}
		for _, t := range tides {
			key := t.StationID + "|" + t.Date.Format("2006-01-02")
			if !cleared[key] {
				if err := tx.Where("station_id = ? AND date = ?", t.StationID, t.Date).
					Delete(&models.TideData{}).Error; err != nil {
					return fmt.Errorf("failed to delete existing tide data: %w", err)
				}
				cleared[key] = true
			}
		}

		for _, t := range tides {
			data := t
			if err := tx.Create(&data).Error; err != nil {
				return fmt.Errorf("failed to insert tide data: %w", err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.S().Infof("Synced %d tide data entries for %s", count, tides[0].Location)
	return count, nil
}

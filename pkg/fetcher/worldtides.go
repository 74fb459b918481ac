package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	"go.uber.org/zap"
)

// WorldTidesURL is the base URL of the worldtides.info station pages
const WorldTidesURL = "https://www.worldtides.info/tidestations"

var (
	tideDateRegex = regexp.MustCompile(`(\w+)\s+(\w+)\s+(\d+),\s+(\d+)`)
	heightRegex   = regexp.MustCompile(`(-?[\d.]+)\s*m\s*\((-?[\d.]+)\s*ft\)`)
)

// WorldTidesScraper scrapes the daily tide table from worldtides.info. The page
// only shows the current day, so a weekend range fetched ahead of time is never
// covered by it.
type WorldTidesScraper struct {
	baseURL    string
	httpClient *http.Client
}

// NewWorldTidesScraper creates a new WorldTidesScraper instance
func NewWorldTidesScraper() *WorldTidesScraper {
	return &WorldTidesScraper{
		baseURL: WorldTidesURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Predictions implements TideSource. Only entries dated between begin and end
// are returned; a page for another day yields ErrNoTideData.
func (s *WorldTidesScraper) Predictions(ctx context.Context, st Station, begin, end time.Time) ([]models.TideData, error) {
	tides, err := s.Table(ctx, st)
	if err != nil {
		return nil, err
	}

	in := tidesBetween(tides, begin, end, st.Location())
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: worldtides shows %s only", ErrNoTideData, tides[0].Date.Format("2006-01-02"))
	}
	return in, nil
}

// Table scrapes the tide table for whatever day the station page currently shows
func (s *WorldTidesScraper) Table(ctx context.Context, st Station) ([]models.TideData, error) {
	if st.WorldTidesSlug == "" {
		return nil, fmt.Errorf("station %s has no worldtides slug", st.Name)
	}

	pageURL := fmt.Sprintf("%s/%s", s.baseURL, st.WorldTidesSlug)
	zap.S().Debugf("Fetching tide data from %s", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tide data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("worldtides.info returned status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	loc := st.Location()

	// Format: "Tide Times for Virginia Beach: Saturday June 7, 2025 (EDT)"
	dateText := ""
	doc.Find("div").Each(func(i int, sel *goquery.Selection) {
		text := sel.Text()
		if strings.Contains(text, "Tide Times for") {
			dateText = text
		}
	})

	if dateText == "" {
		return nil, fmt.Errorf("could not find tide date header")
	}

	date, err := parseTideDate(dateText, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tide date: %w", err)
	}

	tides := make([]models.TideData, 0)

	doc.Find("table.table-bordered tr").Each(func(i int, sel *goquery.Selection) {
		// Skip header row
		if i == 0 {
			return
		}

		cols := sel.Find("td")
		if cols.Length() != 3 {
			return
		}

		tideTypeStr := strings.ToLower(strings.TrimSpace(cols.Eq(0).Text()))
		timeStr := strings.TrimSpace(cols.Eq(1).Text())
		heightStr := strings.TrimSpace(cols.Eq(2).Text())

		var tideType models.TideType
		switch {
		case strings.Contains(tideTypeStr, "high"):
			tideType = models.TideTypeHigh
		case strings.Contains(tideTypeStr, "low"):
			tideType = models.TideTypeLow
		default:
			zap.S().Warnf("Unknown tide type: %s", tideTypeStr)
			return
		}

		tideTime, err := parseClock(date, timeStr)
		if err != nil {
			zap.S().Warnf("Failed to parse tide time '%s': %v", timeStr, err)
			return
		}

		heightFt, err := parseHeightFt(heightStr)
		if err != nil {
			zap.S().Warnf("Failed to parse tide height '%s': %v", heightStr, err)
			return
		}

		tides = append(tides, models.TideData{
			StationID: st.WorldTidesSlug,
			Location:  st.Name,
			Date:      date,
			TideType:  tideType,
			TideTime:  tideTime,
			HeightFt:  heightFt,
		})
	})

	if len(tides) == 0 {
		return nil, fmt.Errorf("%w: empty tide table", ErrNoTideData)
	}

	zap.S().Infof("Scraped %d tide entries for %s on %s", len(tides), st.Name, date.Format("2006-01-02"))
	return tides, nil
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// tidesBetween keeps the entries whose date falls within [begin, end], by calendar day
func tidesBetween(tides []models.TideData, begin, end time.Time, loc *time.Location) []models.TideData {
	from, to := dayStart(begin, loc), dayStart(end, loc)

	var out []models.TideData
	for _, t := range tides {
		d := dayStart(t.Date, loc)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// parseTideDate parses the date from text like "Tide Times for X: Saturday June 7, 2025 (EDT)"
func parseTideDate(text string, loc *time.Location) (time.Time, error) {
	if i := strings.Index(text, ":"); i >= 0 {
		text = text[i+1:]
	}
	matches := tideDateRegex.FindStringSubmatch(text)
	if len(matches) < 5 {
		return time.Time{}, fmt.Errorf("could not extract date from: %s", text)
	}

	dateStr := fmt.Sprintf("%s %s, %s", matches[2], matches[3], matches[4])
	date, err := time.ParseInLocation("January 2, 2006", dateStr, loc)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// parseClock combines a "HH:MM" string with the date
func parseClock(date time.Time, timeStr string) (time.Time, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// parseHeightFt parses "1.1 m (3.6 ft)" and returns the feet value
func parseHeightFt(heightStr string) (float64, error) {
	matches := heightRegex.FindStringSubmatch(heightStr)
	if len(matches) < 3 {
		return 0, fmt.Errorf("could not parse height: %s", heightStr)
	}
	return strconv.ParseFloat(matches[2], 64)
}

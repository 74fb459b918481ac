package controllertraits

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shadowbane/kayak-forecast-map/pkg/forecastmap"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	basetraits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
)

// GetRatingIcon returns an emoji for the kayaking rating
func GetRatingIcon(rating models.Rating) string {
	switch rating {
	case models.RatingGood:
		return "🛶"
	case models.RatingOkay:
		return "⚠️"
	case models.RatingBad:
		return "🌊"
	default:
		return "❔"
	}
}

// formatCardTime formats time for card display in Y-m-d H:i format
func formatCardTime(t time.Time, timezone string) string {
	formatted := basetraits.FormatTimeWithTimezone(t, timezone)
	return formatted.Format("2006-01-02 15:04")
}

// RenderLocationCard renders one location's forecast as an HTML card for the index list
func RenderLocationCard(loc models.Location) string {
	color := forecastmap.MarkerColor(loc)
	facts := loc.HoverFacts

	notes := ""
	if len(facts.ExtraNotes) > 0 {
		escaped := make([]string, len(facts.ExtraNotes))
		for i, n := range facts.ExtraNotes {
			escaped[i] = html.EscapeString(n)
		}
		notes = fmt.Sprintf(`
  <div style="font-size:11px;color:#64748b;margin-top:6px;">%s</div>`, strings.Join(escaped, " • "))
	}

	return fmt.Sprintf(`<div class="card" style="border:1px solid #e5e7eb;border-left:6px solid %s;border-radius:12px;padding:12px;background:#f8fafc;">
  <div style="display:flex;align-items:center;gap:8px;">
    <span style="font-size:28px;">%s</span>
    <div>
      <div style="font-size:16px;font-weight:600;color:#1e293b;">%s</div>
      <div style="font-size:12px;font-weight:600;color:%s;text-transform:uppercase;">%s</div>
    </div>
  </div>
  <div style="font-size:12px;color:#334155;margin-top:8px;line-height:1.5;">%s</div>
  <div style="display:flex;gap:16px;margin-top:8px;font-size:11px;color:#334155;">
    <div><div style="font-size:9px;color:#94a3b8;text-transform:uppercase;">Wind</div>%s %s</div>
    <div><div style="font-size:9px;color:#94a3b8;text-transform:uppercase;">High Tide</div>%s</div>
    <div><div style="font-size:9px;color:#94a3b8;text-transform:uppercase;">Water</div>%s</div>
  </div>%s
</div>`,
		color,
		GetRatingIcon(loc.Rating),
		html.EscapeString(loc.Name),
		color,
		html.EscapeString(string(loc.Rating)),
		html.EscapeString(loc.Summary),
		html.EscapeString(facts.WindSpeed),
		html.EscapeString(facts.WindDirection),
		html.EscapeString(facts.HighTide),
		html.EscapeString(facts.WaterTemp),
		notes,
	)
}

package forecastmap

import (
	"fmt"
	"html"
	"strings"

	"github.com/shadowbane/kayak-forecast-map/pkg/models"
)

const (
	fallbackColor = "#95a5a6"
	popupMaxWidth = 300
)

var markerColors = map[models.Color]string{
	models.ColorGreen:  "#2ecc71",
	models.ColorYellow: "#f39c12",
	models.ColorRed:    "#e74c3c",
}

// MarkerColor maps a location to its CSS marker color. The document's color
// field wins, then the color implied by the rating, then grey.
func MarkerColor(loc models.Location) string {
	if c, ok := markerColors[loc.Color]; ok {
		return c
	}
	if c, ok := markerColors[models.ColorFor(loc.Rating)]; ok {
		return c
	}
	return fallbackColor
}

// tooltipText returns "<name> - <RATING>"
func tooltipText(loc models.Location) string {
	return fmt.Sprintf("%s - %s", loc.Name, strings.ToUpper(string(loc.Rating)))
}

// renderPopup returns the HTML for a location's detail popup
func renderPopup(loc models.Location, color string) string {
	facts := loc.HoverFacts

	notes := make([]string, len(facts.ExtraNotes))
	for i, n := range facts.ExtraNotes {
		notes[i] = html.EscapeString(n)
	}

	return fmt.Sprintf(`
<div style="font-family: Arial; width: 280px;">
  <h4 style="margin: 0 0 8px 0; color: #2c3e50;">%s</h4>
  <p style="margin: 0 0 8px 0; font-weight: bold; color: #34495e;">
    Rating: <span style="color: %s;">●</span> %s
  </p>
  <hr style="margin: 8px 0;">
  <p style="margin: 0 0 8px 0; font-size: 12px; line-height: 1.5;">
    <strong>Summary:</strong><br>%s
  </p>
  <hr style="margin: 8px 0;">
  <table style="width: 100%%; font-size: 11px;">
    <tr><td><strong>High Tide:</strong></td><td>%s</td></tr>
    <tr><td><strong>Low Tide:</strong></td><td>%s</td></tr>
    <tr><td><strong>Wind:</strong></td><td>%s %s</td></tr>
    <tr><td><strong>Water Temp:</strong></td><td>%s</td></tr>
    <tr><td><strong>Current:</strong></td><td>%s</td></tr>
  </table>
  <hr style="margin: 8px 0;">
  <p style="margin: 0; font-size: 11px;">
    <strong>Notes:</strong><br>
    %s
  </p>
</div>`,
		html.EscapeString(loc.Name),
		color,
		html.EscapeString(strings.ToUpper(string(loc.Rating))),
		html.EscapeString(loc.Summary),
		html.EscapeString(facts.HighTide),
		html.EscapeString(facts.LowTide),
		html.EscapeString(facts.WindSpeed),
		html.EscapeString(facts.WindDirection),
		html.EscapeString(facts.WaterTemp),
		html.EscapeString(facts.CurrentSpeed),
		strings.Join(notes, " • "),
	)
}

// legendHTML is the fixed overlay explaining marker and arrow colors
const legendHTML = `<div id="legend" style="position: fixed;
            bottom: 50px; right: 10px; width: 240px; height: 200px;
            background-color: white; border:2px solid grey; z-index:9999;
            font-size:13px; padding: 10px; border-radius: 5px; box-shadow: 0 0 5px rgba(0,0,0,0.2); overflow-y: auto;">
    <p style="margin: 0 0 10px 0; font-weight: bold; border-bottom: 2px solid #ecf0f1; padding-bottom: 8px;">Forecast Rating</p>
    <p style="margin: 5px 0;"><span style="color: #2ecc71; font-size: 16px;">●</span> Good</p>
    <p style="margin: 5px 0;"><span style="color: #f39c12; font-size: 16px;">●</span> Okay</p>
    <p style="margin: 5px 0;"><span style="color: #e74c3c; font-size: 16px;">●</span> Bad</p>
    <p style="margin: 12px 0 8px 0; font-weight: bold; border-top: 2px solid #ecf0f1; border-bottom: 2px solid #ecf0f1; padding: 8px 0;">Wind Speed</p>
    <p style="margin: 5px 0;"><span style="color: #3498db; font-size: 14px;">━→</span> Light (≤11 mph)</p>
    <p style="margin: 5px 0;"><span style="color: #f39c12; font-size: 14px;">━→</span> Moderate (12-14 mph)</p>
    <p style="margin: 5px 0;"><span style="color: #e74c3c; font-size: 14px;">━→</span> Strong (≥15 mph)</p>
</div>`

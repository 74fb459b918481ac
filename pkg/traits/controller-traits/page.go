package controllertraits

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shadowbane/kayak-forecast-map/pkg/models"
)

// IndexPageData holds what the landing page shows
type IndexPageData struct {
	ReportGeneratedFor string
	// LastUpdated is the time of the last saved ingestion run, nil when unknown
	LastUpdated *time.Time
	Timezone    string
	Locations   []models.Location
}

// RenderIndexPage renders the landing page: the report heading, one tab per day that
// loads /map/:day into the map container, and the day's location cards.
func RenderIndexPage(data IndexPageData) string {
	var tabs, panels strings.Builder
	for i, day := range models.Days {
		active := ""
		if i == 0 {
			active = " active"
		}
		fmt.Fprintf(&tabs, `<button class="tab%s" data-day="%s" onclick="showDay('%s')">%s</button>`,
			active, day, day, day)

		var cards strings.Builder
		for _, loc := range models.FilterByDay(data.Locations, day) {
			cards.WriteString(RenderLocationCard(loc))
		}
		display := "none"
		if i == 0 {
			display = "grid"
		}
		fmt.Fprintf(&panels, `
    <div class="cards" id="cards-%s" style="display:%s;">%s</div>`, day, display, cards.String())
	}

	updated := ""
	if data.LastUpdated != nil {
		updated = fmt.Sprintf(`<div class="updated">Updated %s</div>`, formatCardTime(*data.LastUpdated, data.Timezone))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Kayak Forecast Map</title>
  <style>
    body{margin:0;font-family:system-ui,-apple-system,sans-serif;background:#f1f5f9;color:#1e293b;}
    header{padding:16px 24px;background:#0f172a;color:#f8fafc;}
    h1{margin:0;font-size:22px;}
    .report{font-size:14px;color:#cbd5e1;margin-top:4px;}
    .updated{font-size:11px;color:#94a3b8;margin-top:2px;}
    nav{display:flex;gap:8px;padding:12px 24px;}
    .tab{border:1px solid #cbd5e1;background:#fff;border-radius:8px;padding:8px 16px;cursor:pointer;font-size:14px;}
    .tab.active{background:#2563eb;border-color:#2563eb;color:#fff;}
    #map-container{margin:0 24px;height:600px;border-radius:12px;overflow:hidden;background:#e2e8f0;}
    #map-container iframe{width:100%%;height:100%%;border:0;}
    .cards{grid-template-columns:repeat(auto-fill,minmax(280px,1fr));gap:12px;padding:16px 24px;}
  </style>
</head>
<body>
  <header>
    <h1>Kayak Forecast Map</h1>
    <div class="report" id="report">%s</div>
    %s
  </header>
  <nav>%s</nav>
  <div id="map-container"></div>%s
  <script>
    function showDay(day) {
      document.querySelectorAll('.tab').forEach(function (t) {
        t.classList.toggle('active', t.dataset.day === day);
      });
      document.querySelectorAll('.cards').forEach(function (c) {
        c.style.display = c.id === 'cards-' + day ? 'grid' : 'none';
      });
      fetch('/map/' + day)
        .then(function (r) { return r.json(); })
        .then(function (data) {
          document.getElementById('map-container').innerHTML = data.map_html || '';
        });
    }
    showDay('%s');
  </script>
</body>
</html>`,
		html.EscapeString(data.ReportGeneratedFor),
		updated,
		tabs.String(),
		panels.String(),
		models.Days[0],
	)
}

package forecastmap

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

const (
	leafletVersion = "1.9.4"
	osmTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// LatLng is a point in Leaflet's [lat, lng] order
type LatLng [2]float64

// Popup is HTML content bound to a layer
type Popup struct {
	HTML     string
	MaxWidth int
}

// Layer is anything that can be added to the map
type Layer interface {
	script(name string) string
}

// Polyline is a line between two or more points
type Polyline struct {
	Points  []LatLng
	Color   string
	Weight  int
	Opacity float64
	Popup   *Popup
}

// CircleMarker is a fixed-pixel-radius circle
type CircleMarker struct {
	Center      LatLng
	Radius      int
	Color       string
	Fill        bool
	FillColor   string
	FillOpacity float64
	Weight      int
	Popup       *Popup
	Tooltip     string
}

// Map is a renderable Leaflet map
type Map struct {
	Center   LatLng
	Zoom     int
	Tiles    string
	Layers   []Layer
	Overlays []string
}

func (p Polyline) script(name string) string {
	opts := map[string]interface{}{
		"color":   p.Color,
		"weight":  p.Weight,
		"opacity": p.Opacity,
	}
	return fmt.Sprintf("var %s = L.polyline(%s, %s).addTo(map);\n%s",
		name, jsValue(p.Points), jsValue(opts), bindPopup(name, p.Popup))
}

func (c CircleMarker) script(name string) string {
	opts := map[string]interface{}{
		"radius":      c.Radius,
		"color":       c.Color,
		"fill":        c.Fill,
		"fillColor":   c.FillColor,
		"fillOpacity": c.FillOpacity,
		"weight":      c.Weight,
	}
	s := fmt.Sprintf("var %s = L.circleMarker(%s, %s).addTo(map);\n%s",
		name, jsValue(c.Center), jsValue(opts), bindPopup(name, c.Popup))
	if c.Tooltip != "" {
		s += fmt.Sprintf("%s.bindTooltip(%s, {sticky: true});\n", name, jsValue(html.EscapeString(c.Tooltip)))
	}
	return s
}

func bindPopup(name string, p *Popup) string {
	if p == nil {
		return ""
	}
	if p.MaxWidth > 0 {
		return fmt.Sprintf("%s.bindPopup(%s, {maxWidth: %d});\n", name, jsValue(p.HTML), p.MaxWidth)
	}
	return fmt.Sprintf("%s.bindPopup(%s);\n", name, jsValue(p.HTML))
}

// jsValue encodes v as a JS literal. encoding/json escapes <, > and & so the
// result is safe inside a <script> element.
func jsValue(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// Render returns the map as a standalone HTML document
func (m *Map) Render() string {
	var scripts strings.Builder
	for i, layer := range m.Layers {
		scripts.WriteString(layer.script(fmt.Sprintf("layer_%d", i)))
	}

	tiles := m.Tiles
	if tiles == "" {
		tiles = osmTileURL
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <link rel="stylesheet" href="https://unpkg.com/leaflet@%[1]s/dist/leaflet.css">
  <script src="https://unpkg.com/leaflet@%[1]s/dist/leaflet.js"></script>
  <style>html, body, #map { width: 100%%; height: 100%%; margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="map"></div>
  %[2]s
  <script>
var map = L.map("map", {center: %[3]s, zoom: %[4]d});
L.tileLayer(%[5]s, {attribution: %[6]s, maxZoom: 19}).addTo(map);
%[7]s  </script>
</body>
</html>`,
		leafletVersion,
		strings.Join(m.Overlays, "\n  "),
		jsValue(m.Center),
		m.Zoom,
		jsValue(tiles),
		jsValue(osmAttribution),
		scripts.String(),
	)
}

// Embed wraps the rendered document in an iframe so it can be injected into another page
func (m *Map) Embed() string {
	return fmt.Sprintf(`<div style="width:100%%;height:100%%;"><iframe srcdoc="%s" style="width:100%%;height:100%%;border:none;" allowfullscreen></iframe></div>`,
		html.EscapeString(m.Render()))
}

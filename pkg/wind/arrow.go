package wind

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxArrowLength caps the arrow length in degrees
	MaxArrowLength = 0.08
	// latitudeDamping squeezes the north/south component so arrows look even on the projection
	latitudeDamping = 0.85

	ColorStrong   = "#e74c3c"
	ColorModerate = "#f39c12"
	ColorLight    = "#3498db"
)

var speedRegex = regexp.MustCompile(`(\d+)`)

var bearings = map[string]float64{
	"N":  0,
	"NE": 45,
	"E":  90,
	"SE": 135,
	"S":  180,
	"SW": 225,
	"W":  270,
	"NW": 315,
}

// ParseSpeed extracts the first integer from strings like "10-12 mph".
// Strings without digits yield 0.
func ParseSpeed(s string) int {
	match := speedRegex.FindString(s)
	if match == "" {
		return 0
	}
	speed, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return speed
}

// Bearing converts a compass abbreviation (N, NE, ...) to degrees clockwise from north.
// Unknown directions map to 0.
func Bearing(direction string) float64 {
	return bearings[strings.TrimSpace(direction)]
}

// Color returns the arrow color for a wind speed in mph
func Color(speed int) string {
	switch {
	case speed > 14:
		return ColorStrong
	case speed > 11:
		return ColorModerate
	default:
		return ColorLight
	}
}

// Length returns the arrow length for a wind speed, capped at MaxArrowLength
func Length(speed int) float64 {
	return math.Min(float64(speed)/5, MaxArrowLength)
}

// Arrow is the line drawn from a location in the direction of the wind
type Arrow struct {
	StartLat float64
	StartLon float64
	EndLat   float64
	EndLon   float64
	Speed    int
	Bearing  float64
	Color    string
}

// NewArrow computes the arrow for a location given the raw direction and speed strings
func NewArrow(lat, lon float64, direction, speedText string) Arrow {
	speed := ParseSpeed(speedText)
	bearing := Bearing(direction)
	length := Length(speed)
	rad := bearing * math.Pi / 180

	return Arrow{
		StartLat: lat,
		StartLon: lon,
		EndLat:   lat + length*math.Cos(rad)*latitudeDamping,
		EndLon:   lon + length*math.Sin(rad),
		Speed:    speed,
		Bearing:  bearing,
		Color:    Color(speed),
	}
}

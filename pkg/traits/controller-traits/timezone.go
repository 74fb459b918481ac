package controllertraits

import (
	"regexp"
	"strconv"
)

// offsetRegex matches UTC offset formats: +08:00, -05:30, +0800, -0530
var offsetRegex = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// ParseTimezone converts a UTC offset to IANA timezone string, or returns as-is.
// Examples: "-04:00" -> "Etc/GMT+4", "+01:00" -> "Etc/GMT-1"
// Note: Etc/GMT signs are inverted (Etc/GMT+4 = UTC-04:00)
func ParseTimezone(tz string) string {
	if tz == "" {
		return tz
	}

	matches := offsetRegex.FindStringSubmatch(tz)
	if matches == nil {
		return tz // e.g. "America/New_York"
	}

	sign := matches[1]
	hours, _ := strconv.Atoi(matches[2])
	// minutes not used - Etc/GMT only supports whole hours

	if sign == "+" {
		return "Etc/GMT-" + strconv.Itoa(hours)
	}
	return "Etc/GMT+" + strconv.Itoa(hours)
}

// Package fetcher produces forecast documents from AI text generators or the
// NOAA weather and tide APIs.
package fetcher

import (
	"context"
	"regexp"
	"strings"
)

// ForecastProvider produces the raw JSON of a forecast document
type ForecastProvider interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

var fenceRegex = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")

// StripCodeFences removes markdown code fences (```json ... ```) that chat
// models like to wrap JSON in, and trims surrounding whitespace.
func StripCodeFences(s string) string {
	s = fenceRegex.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	// fences on the same line as the payload: ```json{...}```
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

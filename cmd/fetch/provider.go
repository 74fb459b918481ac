package main

import (
	"fmt"

	"github.com/shadowbane/kayak-forecast-map/pkg/ai"
	"github.com/shadowbane/kayak-forecast-map/pkg/fetcher"
	"gorm.io/gorm"
)

// providerSettings is the resolved configuration after flags override the environment
type providerSettings struct {
	Provider      string
	PromptFile    string
	LocationsFile string
	OpenAIKey     string
	OpenAIModel   string
	GeminiKey     string
	GeminiModel   string
	Temperature   float32
	UserAgent     string
}

func buildProvider(s providerSettings, db *gorm.DB) (fetcher.ForecastProvider, error) {
	switch s.Provider {
	case "openai":
		if s.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		gen := ai.NewOpenAIGenerator(s.OpenAIKey, ai.Options{
			Model:       s.OpenAIModel,
			Temperature: s.Temperature,
		})
		return fetcher.NewAIProvider("openai", gen, s.PromptFile), nil

	case "gemini":
		if s.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		gen := ai.NewGeminiGenerator(s.GeminiKey, ai.Options{
			Model:       s.GeminiModel,
			Temperature: s.Temperature,
		})
		return fetcher.NewAIProvider("gemini", gen, s.PromptFile), nil

	case "noaa":
		stations, err := fetcher.LoadStations(s.LocationsFile)
		if err != nil {
			return nil, err
		}
		return fetcher.NewNOAAProvider(
			stations,
			fetcher.NewWeatherGovClient(s.UserAgent),
			fetcher.NewCOOPSClient(),
			db,
		), nil
	}

	return nil, fmt.Errorf("unknown provider %q (want openai, gemini or noaa)", s.Provider)
}

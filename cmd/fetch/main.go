package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shadowbane/kayak-forecast-map/pkg/application"
	"github.com/shadowbane/kayak-forecast-map/pkg/fetcher"
	"github.com/shadowbane/weather-alert/pkg/exithandler"
	"go.uber.org/zap"
)

func main() {
	// load .env
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
		fmt.Println("Please ensure you load correct environment variables")
	}

	app, err := application.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting application: %v\n", err)
		os.Exit(1)
	}

	cfg := app.Cfg
	provider := flag.String("provider", cfg.GetForecastProvider(), "Forecast source: openai, gemini or noaa")
	prompt := flag.String("prompt", cfg.GetPromptFile(), "Prompt file sent to the AI providers")
	locations := flag.String("locations", cfg.GetLocationsFile(), "Station list (YAML or JSON) for the noaa provider")
	out := flag.String("out", cfg.GetForecastFile(), "Forecast document to write")
	schedule := flag.String("schedule", cfg.GetFetchSchedule(), "Cron expression to keep fetching (e.g. \"0 6 * * 4,5\"); empty runs once")
	flag.Parse()

	p, err := buildProvider(providerSettings{
		Provider:      *provider,
		PromptFile:    *prompt,
		LocationsFile: *locations,
		OpenAIKey:     cfg.GetOpenAIKey(),
		OpenAIModel:   cfg.GetOpenAIModel(),
		GeminiKey:     cfg.GetGeminiKey(),
		GeminiModel:   cfg.GetGeminiModel(),
		Temperature:   cfg.GetTemperature(),
		UserAgent:     cfg.GetWeatherUserAgent(),
	}, app.DB)
	if err != nil {
		zap.S().Error(err.Error())
		app.Close()
		os.Exit(1)
	}

	ingestor := fetcher.NewIngestor(p, *out, app.DB)

	if *schedule == "" {
		run, err := ingestor.Run(context.Background())
		if err != nil {
			zap.S().Error(err.Error())
			app.Close()
			os.Exit(1)
		}
		zap.S().Infof("Forecast run %s %s", run.ID, run.Status)
		app.Close()
		return
	}

	scheduler := fetcher.NewScheduler(ingestor)
	if err := scheduler.Start(*schedule); err != nil {
		zap.S().Error(err.Error())
		app.Close()
		os.Exit(1)
	}

	exithandler.Init(func() {
		zap.S().Info("Stopping scheduler")
		scheduler.Stop()
		app.Close()
	})
}

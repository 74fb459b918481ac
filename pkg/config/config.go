package config

import (
	"os"
	"strconv"
)

type Config struct {
	appEnv   string
	logLevel string
	logFile  string

	apiPort string
	dbPath  string

	forecastFile  string
	promptFile    string
	locationsFile string

	forecastProvider string
	openAIKey        string
	openAIModel      string
	geminiKey        string
	geminiModel      string
	temperature      float32

	fetchSchedule    string
	weatherUserAgent string
}

// Load reads the configuration from the environment. godotenv has already
// populated it from .env when present.
func Load() *Config {
	temperature, err := strconv.ParseFloat(getenv("AI_TEMPERATURE", "0.7"), 32)
	if err != nil {
		temperature = 0.7
	}

	return &Config{
		appEnv:   getenv("APP_ENV", "local"),
		logLevel: getenv("LOG_LEVEL", "info"),
		logFile:  getenv("LOG_FILE", ""),

		apiPort: getenv("API_PORT", ":5000"),
		dbPath:  getenv("DB_PATH", "data/kayak.db"),

		forecastFile:  getenv("FORECAST_FILE", "kayak_forecast.json"),
		promptFile:    getenv("PROMPT_FILE", "prompt.md"),
		locationsFile: getenv("LOCATIONS_FILE", "locations.json"),

		forecastProvider: getenv("FORECAST_PROVIDER", "gemini"),
		openAIKey:        getenv("OPENAI_API_KEY", ""),
		openAIModel:      getenv("OPENAI_MODEL", ""),
		geminiKey:        getenv("GEMINI_API_KEY", ""),
		geminiModel:      getenv("GEMINI_MODEL", ""),
		temperature:      float32(temperature),

		fetchSchedule:    getenv("FETCH_SCHEDULE", ""),
		weatherUserAgent: getenv("WEATHER_USER_AGENT", ""),
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func (c *Config) GetAppEnv() string {
	return c.appEnv
}

func (c *Config) IsProduction() bool {
	return c.appEnv == "production"
}

func (c *Config) GetLogLevel() string {
	return c.logLevel
}

// GetLogFile returns the rotating log file path, empty for stdout only
func (c *Config) GetLogFile() string {
	return c.logFile
}

// GetAPIPort returns the listen address, e.g. ":5000"
func (c *Config) GetAPIPort() string {
	return c.apiPort
}

func (c *Config) GetDBPath() string {
	return c.dbPath
}

func (c *Config) GetForecastFile() string {
	return c.forecastFile
}

func (c *Config) GetPromptFile() string {
	return c.promptFile
}

func (c *Config) GetLocationsFile() string {
	return c.locationsFile
}

// GetForecastProvider returns one of "openai", "gemini" or "noaa"
func (c *Config) GetForecastProvider() string {
	return c.forecastProvider
}

func (c *Config) GetOpenAIKey() string {
	return c.openAIKey
}

func (c *Config) GetOpenAIModel() string {
	return c.openAIModel
}

func (c *Config) GetGeminiKey() string {
	return c.geminiKey
}

func (c *Config) GetGeminiModel() string {
	return c.geminiModel
}

func (c *Config) GetTemperature() float32 {
	return c.temperature
}

// GetFetchSchedule returns the cron expression for repeated fetches. Empty means run once.
func (c *Config) GetFetchSchedule() string {
	return c.fetchSchedule
}

func (c *Config) GetWeatherUserAgent() string {
	return c.weatherUserAgent
}

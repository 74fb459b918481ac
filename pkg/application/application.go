package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/shadowbane/kayak-forecast-map/pkg/config"
	"github.com/shadowbane/kayak-forecast-map/pkg/logger"
	"github.com/shadowbane/kayak-forecast-map/pkg/models"
	"github.com/shadowbane/kayak-forecast-map/pkg/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Application struct {
	Cfg *config.Config
	DB  *gorm.DB

	// Forecast is loaded once at startup and shared read-only by all handlers
	Forecast *models.ForecastDocument

	closeLog func()
}

// Start boots the pieces shared by the api and fetch commands: config, logger and database
func Start() (*Application, error) {
	cfg := config.Load()

	closeLog, err := logger.Init(logger.Options{
		Production: cfg.IsProduction(),
		Level:      cfg.GetLogLevel(),
		File:       cfg.GetLogFile(),
	})
	if err != nil {
		return nil, err
	}

	zap.S().Infof("Starting Kayak Forecast Map (%s)", cfg.GetAppEnv())

	db, err := OpenDB(cfg.GetDBPath())
	if err != nil {
		closeLog()
		return nil, err
	}

	return &Application{
		Cfg:      cfg,
		DB:       db,
		closeLog: closeLog,
	}, nil
}

// OpenDB opens the sqlite database and migrates the local models
func OpenDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	zap.S().Debug("Running migrations")
	err = db.AutoMigrate([]interface{}{
		&models.TideData{},
		&models.ForecastRun{},
	}...)
	if err != nil {
		return nil, fmt.Errorf("error running auto migration: %w", err)
	}

	return db, nil
}

// LoadForecast reads the forecast document the web server serves
func (app *Application) LoadForecast() error {
	doc, err := store.Load(app.Cfg.GetForecastFile())
	if err != nil {
		return err
	}

	app.Forecast = doc
	zap.S().Infof("Loaded %d locations for %s", len(doc.Locations), doc.ReportGeneratedFor)
	return nil
}

// Close releases the database and flushes the logger
func (app *Application) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				zap.S().Error(err.Error())
			}
		}
	}
	if app.closeLog != nil {
		app.closeLog()
	}
}

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/shadowbane/kayak-forecast-map/cmd/api/router"
	"github.com/shadowbane/weather-alert/pkg/exithandler"
	"github.com/shadowbane/weather-alert/pkg/server"
	"go.uber.org/zap"

	"github.com/shadowbane/kayak-forecast-map/pkg/application"
)

func main() {
	var cpuCount = runtime.NumCPU()
	if cpuCount > 1 {
		runtime.GOMAXPROCS(cpuCount)
	}

	// load .env
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
		fmt.Println("Please ensure you load correct environment variables")
	}

	// start application; the logger is set up inside Start, so its errors go to stderr
	app, err := application.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting application: %v\n", err)
		os.Exit(1)
	}

	// the forecast document is read once; run cmd/fetch and restart to pick up a new one
	if err := app.LoadForecast(); err != nil {
		zap.S().Fatalf("Error loading forecast: %v", err)
	}

	srv := server.
		Get().
		WithAddr(app.Cfg.GetAPIPort()).
		WithRouter(router.Api(app)).
		WithErrLogger(zap.S())

	// start the api server
	go func() {
		zap.S().Info("starting api server at ", app.Cfg.GetAPIPort())

		if err := srv.Start(); err != nil {
			zap.S().Warn(err.Error())
		}
	}()

	exithandler.Init(func() {
		zap.S().Info("Closing Application")

		if err := srv.Close(); err != nil {
			zap.S().Error(err.Error())
		}

		zap.S().Info("Application Closed")
	})

	zap.S().Info("Bye!")
	app.Close()
}

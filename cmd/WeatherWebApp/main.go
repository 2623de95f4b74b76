package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ronniefr/Weather-web-app/internal/app"
	"github.com/ronniefr/Weather-web-app/internal/config"
	"github.com/ronniefr/Weather-web-app/internal/services/metrics"
	"github.com/ronniefr/Weather-web-app/pkg/logger"
)

// @title Weather Web App API
// @version 1.0
// @description Serves randomly generated weather readings per city with a bundled display page
// @host localhost:8000
// @BasePath /
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "weather-web-app")
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	metr := metrics.NewMetrics("weather_web_app")

	application := app.New(*cfg, l, metr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panic(err)
	}
}

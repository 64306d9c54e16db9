package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"giphy-gateway/internal/infrastructure/config"
	"giphy-gateway/internal/infrastructure/logger"
	_ "giphy-gateway/internal/infrastructure/metrics" // Register Prometheus metrics
	"giphy-gateway/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

// @title Giphy Gateway
// @version 1.0
// @description Thin gateway over the Giphy API exposing GIF search and fetch-by-ID.
// @BasePath /
func (app *Application) Start() error {
	return app.httpServer.Run()
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Giphy gateway service")

	// Create application with dependency injection
	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	// Start application
	log.Info().Str("address", fmt.Sprintf(":%s", cfg.HTTPPort)).Msg("Server listening")
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

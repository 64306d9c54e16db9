package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the Giphy gateway service
type Config struct {
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8092"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"` // json or console
	GiphyAPIKey  string `env:"GIPHY_API_KEY"`
	GiphyBaseURL string `env:"GIPHY_BASE_URL" envDefault:"https://api.giphy.com/v1/gifs"`
	SearchLimit  int    `env:"SEARCH_LIMIT" envDefault:"10"`
	SearchRating string `env:"SEARCH_RATING" envDefault:"g"`
}

// LoadConfig loads configuration from the environment, reading a local .env
// file first when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

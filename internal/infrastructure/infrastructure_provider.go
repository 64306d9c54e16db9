package infrastructure

import (
	"github.com/google/wire"

	"giphy-gateway/internal/domain/gif"
	"giphy-gateway/internal/infrastructure/config"
	giphyclient "giphy-gateway/internal/infrastructure/giphy"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Giphy client
	ProvideGiphyClient,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideGiphyClient provides the Giphy API client
func ProvideGiphyClient(cfg *config.Config) (gif.GiphyClient, error) {
	return giphyclient.NewClient(giphyclient.ClientConfig{
		APIKey:       cfg.GiphyAPIKey,
		BaseURL:      cfg.GiphyBaseURL,
		SearchLimit:  cfg.SearchLimit,
		SearchRating: cfg.SearchRating,
	})
}

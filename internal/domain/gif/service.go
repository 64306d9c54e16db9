package gif

import (
	"context"
	"strings"

	"giphy-gateway/utils/platformerrors"
)

// Service orchestrates GIF lookups while remaining transport-agnostic.
type Service struct {
	client GiphyClient
}

// NewService creates a new GIF service
func NewService(client GiphyClient) *Service {
	return &Service{
		client: client,
	}
}

// Search returns the top-ranked GIF for the query, or found=false when the
// API reports zero matches.
func (s *Service) Search(ctx context.Context, query SearchQuery) (*Gif, bool, error) {
	if strings.TrimSpace(query.Query) == "" {
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "search query must not be empty", nil, "")
	}
	return s.client.Search(ctx, query)
}

// GetByID returns the GIF with the given Giphy ID, or found=false when no
// such ID exists.
func (s *Service) GetByID(ctx context.Context, id string) (*Gif, bool, error) {
	if strings.TrimSpace(id) == "" {
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "gif id must not be empty", nil, "")
	}
	return s.client.GetByID(ctx, id)
}

package giphy

import (
	"context"
	"strconv"

	"giphy-gateway/internal/domain/gif"
	"giphy-gateway/utils/platformerrors"

	"github.com/rs/zerolog/log"
)

// parseGif projects a raw Giphy record into the domain model, rejecting
// records that violate the Gif invariant (non-empty ID and content URL).
func parseGif(ctx context.Context, payload gifPayload) (*gif.Gif, error) {
	original := payload.Images.Original
	if payload.ID == "" || original.URL == "" {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeResponseFormat, "Giphy record is missing required fields", nil, "",
			map[string]any{
				"has_id":          payload.ID != "",
				"has_content_url": original.URL != "",
			})
	}

	return &gif.Gif{
		ID:         payload.ID,
		Title:      payload.Title,
		URL:        payload.URL,
		ContentURL: original.URL,
		Rating:     payload.Rating,
		Width:      parseDimension("width", original.Width),
		Height:     parseDimension("height", original.Height),
	}, nil
}

// Giphy serializes image dimensions as decimal strings. A missing or
// unparseable dimension is not fatal, only ID and content URL are required.
func parseDimension(field, value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("field", field).Str("value", value).Msg("unparseable image dimension in Giphy record")
		return 0
	}
	return n
}

package gif

import "context"

// Gif represents a single GIF returned by the Giphy API. ID and ContentURL
// are always non-empty on a successful match.
type Gif struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	ContentURL string `json:"content_url"`
	Rating     string `json:"rating"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// SearchQuery describes a GIF search. Limit and Rating are optional and fall
// back to the client defaults when zero-valued.
type SearchQuery struct {
	Query  string `json:"q"`
	Limit  int    `json:"limit,omitempty"`
	Rating string `json:"rating,omitempty"`
}

// GiphyClient defines the Giphy API operations required by the domain layer.
// The boolean return is the explicit "no result" signal: (nil, false, nil)
// means the API reported zero matches or an unknown ID, which is not an error.
type GiphyClient interface {
	Search(ctx context.Context, query SearchQuery) (*Gif, bool, error)
	GetByID(ctx context.Context, id string) (*Gif, bool, error)
}

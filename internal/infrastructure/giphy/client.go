package giphy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"giphy-gateway/internal/domain/gif"
	"giphy-gateway/internal/infrastructure/metrics"
	"giphy-gateway/utils/platformerrors"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.giphy.com/v1/gifs"

// ClientConfig configures the Giphy API client
type ClientConfig struct {
	APIKey       string
	BaseURL      string
	SearchLimit  int
	SearchRating string
	Timeout      time.Duration
}

// Client implements the Giphy API client
type Client struct {
	httpClient   *resty.Client
	apiKey       string
	baseURL      string
	searchLimit  int
	searchRating string
}

var _ gif.GiphyClient = (*Client)(nil)

// NewClient creates a new Giphy API client. A missing API key fails here,
// before any network call is attempted.
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeConfiguration, "GIPHY_API_KEY is not configured", nil, "")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := resty.New().
		SetHeader("User-Agent", "Giphy-Gateway/1.0").
		SetTimeout(timeout)

	return &Client{
		httpClient:   httpClient,
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		searchLimit:  limit,
		searchRating: cfg.SearchRating,
	}, nil
}

// searchPayload is the Giphy search response body
type searchPayload struct {
	Data []gifPayload `json:"data"`
}

// getPayload is the Giphy get-by-id response body
type getPayload struct {
	Data gifPayload `json:"data"`
}

type gifPayload struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Rating string `json:"rating"`
	Images struct {
		Original struct {
			URL    string `json:"url"`
			Width  string `json:"width"`
			Height string `json:"height"`
		} `json:"original"`
	} `json:"images"`
}

// Search issues a GET against the Giphy search endpoint and returns the
// top-ranked match. An empty result set is reported as found=false.
func (c *Client) Search(ctx context.Context, query gif.SearchQuery) (*gif.Gif, bool, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = c.searchLimit
	}
	rating := query.Rating
	if rating == "" {
		rating = c.searchRating
	}

	start := time.Now()
	status := "error"
	defer func() {
		metrics.RecordUpstreamCall("search", status, time.Since(start).Seconds())
	}()

	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParam("q", query.Query).
		SetQueryParam("limit", strconv.Itoa(limit))
	if rating != "" {
		req.SetQueryParam("rating", rating)
	}

	resp, err := req.Get(c.baseURL + "/search")
	if err != nil {
		return nil, false, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeTransport, "failed to reach Giphy search API", err, "",
			map[string]any{"query": query.Query})
	}
	if resp.IsError() {
		return nil, false, c.statusError(ctx, resp, "search")
	}

	var payload searchPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeResponseFormat, "failed to parse Giphy search response", err, "")
	}

	if len(payload.Data) == 0 {
		status = "absent"
		return nil, false, nil
	}

	result, err := parseGif(ctx, payload.Data[0])
	if err != nil {
		return nil, false, err
	}
	status = "ok"
	return result, true, nil
}

// GetByID issues a GET against the Giphy by-ID endpoint. An unknown ID is
// reported as found=false.
func (c *Client) GetByID(ctx context.Context, id string) (*gif.Gif, bool, error) {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.RecordUpstreamCall("get_by_id", status, time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		Get(c.baseURL + "/" + url.PathEscape(id))
	if err != nil {
		return nil, false, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeTransport, "failed to reach Giphy by-ID API", err, "",
			map[string]any{"gif_id": id})
	}
	if resp.StatusCode() == http.StatusNotFound {
		status = "absent"
		return nil, false, nil
	}
	if resp.IsError() {
		return nil, false, c.statusError(ctx, resp, "get_by_id")
	}

	var payload getPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeResponseFormat, "failed to parse Giphy by-ID response", err, "")
	}

	result, err := parseGif(ctx, payload.Data)
	if err != nil {
		return nil, false, err
	}
	status = "ok"
	return result, true, nil
}

func (c *Client) statusError(ctx context.Context, resp *resty.Response, operation string) error {
	statusCode := resp.StatusCode()
	fields := map[string]any{
		"operation":   operation,
		"status_code": statusCode,
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeAuthentication, "Giphy rejected the API key", nil, "", fields)
	default:
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"Giphy API returned an error status", nil, "", fields)
	}
}

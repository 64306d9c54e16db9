package giphy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"giphy-gateway/internal/domain/gif"
	"giphy-gateway/utils/platformerrors"
)

func searchQuery(q string) gif.SearchQuery {
	return gif.SearchQuery{Query: q}
}

const sampleGifJSON = `{
	"id": "xT9IgDEI1iZyb2wqo8",
	"url": "https://giphy.com/gifs/sad-xT9IgDEI1iZyb2wqo8",
	"title": "Sad Cry GIF",
	"rating": "g",
	"images": {
		"original": {
			"url": "https://media.giphy.com/media/xT9IgDEI1iZyb2wqo8/giphy.gif",
			"width": "480",
			"height": "270"
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestClientSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("expected path /search, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key test-key, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "sad" {
			t.Errorf("expected q sad, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("expected limit 10, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[%s],"pagination":{"total_count":1},"meta":{"status":200}}`, sampleGifJSON)
	})

	result, found, err := client.Search(context.Background(), searchQuery("sad"))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !found {
		t.Fatal("expected a result, got absent")
	}

	if result.ID != "xT9IgDEI1iZyb2wqo8" {
		t.Errorf("unexpected id %q", result.ID)
	}
	if result.Title != "Sad Cry GIF" {
		t.Errorf("unexpected title %q", result.Title)
	}
	if result.ContentURL != "https://media.giphy.com/media/xT9IgDEI1iZyb2wqo8/giphy.gif" {
		t.Errorf("unexpected content url %q", result.ContentURL)
	}
	if result.Width != 480 || result.Height != 270 {
		t.Errorf("unexpected dimensions %dx%d", result.Width, result.Height)
	}
	if result.Rating != "g" {
		t.Errorf("unexpected rating %q", result.Rating)
	}
}

func TestClientSearchNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[],"pagination":{"total_count":0},"meta":{"status":200}}`)
	})

	result, found, err := client.Search(context.Background(), searchQuery("zxqwvutsr-no-such-gif"))
	if err != nil {
		t.Fatalf("expected absent result, got error: %v", err)
	}
	if found {
		t.Fatalf("expected absent result, got %+v", result)
	}
}

func TestClientSearchUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Invalid authentication credentials"}`)
	})

	_, _, err := client.Search(context.Background(), searchQuery("sad"))
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeAuthentication) {
		t.Fatalf("expected AUTHENTICATION error, got %v", err)
	}
}

func TestClientSearchMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `<html>definitely not json</html>`)
	})

	_, _, err := client.Search(context.Background(), searchQuery("sad"))
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeResponseFormat) {
		t.Fatalf("expected RESPONSE_FORMAT error, got %v", err)
	}
}

func TestClientSearchMissingContentURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"id":"abc123","title":"No Images GIF","images":{}}],"meta":{"status":200}}`)
	})

	_, _, err := client.Search(context.Background(), searchQuery("sad"))
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeResponseFormat) {
		t.Fatalf("expected RESPONSE_FORMAT error, got %v", err)
	}
}

func TestClientSearchTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(ClientConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	server.Close()

	_, _, err = client.Search(context.Background(), searchQuery("sad"))
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeTransport) {
		t.Fatalf("expected TRANSPORT error, got %v", err)
	}
}

func TestClientGetByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/xT9IgDEI1iZyb2wqo8" {
			t.Errorf("expected path /xT9IgDEI1iZyb2wqo8, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key test-key, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":%s,"meta":{"status":200}}`, sampleGifJSON)
	})

	result, found, err := client.GetByID(context.Background(), "xT9IgDEI1iZyb2wqo8")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !found {
		t.Fatal("expected a result, got absent")
	}
	if result.ID != "xT9IgDEI1iZyb2wqo8" {
		t.Errorf("expected id to match input, got %q", result.ID)
	}
}

func TestClientGetByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"data":{},"meta":{"status":404,"msg":"Not Found"}}`)
	})

	result, found, err := client.GetByID(context.Background(), "does-not-exist-123")
	if err != nil {
		t.Fatalf("expected absent result, got error: %v", err)
	}
	if found {
		t.Fatalf("expected absent result, got %+v", result)
	}
}

func TestNewClientMissingAPIKey(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfiguration) {
		t.Fatalf("expected CONFIGURATION error, got %v", err)
	}
}

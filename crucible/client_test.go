package crucible

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cruciblebio/crucible-go/log"
)

// newTestClient builds a client pointed at a test server, with
// logging discarded.
func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := New("test-model", "test-token",
		WithBaseURL(url),
		WithLogger(log.NewNop()),
		WithTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

// jsonHandler returns a handler that responds with the given body and
// records the decoded request.
func jsonHandler(t *testing.T, status int, body string, gotReq *map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if gotReq != nil {
			if err := json.NewDecoder(r.Body).Decode(gotReq); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New("test-model", "")
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}

func TestNew_TrimsBaseURL(t *testing.T) {
	c, err := New("test-model", "tok", WithBaseURL("https://example.com/"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if c.baseURL != "https://example.com" {
		t.Errorf("expected trimmed base URL, got %s", c.baseURL)
	}
}

func TestPost_Headers(t *testing.T) {
	var auth, contentType, requestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"outputs":{}}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if _, err := c.post(context.Background(), "generate", map[string]any{"model": "test-model"}); err != nil {
		t.Fatalf("post: %v", err)
	}

	if auth != "Bearer test-token" {
		t.Errorf("expected bearer token header, got %q", auth)
	}
	if contentType != "application/json" {
		t.Errorf("expected application/json, got %q", contentType)
	}
	if requestID == "" {
		t.Error("expected a request id header")
	}
}

func TestPost_EnvelopeNormalization(t *testing.T) {
	// {data: {outputs: {...}}} and {outputs: {...}} must parse
	// identically.
	bodies := map[string]string{
		"plain":   `{"outputs":{"sequence":"MKV"}}`,
		"wrapped": `{"data":{"outputs":{"sequence":"MKV"}}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(jsonHandler(t, http.StatusOK, body, nil))
			defer ts.Close()

			c := newTestClient(t, ts.URL)
			data, err := c.post(context.Background(), "generate", map[string]any{})
			if err != nil {
				t.Fatalf("post: %v", err)
			}

			out, ok := data["outputs"].(map[string]any)
			if !ok {
				t.Fatalf("expected outputs object, got %v", data)
			}
			if out["sequence"] != "MKV" {
				t.Errorf("expected MKV, got %v", out["sequence"])
			}
		})
	}
}

func TestPost_TransportError(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, http.StatusBadGateway, "upstream exploded", nil))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.post(context.Background(), "encode", map[string]any{})

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if terr.Endpoint != "encode" {
		t.Errorf("expected endpoint encode, got %s", terr.Endpoint)
	}
	if terr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", terr.StatusCode)
	}
	if terr.Body != "upstream exploded" {
		t.Errorf("expected raw response text, got %q", terr.Body)
	}
}

func TestPost_EndpointPath(t *testing.T) {
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"outputs":{}}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if _, err := c.post(context.Background(), "forward_and_sample", map[string]any{}); err != nil {
		t.Fatalf("post: %v", err)
	}
	if path != "/api/v1/forward_and_sample" {
		t.Errorf("expected /api/v1/forward_and_sample, got %s", path)
	}
}

// Package crucible implements the Go client for the Crucible
// protein-inference gateway.
//
// The client speaks a JSON HTTP protocol with one endpoint per
// operation: generate, generate_tensor, forward_and_sample, encode,
// and decode. All operations share the track codec in package codec
// and the response envelope normalization in the transport adapter.
package crucible

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cruciblebio/crucible-go/log"
	"github.com/cruciblebio/crucible-go/transcript"
)

// DefaultBaseURL is the production gateway endpoint.
const DefaultBaseURL = "https://api.crucible.bio"

// ErrMissingToken is returned by New when no API token is provided.
// Token absence fails at construction, not on the first call.
var ErrMissingToken = errors.New("crucible: an API token is required, pass the token from your account settings")

// Client is a Crucible inference client bound to one model.
//
// A Client is safe for concurrent use: every call constructs its own
// request and response state.
type Client struct {
	model   string
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
	logger  *log.Logger
	rec     *transcript.Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the gateway endpoint. Trailing slashes are
// trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger substitutes the client logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTranscript records every exchange to the given recorder.
func WithTranscript(rec *transcript.Recorder) Option {
	return func(c *Client) { c.rec = rec }
}

// New creates a client for the given model. The token must be
// non-empty; construction fails fast with ErrMissingToken otherwise.
func New(model, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		model:   model,
		baseURL: DefaultBaseURL,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.logger == nil {
		c.logger = log.NewLogger(model, c.baseURL)
	}
	return c, nil
}

// Model returns the model name the client was constructed with.
func (c *Client) Model() string { return c.model }

package crucible

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/cruciblebio/crucible-go/iox"
	"github.com/cruciblebio/crucible-go/transcript"
)

// TransportError is returned for every non-success HTTP status. It
// carries the operation name and the raw response text so callers can
// surface the gateway's own failure message.
type TransportError struct {
	// Endpoint is the operation name (e.g. "generate").
	Endpoint string
	// StatusCode is the HTTP status code.
	StatusCode int
	// Body is the raw response text.
	Body string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failure in %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// post issues one POST to {base_url}/api/v1/{endpoint} and returns
// the parsed response body.
//
// The gateway sometimes nests the response under a top-level "data"
// key. post normalizes the envelope before returning: if the body has
// no "outputs" key but carries a "data" object, the "data" object is
// promoted to be the body. This applies uniformly to every operation.
func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("crucible: marshal %s request: %w", endpoint, err)
	}

	reqID := uuid.New().String()
	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("crucible: create %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("crucible: %s request failed: %w", endpoint, err)
		c.record(reqID, endpoint, 0, body, nil, err)
		return nil, err
	}
	defer iox.DiscardClose(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("crucible: read %s response: %w", endpoint, err)
		c.record(reqID, endpoint, resp.StatusCode, body, nil, err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		terr := &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(raw)}
		c.record(reqID, endpoint, resp.StatusCode, body, raw, terr)
		c.logger.Warn("request failed", map[string]any{
			"endpoint":   endpoint,
			"request_id": reqID,
			"status":     resp.StatusCode,
		})
		return nil, terr
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		err = fmt.Errorf("crucible: parse %s response: %w", endpoint, err)
		c.record(reqID, endpoint, resp.StatusCode, body, raw, err)
		return nil, err
	}

	// Gateway envelope: lift a nested "data" object to the top level.
	if _, ok := data["outputs"]; !ok {
		if inner, ok := data["data"].(map[string]any); ok {
			data = inner
		}
	}

	c.record(reqID, endpoint, resp.StatusCode, body, raw, nil)
	c.logger.Debug("request completed", map[string]any{
		"endpoint":   endpoint,
		"request_id": reqID,
		"status":     resp.StatusCode,
	})
	return data, nil
}

// record appends the exchange to the transcript, if one is configured.
func (c *Client) record(reqID, endpoint string, status int, request, response []byte, callErr error) {
	if c.rec == nil {
		return
	}
	rec := &transcript.Record{
		ID:       reqID,
		Endpoint: endpoint,
		Ts:       transcript.Now(),
		Status:   status,
		Request:  request,
		Response: response,
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}
	if err := c.rec.Append(rec); err != nil {
		c.logger.Error("transcript append failed", map[string]any{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
	}
}

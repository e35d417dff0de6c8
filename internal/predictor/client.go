package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/piwi3910/FurniLayout/internal/model"
)

// PredictPath is the layout endpoint relative to the service base URL.
const PredictPath = "/api/layout/predict"

// Client calls the placement-suggestion service over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 30 second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Suggest posts req and decodes the reply. Transport failures, non-2xx
// statuses, undecodable bodies and "error" replies all come back as
// *model.PredictorUnavailableError.
func (c *Client) Suggest(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode request: %w", err)
	}

	targetURL := c.BaseURL + PredictPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, &model.PredictorUnavailableError{Reason: "invalid service URL", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[PREDICTOR] POST %s (%d items, room %s)", targetURL, len(req.Items), req.RoomType)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return Response{}, &model.PredictorUnavailableError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &model.PredictorUnavailableError{Reason: "failed to read response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &model.PredictorUnavailableError{
			Reason: fmt.Sprintf("service returned HTTP %d", resp.StatusCode),
		}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return Response{}, &model.PredictorUnavailableError{Reason: "invalid response body", Err: err}
	}
	if out.Status != StatusSuccess {
		msg := out.Message
		if msg == "" {
			msg = "unknown error"
		}
		return Response{}, &model.PredictorUnavailableError{Reason: msg}
	}
	return out, nil
}

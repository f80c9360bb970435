package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sorarelay/internal/entity"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 2 << 20
)

// Client posts authenticated task-creation calls to relay endpoints.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

type createRequest struct {
	Token   string         `json:"token"`
	Payload map[string]any `json:"payload"`
}

// CreateTask requires HTTP 200 and an id/task_id field in the body.
// Anything else is returned as an error for the failover loop to record.
func (c *Client) CreateTask(ctx context.Context, ep entity.EndpointConfig, accessToken, sentinelToken string, payload map[string]any) (string, error) {
	body, err := json.Marshal(createRequest{Token: accessToken, Payload: payload})
	if err != nil {
		return "", fmt.Errorf("marshal create request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-lambda-key", ep.APIKey)
	req.Header.Set("openai-sentinel-token", sentinelToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("endpoint %s: %w", ep.URL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("endpoint %s: read response: %w", ep.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("endpoint %s: status %d: %s", ep.URL, resp.StatusCode, truncate(respBody, 256))
	}

	var parsed struct {
		ID     string `json:"id"`
		TaskID string `json:"task_id"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("endpoint %s: invalid JSON response", ep.URL)
	}
	if parsed.ID != "" {
		return parsed.ID, nil
	}
	if parsed.TaskID != "" {
		return parsed.TaskID, nil
	}
	return "", fmt.Errorf("endpoint %s: no task id in response", ep.URL)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

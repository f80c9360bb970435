package sentinelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sorarelay/internal/entity"
)

const (
	reqPath        = "/backend-api/sentinel/req"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 2 << 20

	origin  = "https://sora.chatgpt.com"
	referer = "https://sora.chatgpt.com/"
)

// Client calls the remote sentinel verification endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type challengeRequest struct {
	Proof string `json:"p"`
	Flow  string `json:"flow"`
	ID    string `json:"id"`
}

// RequestChallenge submits the initial proof. A non-200 reply comes back
// as *entity.UpstreamError with status and body intact; it is not retried
// at this layer.
func (c *Client) RequestChallenge(ctx context.Context, accessToken, userAgent, proof, flow, id string) (entity.SentinelChallengeResponse, error) {
	var out entity.SentinelChallengeResponse

	body, err := json.Marshal(challengeRequest{Proof: proof, Flow: flow, ID: id})
	if err != nil {
		return out, fmt.Errorf("marshal challenge request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reqPath, bytes.NewReader(body))
	if err != nil {
		return out, fmt.Errorf("build challenge request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", origin)
	req.Header.Set("Referer", referer)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("sentinel request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return out, fmt.Errorf("read sentinel response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return out, &entity.UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, fmt.Errorf("parse sentinel response: %w", err)
	}
	return out, nil
}

// Package llmclient is the HTTP client for the external secondary
// classifier sidecar. The sidecar wraps whatever large-language-model is in
// use; this client only speaks the candidate/opinion contract defined in
// the secondary package.
package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/siftworks/botsift/internal/secondary"
)

const defaultTimeout = 30 * time.Second

// ErrUnavailable indicates the classifier sidecar is unreachable.
var ErrUnavailable = errors.New("secondary classifier unavailable")

// Client is an HTTP client for the classifier sidecar.
type Client struct {
	baseURL string
	http    *http.Client
}

// classifyRequest is the request body for POST /classify.
type classifyRequest struct {
	Candidates []secondary.Candidate `json:"candidates"`
}

// NewClient creates a client for the sidecar at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Classify sends the candidate subset and returns the raw opinion entries.
// The response body may wrap its JSON in prose or code fences; extraction
// and per-field sanitization happen in the secondary package.
func (c *Client) Classify(ctx context.Context, cands []secondary.Candidate) ([]secondary.OpinionEntry, error) {
	body, err := json.Marshal(classifyRequest{Candidates: cands})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	entries, err := secondary.ParseOpinions(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse opinions: %w", err)
	}
	return entries, nil
}

// Health checks whether the sidecar is up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}
	return nil
}

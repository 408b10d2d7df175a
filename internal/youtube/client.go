// Package youtube fetches video metadata and comment threads from the
// YouTube Data API. It is the external fetch collaborator for the scoring
// core: retries, rate limiting and pagination live here, and the core only
// ever sees the resulting []domain.Comment.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/siftworks/botsift/internal/domain"
	"github.com/siftworks/botsift/internal/logger"
)

const (
	defaultTimeout = 15 * time.Second
	pageSize       = 100
	maxAttempts    = 3
	retryBackoff   = 500 * time.Millisecond
)

// ErrNotFound indicates the requested video does not exist or has comments
// disabled.
var ErrNotFound = errors.New("video not found or comments disabled")

// Client is a YouTube Data API client.
type Client struct {
	baseURL     string
	apiKey      string
	maxComments int
	http        *http.Client
	limiter     *rate.Limiter
	log         logger.Logger
}

// NewClient creates a client. rps bounds outgoing request rate so a burst
// of analyze requests cannot exhaust the API quota; maxComments caps how
// many comments any single fetch may pull.
func NewClient(baseURL, apiKey string, rps, maxComments int, log logger.Logger) *Client {
	if rps <= 0 {
		rps = 5
	}
	if maxComments <= 0 {
		maxComments = pageSize
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		maxComments: maxComments,
		http:        &http.Client{Timeout: defaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(rps), rps),
		log:         log,
	}
}

// FetchVideo returns metadata for one video.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*domain.VideoMeta, error) {
	params := url.Values{
		"part": {"snippet,statistics"},
		"id":   {videoID},
		"key":  {c.apiKey},
	}

	var resp videoListResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}

	item := resp.Items[0]
	return &domain.VideoMeta{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		CommentCount: parseCount(item.Statistics.CommentCount),
		ViewCount:    parseCount(item.Statistics.ViewCount),
	}, nil
}

// FetchComments returns up to max top-level comments for a video, following
// page tokens until the limit or the last page is reached. max is bounded
// by the client's configured cap. Comment bodies are HTML-unescaped before
// they leave this package.
func (c *Client) FetchComments(ctx context.Context, videoID string, max int) ([]domain.Comment, error) {
	if max <= 0 || max > c.maxComments {
		max = c.maxComments
	}

	comments := make([]domain.Comment, 0, max)
	pageToken := ""

	for len(comments) < max {
		params := url.Values{
			"part":       {"snippet"},
			"videoId":    {videoID},
			"maxResults": {strconv.Itoa(pageSize)},
			"textFormat": {"plainText"},
			"order":      {"relevance"},
			"key":        {c.apiKey},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp commentThreadsResponse
		if err := c.get(ctx, "/commentThreads", params, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			sn := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, domain.Comment{
				ID:          item.Snippet.TopLevelComment.ID,
				Author:      sn.AuthorDisplayName,
				AuthorID:    sn.AuthorChannelID.Value,
				Text:        html.UnescapeString(sn.TextDisplay),
				LikeCount:   sn.LikeCount,
				PublishedAt: sn.PublishedAt,
			})
			if len(comments) >= max {
				break
			}
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	c.log.Info("comments fetched",
		logger.String("video_id", videoID),
		logger.Int("count", len(comments)),
	)
	return comments, nil
}

// get performs one rate-limited GET with bounded retry on transport errors
// and 5xx responses.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		err := c.doGet(ctx, path, params, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) {
			return err
		}

		c.log.Warn("youtube request failed, retrying",
			logger.String("path", path),
			logger.Int("attempt", attempt),
			logger.Err(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return lastErr
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &transientError{fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	case resp.StatusCode >= 500:
		return &transientError{fmt.Errorf("youtube api returned %d", resp.StatusCode)}
	default:
		return fmt.Errorf("youtube api returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type transientError struct{ err error }

func (t *transientError) Error() string { return t.err.Error() }
func (t *transientError) Unwrap() error { return t.err }

func retryable(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/socialpulse/internal/logging"
	"github.com/rshade/socialpulse/internal/social"
)

// RequestIDHeader carries a per-request ULID so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response body is kept for logging.
const maxErrorBody = 512

// ErrTransport is wrapped by every failure returned from Client. The backend's
// error kinds (not found, server error, malformed body) are deliberately not
// distinguished by callers.
var ErrTransport = errors.New("transport error")

// TransportError describes a failed backend call.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s %s: failed", e.Op, e.URL)
	}
}

// Unwrap lets errors.Is match both ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// Client talks to the social analytics backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero leaves the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// defaultTimeout applies when no WithTimeout option is given.
const defaultTimeout = 10 * time.Second

// NewClient creates a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute, got %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// TopUsers lists the users with the most posts.
func (c *Client) TopUsers(ctx context.Context, limit int) ([]social.UserSummary, error) {
	return getJSON[social.UserSummary](ctx, c, "top users", url.Values{
		"limit": {strconv.Itoa(limit)},
	}, "users", "top")
}

// UserPosts lists a user's posts. The backend decides how many are returned.
func (c *Client) UserPosts(ctx context.Context, userID string) ([]social.UserPost, error) {
	return getJSON[social.UserPost](ctx, c, "user posts", nil, "users", url.PathEscape(userID), "posts")
}

// TrendingPosts lists the most commented posts.
func (c *Client) TrendingPosts(ctx context.Context, limit int) ([]social.PostSummary, error) {
	return getJSON[social.PostSummary](ctx, c, "trending posts", url.Values{
		"limit": {strconv.Itoa(limit)},
	}, "posts", "trending")
}

// Feed returns one 1-based page of the feed.
func (c *Client) Feed(ctx context.Context, page, limit int) ([]social.PostSummary, error) {
	return getJSON[social.PostSummary](ctx, c, "feed", url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}, "posts", "feed")
}

// PostComments lists the comments on a post.
func (c *Client) PostComments(ctx context.Context, postID string) ([]social.Comment, error) {
	return getJSON[social.Comment](ctx, c, "post comments", nil, "posts", url.PathEscape(postID), "comments")
}

// endpoint joins already-escaped path segments onto the base URL.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// getJSON performs a GET and decodes a bare JSON array of T.
func getJSON[T any](ctx context.Context, c *Client, op string, query url.Values, segments ...string) ([]T, error) {
	target := c.endpoint(query, segments...)
	requestID := logging.NewTraceID()
	log := c.logger.With().
		Str("op", op).
		Str("request_id", requestID).
		Str(logging.TraceIDField, logging.TraceIDFromContext(ctx)).
		Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{Op: op, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return nil, &TransportError{Op: op, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("unexpected status")
		return nil, &TransportError{Op: op, URL: target, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var items []T
	if err = json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &TransportError{Op: op, URL: target, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if items == nil {
		items = []T{}
	}

	log.Debug().Int("count", len(items)).Dur("elapsed", time.Since(start)).Msg("request complete")
	return items, nil
}
